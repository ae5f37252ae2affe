package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Loader fetches a catalogue source file for ingestion. Implementations
// read from the local filesystem or from S3.
type Loader interface {
	// Load returns the raw bytes of the catalogue file at source (a file
	// path or an object key, depending on the implementation).
	Load(ctx context.Context, source string) ([]byte, error)
}

// fileLoader implements Loader for local catalogue files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a catalogue file from the local filesystem.
func (l *fileLoader) Load(ctx context.Context, source string) ([]byte, error) {
	l.logger.Info().Str("file", source).Msg("loading catalogue file")

	data, err := os.ReadFile(source)
	if err != nil {
		l.logger.Error().Err(err).Str("file", source).Msg("failed to read catalogue file")
		return nil, fmt.Errorf("failed to read catalogue file %s: %w", source, err)
	}

	l.logger.Info().
		Str("file", source).
		Int("bytes", len(data)).
		Msg("catalogue file loaded successfully")

	return data, nil
}
