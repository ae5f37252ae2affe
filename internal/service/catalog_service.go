package service

import (
	"context"
	"fmt"

	"befach-store/internal/ingest"
	"befach-store/internal/model"
	"befach-store/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService: the parse → normalise →
// upsert-merge pipeline over the product collection.
type catalogService struct {
	productRepo repository.ProductRepository
	loader      ingest.Loader
	sourcePath  string
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalogue sync service. loader and
// sourcePath back the IngestFromSource operation and may be nil/empty
// when no catalogue source is configured.
func NewCatalogService(
	productRepo repository.ProductRepository,
	loader ingest.Loader,
	sourcePath string,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		loader:      loader,
		sourcePath:  sourcePath,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// Ingest runs the full synchronization pipeline over an uploaded file.
// Any parse failure aborts the whole batch; the store is written once,
// after the complete merge, so partial batches are never persisted.
func (s *catalogService) Ingest(ctx context.Context, data []byte, filename string) (*model.IngestResult, error) {
	rows, err := ingest.Parse(data, filename)
	if err != nil {
		s.logger.Warn().Err(err).Str("filename", filename).Msg("failed to parse catalogue file")
		return nil, err
	}

	if len(rows) == 0 {
		s.logger.Warn().Str("filename", filename).Msg("catalogue file contained no data rows")
		return nil, model.ErrEmptyFile
	}

	candidates := make([]model.Product, len(rows))
	for i, row := range rows {
		candidates[i] = ingest.NormalizeProduct(row, i)
	}

	total, err := s.productRepo.UpsertAll(ctx, candidates)
	if err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("failed to merge catalogue batch")
		return nil, fmt.Errorf("failed to merge catalogue batch: %w", err)
	}

	s.logger.Info().
		Str("filename", filename).
		Int("count", len(candidates)).
		Int("total", total).
		Msg("catalogue batch ingested")

	return &model.IngestResult{Count: len(candidates), Total: total}, nil
}

// IngestFromSource loads the configured catalogue source file and feeds
// it through Ingest. The source path's extension determines the format.
func (s *catalogService) IngestFromSource(ctx context.Context) (*model.IngestResult, error) {
	if s.loader == nil || s.sourcePath == "" {
		return nil, fmt.Errorf("no catalogue source configured")
	}

	data, err := s.loader.Load(ctx, s.sourcePath)
	if err != nil {
		s.logger.Error().Err(err).Str("source", s.sourcePath).Msg("failed to load catalogue source")
		return nil, fmt.Errorf("failed to load catalogue source: %w", err)
	}

	return s.Ingest(ctx, data, s.sourcePath)
}
