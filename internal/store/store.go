package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Collection names backed by the store.
const (
	CollectionProducts = "products"
	CollectionSlider   = "slider"
)

// Store persists named collections as JSON array files under a data
// directory. Every read loads the whole collection and every write
// replaces it wholesale; there is no partial update.
//
// Reads never fail the caller: a missing or corrupt file degrades to an
// empty collection. Writes go through a temp file and rename so a crash
// mid-write never leaves a torn collection behind.
type Store struct {
	dir    string
	logger zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates the data directory if needed and seeds any missing
// collection files with an empty JSON array.
func New(dataDir string, logger zerolog.Logger, collections ...string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	s := &Store{
		dir:    dataDir,
		logger: logger.With().Str("component", "store").Logger(),
		locks:  make(map[string]*sync.Mutex),
	}

	for _, collection := range collections {
		path := s.path(collection)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("failed to initialise collection %s: %w", collection, err)
			}
			s.logger.Info().Str("collection", collection).Str("path", path).Msg("initialised empty collection")
		}
	}

	return s, nil
}

// Lock acquires the in-process mutex for a collection. Callers performing
// a read-modify-write cycle must hold it for the whole cycle, otherwise
// concurrent writers lose updates. Pair with Unlock.
func (s *Store) Lock(collection string) {
	s.lockFor(collection).Lock()
}

// Unlock releases the collection mutex acquired by Lock.
func (s *Store) Unlock(collection string) {
	s.lockFor(collection).Unlock()
}

// Read loads a whole collection into v, which must be a pointer to a
// slice. A missing or unparsable file leaves v empty; Read never returns
// an error by contract.
func (s *Store) Read(collection string, v any) {
	path := s.path(collection)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("collection", collection).Msg("failed to read collection, treating as empty")
		}
		return
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn().Err(err).Str("collection", collection).Msg("corrupt collection file, treating as empty")
	}
}

// Write replaces a whole collection with v.
func (s *Store) Write(collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", collection, err)
	}

	path := s.path(collection)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.logger.Error().Err(err).Str("collection", collection).Msg("failed to write collection")
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		s.logger.Error().Err(err).Str("collection", collection).Msg("failed to replace collection file")
		return fmt.Errorf("failed to replace collection %s: %w", collection, err)
	}

	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) lockFor(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[collection]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[collection] = lock
	}
	return lock
}
