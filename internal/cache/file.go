package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/models"
)

// FileStore keeps one JSON document per query under a cache directory.
// Expired entries are ignored on read, not deleted; a refresh overwrites
// them in place.
type FileStore struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewFileStore creates the cache directory if needed.
func NewFileStore(dir string, ttl time.Duration) (*FileStore, error) {
	if dir == "" {
		dir = ".search_cache"
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &FileStore{dir: dir, ttl: ttl, now: time.Now}, nil
}

func (s *FileStore) path(query string) string {
	return filepath.Join(s.dir, Key(query)+".json")
}

// Get reads the entry for query, treating expired or unreadable entries as
// misses.
func (s *FileStore) Get(ctx context.Context, query string) (*models.CacheEntry, bool, error) {
	data, err := os.ReadFile(s.path(query))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// a corrupt entry is a miss; the next Put overwrites it
		log.Warn().Err(err).Str("path", s.path(query)).Msg("Discarding unreadable cache entry")
		return nil, false, nil
	}

	if s.now().Sub(entry.FetchedAt) >= s.ttl {
		return nil, false, nil
	}
	return &entry, true, nil
}

// Put writes a fresh entry for query, replacing any prior one. The entry
// is written to a temp file and renamed into place so concurrent readers
// never observe a partial document.
func (s *FileStore) Put(ctx context.Context, query string, results []models.SearchRecord) error {
	entry := models.CacheEntry{
		Query:     query,
		Results:   results,
		FetchedAt: s.now(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, Key(query)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(query)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}
