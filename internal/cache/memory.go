package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bluele/gcache"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/models"
)

const defaultMemoryStoreSize = 256

// MemoryStore is an in-process LRU cache backend. Useful for tests and for
// single-instance deployments that can afford to lose the cache on restart.
type MemoryStore struct {
	entries gcache.Cache
}

// NewMemoryStore builds a bounded LRU store whose entries expire after ttl.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = defaultMemoryStoreSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: gcache.New(size).LRU().Expiration(ttl).Build(),
	}
}

// Get returns the cached entry for query; expiry is handled by the cache.
func (s *MemoryStore) Get(ctx context.Context, query string) (*models.CacheEntry, bool, error) {
	v, err := s.entries.Get(Key(query))
	if err != nil {
		if errors.Is(err, gcache.KeyNotFoundError) {
			return nil, false, nil
		}
		return nil, false, err
	}
	entry := v.(models.CacheEntry)
	return &entry, true, nil
}

// Put stores a fresh entry for query.
func (s *MemoryStore) Put(ctx context.Context, query string, results []models.SearchRecord) error {
	return s.entries.Set(Key(query), models.CacheEntry{
		Query:     query,
		Results:   results,
		FetchedAt: time.Now(),
	})
}
