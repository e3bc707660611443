// Package cache provides time-bounded storage for search result sets.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/models"
)

// DefaultTTL is how long a cached result set remains servable.
const DefaultTTL = time.Hour

// Store is a keyed store for cached search results. Implementations must
// treat entries older than their TTL as absent. Concurrent misses for the
// same query may both fetch upstream; the last Put wins.
type Store interface {
	// Get returns the cached entry for query, or ok=false on a miss or an
	// expired entry.
	Get(ctx context.Context, query string) (entry *models.CacheEntry, ok bool, err error)

	// Put stores a fresh entry for query, overwriting any prior one.
	Put(ctx context.Context, query string, results []models.SearchRecord) error
}

// Key derives the fixed-length storage key for a query, so arbitrary-length
// queries in any charset map to a stable identifier.
func Key(query string) string {
	sum := sha1.Sum([]byte(query))
	return hex.EncodeToString(sum[:])
}
