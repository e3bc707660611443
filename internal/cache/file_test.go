package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/models"
)

func testRecords() []models.SearchRecord {
	return []models.SearchRecord{
		{Title: "NVIDIA posts record quarter", Snippet: "Data center revenue up again.", Link: "https://example.com/nvda"},
		{Title: "Chip demand outlook", Snippet: "", Link: "https://example.com/chips"},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), time.Hour)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "NVIDIA stock", testRecords()))

	entry, ok, err := store.Get(ctx, "NVIDIA stock")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "NVIDIA stock", entry.Query)
	assert.Equal(t, testRecords(), entry.Results)
	assert.False(t, entry.FetchedAt.IsZero())
}

func TestFileStoreMiss(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), time.Hour)
	require.NoError(t, err)

	_, ok, err := store.Get(context.Background(), "never stored")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreTTLExpiry(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), time.Hour)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "Apple", testRecords()))

	_, ok, err := store.Get(ctx, "Apple")
	require.NoError(t, err)
	require.True(t, ok)

	// Advance the clock past the TTL; the entry becomes a logical miss.
	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, ok, err = store.Get(ctx, "Apple")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), time.Hour)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "Tesla", testRecords()))

	fresh := []models.SearchRecord{{Title: "Newer headline", Snippet: "s", Link: "https://example.com/new"}}
	require.NoError(t, store.Put(ctx, "Tesla", fresh))

	entry, ok, err := store.Get(ctx, "Tesla")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fresh, entry.Results)
}

func TestFileStorePutRenamesIntoPlace(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, time.Hour)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "NVIDIA stock", testRecords()))
	require.NoError(t, store.Put(ctx, "NVIDIA stock", testRecords()))

	// Only the final entry remains; no temp files survive the rename.
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, Key("NVIDIA stock")+".json", files[0].Name())
}

func TestFileStoreCorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, time.Hour)
	require.NoError(t, err)

	path := filepath.Join(dir, Key("broken")+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, ok, err := store.Get(context.Background(), "broken")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	// Stable, fixed length, and distinct across inputs regardless of
	// query length or charset.
	assert.Equal(t, Key("NVIDIA stock"), Key("NVIDIA stock"))
	assert.Len(t, Key(""), 40)
	assert.Len(t, Key("日本のマーケット最新ニュース "+string(make([]byte, 4096))), 40)
	assert.NotEqual(t, Key("a"), Key("b"))
}
