package cache

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func createTestCache(t *testing.T) *SQLiteCache {
	path := filepath.Join(t.TempDir(), "cache.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	cache, err := NewWithDB(db, "customization")
	require.NoError(t, err)

	return cache
}

func TestSQLiteCache_Get_Miss(t *testing.T) {
	cache := createTestCache(t)

	_, err := cache.Get(context.Background(), uuid.New())

	require.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestSQLiteCache_PutGet_RoundTrip(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()
	userID := uuid.New()

	doc := entity.BuildDefault(userID)
	doc.Theme.PrimaryColor = "#ABCDEF"
	doc.Dashboard.PinnedItems = []string{"doc-1", "doc-2"}

	require.NoError(t, cache.Put(ctx, doc))

	got, err := cache.Get(ctx, userID)

	require.NoError(t, err)
	assert.True(t, doc.Equal(got))
}

func TestSQLiteCache_Put_Overwrites(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()
	userID := uuid.New()

	doc := entity.BuildDefault(userID)
	require.NoError(t, cache.Put(ctx, doc))

	doc.Theme.FontSize = 20
	require.NoError(t, cache.Put(ctx, doc))

	got, err := cache.Get(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 20, got.Theme.FontSize)
}

func TestSQLiteCache_KeysAreIsolatedByUser(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, cache.Put(ctx, entity.BuildDefault(first)))

	_, err := cache.Get(ctx, second)

	require.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestSQLiteCache_Get_CorruptEntry(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := cache.db.ExecContext(ctx,
		`INSERT INTO preference_cache (key, value, updated_at) VALUES (?, ?, ?)`,
		cache.key(userID), `{"theme": truncated`, "2026-01-01T00:00:00Z",
	)
	require.NoError(t, err)

	_, err = cache.Get(ctx, userID)

	require.ErrorIs(t, err, repository.ErrCacheCorrupt)

	// A corrupt entry is recoverable: the next Put replaces it.
	doc := entity.BuildDefault(userID)
	require.NoError(t, cache.Put(ctx, doc))

	got, err := cache.Get(ctx, userID)
	require.NoError(t, err)
	assert.True(t, doc.Equal(got))
}

func TestSQLiteCache_Ping(t *testing.T) {
	cache := createTestCache(t)

	require.NoError(t, cache.Ping(context.Background()))
}
