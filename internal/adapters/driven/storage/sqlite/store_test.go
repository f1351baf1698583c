package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "textdesk-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, DBFile, filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_ForeignKeysOnEveryConnection(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	// Holding each connection forces the pool to open a fresh one.
	for i := 0; i < 3; i++ {
		conn, err := store.db.Conn(ctx)
		require.NoError(t, err)
		defer conn.Close()

		var enabled int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
		assert.Equal(t, 1, enabled, "connection %d", i)
	}
}

func TestNewStore_RecordsMigrations(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	version, err := store.schemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.StopwordStore().Add(ctx, "the"))
	require.NoError(t, store.Close())

	reopened, err := NewStore(tempDir)
	require.NoError(t, err)
	defer reopened.Close()

	ok, err := reopened.StopwordStore().Contains(ctx, "the")
	require.NoError(t, err)
	assert.True(t, ok)

	version, err := reopened.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestStopwordStore_AddListContains(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	sw := store.StopwordStore()

	require.NoError(t, sw.Add(ctx, "zeta", "alpha", "的", "alpha", ""))

	words, err := sw.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta", "的"}, words)

	count, err := sw.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	ok, err := sw.Contains(ctx, "alpha")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = sw.Contains(ctx, "Alpha")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStopwordStore_RemoveAndClear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	sw := store.StopwordStore()

	require.NoError(t, sw.Add(ctx, "a", "b", "c"))
	require.NoError(t, sw.Remove(ctx, "a", "missing"))
	require.NoError(t, sw.Remove(ctx))

	words, err := sw.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, words)

	require.NoError(t, sw.Clear(ctx))
	words, err = sw.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestStopwordStore_ConcurrentAdd(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	sw := store.StopwordStore()

	var wg sync.WaitGroup
	for _, w := range []string{"a", "b", "c", "d", "a", "b"} {
		wg.Add(1)
		go func(word string) {
			defer wg.Done()
			assert.NoError(t, sw.Add(ctx, word))
		}(w)
	}
	wg.Wait()

	count, err := sw.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
