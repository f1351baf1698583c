package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

func testBuffer(id, text string) *domain.TextBuffer {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.TextBuffer{
		ID:        id,
		Source:    "stdin",
		Original:  text,
		Current:   text,
		LoadedAt:  now,
		UpdatedAt: now,
	}
}

func TestBufferStore_Active_NoBuffer(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.BufferStore().Active(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoBuffer)
}

func TestBufferStore_SaveAndUpdate(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	bs := store.BufferStore()

	buf := testBuffer("b1", "Hello world")
	require.NoError(t, bs.Save(ctx, buf))

	buf.Current = "Hello there"
	buf.UpdatedAt = buf.UpdatedAt.Add(time.Second)
	require.NoError(t, bs.Save(ctx, buf))

	got, err := bs.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)
	assert.Equal(t, "Hello world", got.Original)
	assert.Equal(t, "Hello there", got.Current)
	assert.Equal(t, "stdin", got.Source)
	assert.True(t, got.IsModified())
}

func TestBufferStore_Save_Invalid(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.BufferStore().Save(context.Background(), &domain.TextBuffer{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBufferStore_Save_ReplacesPrevious(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	bs := store.BufferStore()

	require.NoError(t, bs.Save(ctx, testBuffer("b1", "first")))
	require.NoError(t, bs.AddRevision(ctx, &domain.Revision{ID: "r1", BufferID: "b1", Reason: "load", Text: "first"}))
	require.NoError(t, bs.Save(ctx, testBuffer("b2", "second")))

	got, err := bs.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b2", got.ID)

	revs, err := bs.Revisions(ctx, "b1", 0)
	require.NoError(t, err)
	assert.Empty(t, revs)

	var orphans int
	require.NoError(t, store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM revisions WHERE buffer_id = ?", "b1").Scan(&orphans))
	assert.Zero(t, orphans)
}

func TestBufferStore_Save_CascadesOnFreshConnection(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	bs := store.BufferStore()

	require.NoError(t, bs.Save(ctx, testBuffer("b1", "first")))
	require.NoError(t, bs.AddRevision(ctx, &domain.Revision{ID: "r1", BufferID: "b1", Reason: "load", Text: "first"}))

	// Keep the idle connection busy so the next save runs on a new one.
	held, err := store.db.Conn(ctx)
	require.NoError(t, err)
	defer held.Close()

	require.NoError(t, bs.Save(ctx, testBuffer("b2", "second")))

	var orphans int
	require.NoError(t, held.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM revisions WHERE buffer_id = ?", "b1").Scan(&orphans))
	assert.Zero(t, orphans)
}

func TestBufferStore_Revisions(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	bs := store.BufferStore()

	require.NoError(t, bs.Save(ctx, testBuffer("b1", "text")))
	for i, reason := range []string{"load", "replace", "normalise"} {
		require.NoError(t, bs.AddRevision(ctx, &domain.Revision{
			ID:        reason,
			BufferID:  "b1",
			Reason:    reason,
			Text:      reason + " text",
			CreatedAt: time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
		}))
	}

	tests := []struct {
		name    string
		limit   int
		reasons []string
	}{
		{"all", 0, []string{"normalise", "replace", "load"}},
		{"negative means all", -1, []string{"normalise", "replace", "load"}},
		{"limited", 2, []string{"normalise", "replace"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revs, err := bs.Revisions(ctx, "b1", tt.limit)
			require.NoError(t, err)
			reasons := make([]string, len(revs))
			for i, r := range revs {
				reasons[i] = r.Reason
			}
			assert.Equal(t, tt.reasons, reasons)
		})
	}
}

func TestBufferStore_AddRevision_UnknownBuffer(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.BufferStore().AddRevision(context.Background(),
		&domain.Revision{ID: "r1", BufferID: "missing", Reason: "load"})
	assert.Error(t, err)
}

func TestMatchStateStore_RoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	ms := store.MatchStateStore()

	_, cursor, err := ms.LoadMatches(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, -1, cursor.Current)

	text := "cat hat cat"
	set := &domain.MatchSet{
		SourceText:  text,
		Fingerprint: domain.Fingerprint(text),
		Pattern:     "cat",
		Matches: []domain.Match{
			{Index: 0, Text: "cat", ContextAfter: " hat cat"},
			{Index: 8, Text: "cat", ContextBefore: "cat hat "},
		},
	}
	require.NoError(t, ms.SaveMatches(ctx, set, domain.MatchCursor{Current: 1}))

	got, cursor, err := ms.LoadMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cursor.Current)
	assert.Equal(t, text, got.SourceText)
	assert.False(t, got.IsStale(text))
	assert.Equal(t, set.Matches, got.Matches)

	require.NoError(t, ms.SaveMatches(ctx, &domain.MatchSet{Pattern: "x"}, domain.NewMatchCursor()))
	got, cursor, err = ms.LoadMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, "x", got.Pattern)
	assert.Equal(t, -1, cursor.Current)

	require.NoError(t, ms.ClearMatches(ctx))
	_, _, err = ms.LoadMatches(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
