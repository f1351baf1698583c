package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textdesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/frequency"
)

func TestParseWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "commas", input: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "full width separators", input: "的，了；是", want: []string{"的", "了", "是"}},
		{name: "mixed whitespace", input: " the\tand\nof  ", want: []string{"the", "and", "of"}},
		{name: "empties dropped", input: ",, ;", want: []string{}},
		{name: "case preserved", input: "The; THE", want: []string{"The", "THE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWords(tt.input)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStopwordService_AddListRemove(t *testing.T) {
	svc := NewStopwordService(memory.NewStopwordStore())
	ctx := context.Background()

	added, err := svc.Add(ctx, "the, and；of")
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "and", "of"}, added)

	// adding again is not an error
	added, err = svc.Add(ctx, "the")
	require.NoError(t, err)
	assert.Empty(t, added)

	words, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"and", "of", "the"}, words)

	removed, err := svc.Remove(ctx, "of missing")
	require.NoError(t, err)
	assert.Equal(t, []string{"of", "missing"}, removed)

	words, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"and", "the"}, words)
}

func TestStopwordService_EmptyInput(t *testing.T) {
	svc := NewStopwordService(memory.NewStopwordStore())
	ctx := context.Background()

	_, err := svc.Add(ctx, " , ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Remove(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStopwordService_Clear(t *testing.T) {
	svc := NewStopwordService(memory.NewStopwordStore())
	ctx := context.Background()
	_, err := svc.Add(ctx, "a b c")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))

	words, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestStopwordService_Seed(t *testing.T) {
	store := memory.NewStopwordStore()
	svc := NewStopwordService(store)
	ctx := context.Background()

	n, err := svc.Seed(ctx, "")
	require.NoError(t, err)
	assert.Positive(t, n)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, count)

	again, err := svc.Seed(ctx, "en")
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestStopwordService_SeedLanguages(t *testing.T) {
	ctx := context.Background()
	en := len(frequency.DefaultEnglishStopwords())
	zh := len(frequency.DefaultChineseStopwords())

	tests := []struct {
		lang     string
		want     int
		contains string
	}{
		{lang: "en", want: en, contains: "the"},
		{lang: "zh", want: zh, contains: "的"},
		{lang: "all", want: en + zh, contains: "我们"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			store := memory.NewStopwordStore()
			svc := NewStopwordService(store)

			n, err := svc.Seed(ctx, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)

			ok, err := store.Contains(ctx, tt.contains)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}

	t.Run("zh after en adds only chinese", func(t *testing.T) {
		svc := NewStopwordService(memory.NewStopwordStore())
		_, err := svc.Seed(ctx, "en")
		require.NoError(t, err)

		n, err := svc.Seed(ctx, "all")
		require.NoError(t, err)
		assert.Equal(t, zh, n)
	})

	t.Run("unknown language", func(t *testing.T) {
		store := memory.NewStopwordStore()
		svc := NewStopwordService(store)

		_, err := svc.Seed(ctx, "fr")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestStopwordService_AddReportsOnlyNewWords(t *testing.T) {
	svc := NewStopwordService(memory.NewStopwordStore())
	ctx := context.Background()

	_, err := svc.Add(ctx, "the")
	require.NoError(t, err)

	added, err := svc.Add(ctx, "the cat the dog The")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "The"}, added)

	words, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"The", "cat", "dog", "the"}, words)
}

func TestStopwordService_StoreErrors(t *testing.T) {
	svc := NewStopwordService(failingStopwordStore{})
	ctx := context.Background()

	_, err := svc.Add(ctx, "a")
	assert.ErrorIs(t, err, errStore)

	_, err = svc.Remove(ctx, "a")
	assert.ErrorIs(t, err, errStore)

	assert.ErrorIs(t, svc.Clear(ctx), errStore)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, errStore)

	_, err = svc.Seed(ctx, "en")
	assert.ErrorIs(t, err, errStore)
}
