package replacer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/matcher"
)

func TestAll(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		pattern       string
		replacement   string
		useRegex      bool
		caseSensitive bool
		wantText      string
		wantCount     int
	}{
		{
			name: "literal", text: "cat and cat", pattern: "cat", replacement: "dog",
			wantText: "dog and dog", wantCount: 2,
		},
		{
			name: "case insensitive", text: "Cat and CAT", pattern: "cat", replacement: "dog",
			wantText: "dog and dog", wantCount: 2,
		},
		{
			name: "case sensitive", text: "Cat and cat", pattern: "cat", replacement: "dog", caseSensitive: true,
			wantText: "Cat and dog", wantCount: 1,
		},
		{
			name: "no match", text: "hello", pattern: "xyz", replacement: "a",
			wantText: "hello", wantCount: 0,
		},
		{
			name: "regex", text: "a1 b22 c333", pattern: `\d+`, replacement: "#", useRegex: true,
			wantText: "a# b# c#", wantCount: 3,
		},
		{
			name: "replacement is literal", text: "ab ab", pattern: `(a)b`, replacement: "$1x", useRegex: true,
			wantText: "$1x $1x", wantCount: 2,
		},
		{
			name: "longer replacement", text: "x-x-x", pattern: "x", replacement: "long",
			wantText: "long-long-long", wantCount: 3,
		},
		{
			name: "empty replacement", text: "a b a", pattern: "a", replacement: "",
			wantText: " b ", wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := All(tt.text, tt.pattern, tt.replacement, tt.useRegex, tt.caseSensitive)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, res.Text)
			assert.Equal(t, tt.wantCount, res.Count)
		})
	}
}

func TestAll_Errors(t *testing.T) {
	_, err := All("text", "", "x", false, false)
	assert.ErrorIs(t, err, domain.ErrEmptyPattern)

	_, err = All("text", "[", "x", true, false)
	assert.ErrorIs(t, err, domain.ErrInvalidPattern)

	_, err = All("text", "z*", "x", true, false)
	assert.ErrorIs(t, err, domain.ErrInvalidPattern)
}

func TestAll_ThenFindYieldsNothing(t *testing.T) {
	text := "The cat sat. The cat ran. A dog slept."
	res, err := All(text, "cat", "dog", false, false)
	require.NoError(t, err)

	set, err := matcher.FindString(res.Text, "cat", false, false)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Count())
}

func TestSubset(t *testing.T) {
	res, err := Subset("xx xx xx", "xx", "Y", []int{0, 2}, false, false)
	require.NoError(t, err)
	assert.Equal(t, "Y xx Y", res.Text)
	assert.Equal(t, 2, res.Count)
}

func TestSubset_UnorderedAndDuplicateIndices(t *testing.T) {
	res, err := Subset("a a a a", "a", "bb", []int{3, 1, 3, 1}, false, true)
	require.NoError(t, err)
	assert.Equal(t, "a bb a bb", res.Text)
	assert.Equal(t, 2, res.Count)
}

func TestSubset_EmptyIndices(t *testing.T) {
	res, err := Subset("a a", "a", "b", nil, false, true)
	require.NoError(t, err)
	assert.Equal(t, "a a", res.Text)
	assert.Equal(t, 0, res.Count)
}

func TestSubset_OutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		bad     int
	}{
		{"past end", []int{0, 3}, 3},
		{"negative", []int{-1}, -1},
		{"first invalid reported", []int{5, 9}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Subset("xx xx xx", "xx", "Y", tt.indices, false, false)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrIndexOutOfRange))

			var oor *domain.IndexOutOfRangeError
			require.True(t, errors.As(err, &oor))
			assert.Equal(t, tt.bad, oor.Index)
			assert.Equal(t, 3, oor.Count)
			assert.Empty(t, res.Text)
		})
	}
}

func TestSubset_AllIndicesEqualsAll(t *testing.T) {
	text := "one two one three one"
	set, err := matcher.FindString(text, "one", false, false)
	require.NoError(t, err)

	indices := make([]int, set.Count())
	for i := range indices {
		indices[i] = i
	}

	subset, err := Subset(text, "one", "1", indices, false, false)
	require.NoError(t, err)
	all, err := All(text, "one", "1", false, false)
	require.NoError(t, err)

	assert.Equal(t, all, subset)
}

func TestSubset_DoesNotMutateIndices(t *testing.T) {
	indices := []int{2, 0}
	_, err := Subset("xx xx xx", "xx", "Y", indices, false, false)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, indices)
}

func TestFirst(t *testing.T) {
	res, err := First("a a a", "a", "b", false, true)
	require.NoError(t, err)
	assert.Equal(t, "b a a", res.Text)
	assert.Equal(t, 1, res.Count)

	res, err = First("a a a", "z", "b", false, true)
	require.NoError(t, err)
	assert.Equal(t, "a a a", res.Text)
	assert.Equal(t, 0, res.Count)
}

func TestScoped(t *testing.T) {
	res, err := Scoped("a a", "a", "b", false, true, domain.ReplaceScopeFirst)
	require.NoError(t, err)
	assert.Equal(t, "b a", res.Text)

	res, err = Scoped("a a", "a", "b", false, true, domain.ReplaceScopeAll)
	require.NoError(t, err)
	assert.Equal(t, "b b", res.Text)

	_, err = Scoped("a a", "a", "b", false, true, domain.ReplaceScope("some"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
