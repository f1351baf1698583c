package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

const sampleText = "the cat and the dog and the bird"

func TestFindCmd(t *testing.T) {
	setupTestServices(t)
	mustExecute(t, "load", "--text", sampleText)

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "literal",
			args:     []string{"find", "the"},
			contains: []string{"3 matches:", "[0] @0", "[1] @12", "[2] @24", "[the]"},
		},
		{
			name:     "case insensitive by default",
			args:     []string{"find", "THE"},
			contains: []string{"3 matches:"},
		},
		{
			name:     "case sensitive",
			args:     []string{"find", "THE", "--case-sensitive"},
			contains: []string{"No matches found."},
		},
		{
			name:     "regex",
			args:     []string{"find", "d[a-z]g", "--regex"},
			contains: []string{"1 matches:", "[dog]"},
		},
		{
			name:     "no matches",
			args:     []string{"find", "fish"},
			contains: []string{"No matches found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustExecute(t, tt.args...)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestFindCmd_JSON(t *testing.T) {
	setupTestServices(t)
	mustExecute(t, "load", "--text", sampleText)

	out := mustExecute(t, "find", "and", "--json")

	var got struct {
		Pattern string         `json:"pattern"`
		Count   int            `json:"count"`
		Matches []domain.Match `json:"matches"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "and", got.Pattern)
	assert.Equal(t, 2, got.Count)
	require.Len(t, got.Matches, 2)
	assert.Equal(t, 8, got.Matches[0].Index)
}

func TestFindCmd_InvalidRegex(t *testing.T) {
	setupTestServices(t)
	mustExecute(t, "load", "--text", sampleText)

	_, err := execute(t, "find", "(", "--regex")

	require.ErrorIs(t, err, domain.ErrInvalidPattern)
}

func TestNavigateCmds(t *testing.T) {
	setupTestServices(t)
	mustExecute(t, "load", "--text", sampleText)

	t.Run("without a search", func(t *testing.T) {
		_, err := execute(t, "next")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("empty search", func(t *testing.T) {
		mustExecute(t, "find", "fish")
		out := mustExecute(t, "prev")
		assert.Contains(t, out, "No matches.")
	})

	mustExecute(t, "find", "the")

	steps := []struct {
		cmd  string
		want string
	}{
		{"next", "Match 1/3 @0"},
		{"next", "Match 2/3 @12"},
		{"next", "Match 3/3 @24"},
		{"next", "Match 1/3 @0"},
		{"prev", "Match 3/3 @24"},
	}
	for _, step := range steps {
		out := mustExecute(t, step.cmd)
		assert.Contains(t, out, step.want, step.cmd)
	}
}

func TestFormatContext(t *testing.T) {
	tests := []struct {
		name string
		m    domain.Match
		want string
	}{
		{
			name: "spaces kept around the match",
			m:    domain.Match{Text: "cat", ContextBefore: "the ", ContextAfter: " sat"},
			want: "...the [cat] sat...",
		},
		{
			name: "match inside a word",
			m:    domain.Match{Text: "at", ContextBefore: "c", ContextAfter: "s"},
			want: "...c[at]s...",
		},
		{
			name: "newlines flattened",
			m:    domain.Match{Text: "x", ContextBefore: "a\n\nb\n", ContextAfter: "\ny  z"},
			want: "...a b [x] y z...",
		},
		{
			name: "no context",
			m:    domain.Match{Text: "x"},
			want: "...[x]...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatContext(tt.m))
		})
	}
}
