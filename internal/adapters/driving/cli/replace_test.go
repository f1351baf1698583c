package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

func TestReplaceCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut string
		want    string
	}{
		{
			name:    "all",
			args:    []string{"replace", "the", "a"},
			wantOut: "Replaced 3 matches.",
			want:    "a cat and a dog and a bird",
		},
		{
			name:    "first",
			args:    []string{"replace", "the", "a", "--scope", "first"},
			wantOut: "Replaced 1 match.",
			want:    "a cat and the dog and the bird",
		},
		{
			name:    "regex",
			args:    []string{"replace", `c[a-z]t`, "cow", "--regex"},
			wantOut: "Replaced 1 match.",
			want:    "the cow and the dog and the bird",
		},
		{
			name:    "regex replacement is literal",
			args:    []string{"replace", `c([a-z])t`, "${1}ow", "--regex"},
			wantOut: "Replaced 1 match.",
			want:    "the ${1}ow and the dog and the bird",
		},
		{
			name:    "no matches",
			args:    []string{"replace", "fish", "eel"},
			wantOut: "No matches replaced.",
			want:    sampleText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServices(t)
			mustExecute(t, "load", "--text", sampleText)

			out := mustExecute(t, tt.args...)

			assert.Contains(t, out, tt.wantOut)
			buf, err := s.editor.Buffer(t.Context())
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.Current)
		})
	}
}

func TestReplaceCmd_InvalidScope(t *testing.T) {
	setupTestServices(t)
	mustExecute(t, "load", "--text", sampleText)

	_, err := execute(t, "replace", "the", "a", "--scope", "some")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scope")
}

func TestSelectReplaceCmd(t *testing.T) {
	s := setupTestServices(t)
	mustExecute(t, "load", "--text", sampleText)

	out := mustExecute(t, "select-replace", "the", "a", "--index", "0, 2")

	assert.Contains(t, out, "Replaced 2 matches.")
	buf, err := s.editor.Buffer(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "a cat and the dog and a bird", buf.Current)
}

func TestSelectReplaceCmd_Errors(t *testing.T) {
	setupTestServices(t)
	mustExecute(t, "load", "--text", sampleText)

	t.Run("index out of range", func(t *testing.T) {
		_, err := execute(t, "select-replace", "the", "a", "--index", "5")
		require.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	})

	t.Run("index not a number", func(t *testing.T) {
		_, err := execute(t, "select-replace", "the", "a", "--index", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid match number "x"`)
	})

	t.Run("index flag required", func(t *testing.T) {
		_, err := execute(t, "select-replace", "the", "a")
		require.Error(t, err)
	})
}

func TestReplaceCurrentCmd(t *testing.T) {
	s := setupTestServices(t)
	mustExecute(t, "load", "--text", sampleText)

	t.Run("without selection", func(t *testing.T) {
		mustExecute(t, "find", "the")
		_, err := execute(t, "replace-current", "a")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("after next", func(t *testing.T) {
		mustExecute(t, "next")
		mustExecute(t, "next")

		out := mustExecute(t, "replace-current", "a")

		assert.Contains(t, out, "Replaced 1 match.")
		buf, err := s.editor.Buffer(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "the cat and a dog and the bird", buf.Current)
	})
}

func TestParseIndices(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "0", want: []int{0}},
		{in: "0,2, 5", want: []int{0, 2, 5}},
		{in: " 1 ,, 3 ", want: []int{1, 3}},
		{in: "", want: nil},
		{in: "1,a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseIndices(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
