package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

func TestLoadCmd_Text(t *testing.T) {
	s := setupTestServices(t)

	out := mustExecute(t, "load", "--text", "hello world")

	assert.Contains(t, out, "Loaded 11 characters from text")
	buf, err := s.editor.Buffer(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "hello world", buf.Current)
}

func TestLoadCmd_File(t *testing.T) {
	s := setupTestServices(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("from a file\n"), 0o600))

	out := mustExecute(t, "load", path)

	assert.Contains(t, out, "Loaded 12 characters")
	buf, err := s.editor.Buffer(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "from a file\n", buf.Current)
}

func TestLoadCmd_Stdin(t *testing.T) {
	s := setupTestServices(t)
	resetFlags(rootCmd)

	rootCmd.SetArgs([]string{"load"})
	rootCmd.SetIn(strings.NewReader("piped text"))
	out := new(strings.Builder)
	rootCmd.SetOut(out)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "from stdin")

	buf, err := s.editor.Buffer(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "piped text", buf.Current)
}

func TestLoadCmd_MissingFile(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "load", filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load failed")
}

func TestShowCmd(t *testing.T) {
	setupTestServices(t)
	mustExecute(t, "load", "--text", "one two one")
	mustExecute(t, "replace", "one", "three")

	t.Run("current", func(t *testing.T) {
		out := mustExecute(t, "show")
		assert.Equal(t, "three two three\n", out)
	})

	t.Run("original", func(t *testing.T) {
		out := mustExecute(t, "show", "--original")
		assert.Equal(t, "one two one\n", out)
	})
}

func TestShowCmd_NoBuffer(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "show")

	require.ErrorIs(t, err, domain.ErrNoBuffer)
}

func TestResetCmd(t *testing.T) {
	s := setupTestServices(t)
	mustExecute(t, "load", "--text", "alpha beta")
	mustExecute(t, "replace", "alpha", "gamma")

	out := mustExecute(t, "reset")

	assert.Contains(t, out, "Buffer restored to the loaded text.")
	buf, err := s.editor.Buffer(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "alpha beta", buf.Current)
}

func TestStatsCmd(t *testing.T) {
	setupTestServices(t)
	mustExecute(t, "load", "--text", "The cat sat. The cat ran.")

	t.Run("markdown", func(t *testing.T) {
		out := mustExecute(t, "stats")
		assert.Contains(t, out, "# Text statistics")
		assert.Contains(t, out, "| Sentences | 2 |")
		assert.Contains(t, out, "| Words | 6 |")
	})

	t.Run("json", func(t *testing.T) {
		out := mustExecute(t, "stats", "--json")
		var stats domain.TextStats
		require.NoError(t, json.Unmarshal([]byte(out), &stats))
		assert.Equal(t, 2, stats.Sentences)
		assert.Equal(t, 6, stats.Words)
	})
}

func TestStatsCmd_EmptyBuffer(t *testing.T) {
	setupTestServices(t)
	mustExecute(t, "load", "--text", "   ")

	_, err := execute(t, "stats")

	require.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestHistoryCmd(t *testing.T) {
	setupTestServices(t)

	t.Run("no buffer", func(t *testing.T) {
		_, err := execute(t, "history")
		require.ErrorIs(t, err, domain.ErrNoBuffer)
	})

	t.Run("after edits", func(t *testing.T) {
		mustExecute(t, "load", "--text", "red green red")
		mustExecute(t, "replace", "red", "blue")

		out := mustExecute(t, "history")
		assert.Contains(t, out, "replace")
		assert.Contains(t, out, "blue green blue")
		assert.Contains(t, out, "red green red")
	})

	t.Run("limit", func(t *testing.T) {
		out := mustExecute(t, "history", "--limit", "1")
		assert.Contains(t, out, "blue green blue")
		assert.NotContains(t, out, "red green red")
	})
}
