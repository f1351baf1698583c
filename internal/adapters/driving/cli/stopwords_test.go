package cli

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/frequency"
)

func TestStopwordsCmds(t *testing.T) {
	setupTestServices(t)

	out := mustExecute(t, "stopwords", "list")
	assert.Contains(t, out, "No stopwords.")

	out = mustExecute(t, "stopwords", "add", "the,and;", "of")
	assert.Contains(t, out, "Added 3 stopwords.")

	out = mustExecute(t, "stopwords", "list")
	assert.Contains(t, out, "3 stopwords:")
	assert.Contains(t, out, "and, of, the")

	out = mustExecute(t, "stopwords", "remove", "of")
	assert.Contains(t, out, "Removed 1 stopwords.")

	out = mustExecute(t, "stopwords", "list", "--json")
	var words []string
	require.NoError(t, json.Unmarshal([]byte(out), &words))
	assert.Equal(t, []string{"and", "the"}, words)

	out = mustExecute(t, "stopwords", "clear")
	assert.Contains(t, out, "Stopwords cleared.")
	out = mustExecute(t, "stopwords", "list")
	assert.Contains(t, out, "No stopwords.")
}

func TestStopwordsSeedCmd(t *testing.T) {
	s := setupTestServices(t)

	out := mustExecute(t, "stopwords", "seed")
	assert.Contains(t, out, "built-in stopwords.")

	words, err := s.stopwords.List(t.Context())
	require.NoError(t, err)
	assert.Contains(t, words, "the")

	out = mustExecute(t, "stopwords", "seed")
	assert.Contains(t, out, "Added 0 built-in stopwords.")
}

func TestStopwordsSeedCmd_Lang(t *testing.T) {
	s := setupTestServices(t)

	out := mustExecute(t, "stopwords", "seed", "--lang", "zh")
	assert.Contains(t, out, fmt.Sprintf("Added %d built-in stopwords.", len(frequency.DefaultChineseStopwords())))

	words, err := s.stopwords.List(t.Context())
	require.NoError(t, err)
	assert.Contains(t, words, "的")
	assert.NotContains(t, words, "the")

	out = mustExecute(t, "stopwords", "seed", "--lang", "all")
	assert.Contains(t, out, fmt.Sprintf("Added %d built-in stopwords.", len(frequency.DefaultEnglishStopwords())))
}

func TestStopwordsSeedCmd_UnknownLang(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "stopwords", "seed", "--lang", "fr")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStopwordsAddCmd_ExistingWords(t *testing.T) {
	setupTestServices(t)

	mustExecute(t, "stopwords", "add", "the")
	out := mustExecute(t, "stopwords", "add", "the", "and")
	assert.Contains(t, out, "Added 1 stopwords.")
}

func TestStopwordsAddCmd_Blank(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "stopwords", "add", " , ")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "add failed")
}
