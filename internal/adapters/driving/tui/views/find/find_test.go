package find

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textdesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/textdesk/internal/core/services"
)

const sampleText = "the cat and the dog and the bird"

func newLoadedView(t *testing.T) (*View, *services.EditorService) {
	t.Helper()
	store := memory.NewBufferStore()
	editor := services.NewEditorService(store, store, nil)
	_, err := editor.Load(context.Background(), sampleText, "test")
	require.NoError(t, err)

	v := NewView(nil, nil, editor)
	v.SetDimensions(100, 30)
	return v, editor
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and feeds its message back into the view.
func run(t *testing.T, v *View, cmd tea.Cmd) *View {
	t.Helper()
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())
	return v
}

// search types pattern and submits it.
func search(t *testing.T, v *View, pattern string) *View {
	t.Helper()
	v.SetPattern(pattern)
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return run(t, v, cmd)
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil)

	require.NotNil(t, v)
	assert.Equal(t, ModePattern, v.Mode())
	assert.False(t, v.Ready())
	assert.Equal(t, "Initialising...", v.View())
}

func TestView_Find(t *testing.T) {
	t.Run("lists matches and switches to match mode", func(t *testing.T) {
		v, _ := newLoadedView(t)

		v = search(t, v, "the")
		assert.Equal(t, ModeMatches, v.Mode())
		require.Len(t, v.Matches(), 3)
		assert.Equal(t, -1, v.SelectedIndex())
		assert.Contains(t, v.View(), "Match -/3")
	})

	t.Run("empty pattern does nothing", func(t *testing.T) {
		v, _ := newLoadedView(t)

		_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Nil(t, cmd)
		assert.Equal(t, ModePattern, v.Mode())
	})

	t.Run("invalid regex shows error", func(t *testing.T) {
		v, _ := newLoadedView(t)
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
		assert.True(t, v.UseRegex())

		v = search(t, v, "(")
		require.Error(t, v.Err())
		assert.Equal(t, ModePattern, v.Mode())
	})

	t.Run("no editor", func(t *testing.T) {
		v := NewView(nil, nil, nil)
		v.SetDimensions(80, 24)

		v = search(t, v, "the")
		assert.ErrorIs(t, v.Err(), ErrNoEditorService)
	})

	t.Run("toggle case", func(t *testing.T) {
		v, _ := newLoadedView(t)
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
		assert.True(t, v.CaseSensitive())

		v = search(t, v, "THE")
		assert.Empty(t, v.Matches())
	})
}

func TestView_Navigate(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected int
	}{
		{name: "next from none selects first", keys: []string{"n"}, expected: 0},
		{name: "prev from none wraps", keys: []string{"p"}, expected: 1},
		{name: "next wraps at end", keys: []string{"n", "n", "n", "n"}, expected: 0},
		{name: "down arrow alias", keys: []string{"j", "j"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newLoadedView(t)
			v = search(t, v, "the")

			for _, k := range tt.keys {
				var cmd tea.Cmd
				v, cmd = v.Update(keyRunes(k))
				v = run(t, v, cmd)
			}
			assert.Equal(t, tt.expected, v.SelectedIndex())
		})
	}
}

func TestView_ReplaceCurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a selection", func(t *testing.T) {
		v, _ := newLoadedView(t)
		v = search(t, v, "the")

		v, cmd := v.Update(keyRunes("r"))
		assert.Nil(t, cmd)
		assert.Equal(t, ModeMatches, v.Mode())
		assert.Equal(t, ErrNoSelection.Error(), v.StatusMessage())
	})

	t.Run("replaces the selected match and refreshes", func(t *testing.T) {
		v, editor := newLoadedView(t)
		v = search(t, v, "the")

		v, cmd := v.Update(keyRunes("n"))
		v = run(t, v, cmd)
		v, cmd = v.Update(keyRunes("n"))
		v = run(t, v, cmd)

		v, _ = v.Update(keyRunes("r"))
		assert.Equal(t, ModeReplacement, v.Mode())
		for _, r := range "a" {
			v, _ = v.Update(keyRunes(string(r)))
		}

		v, cmd = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
		v = run(t, v, cmd)

		buf, err := editor.Buffer(ctx)
		require.NoError(t, err)
		assert.Equal(t, "the cat and a dog and the bird", buf.Current)
	})
}

func TestView_ReplaceAll(t *testing.T) {
	v, editor := newLoadedView(t)
	v = search(t, v, "the")

	v, _ = v.Update(keyRunes("a"))
	require.Equal(t, ModeReplacement, v.Mode())
	v, _ = v.Update(keyRunes("A"))

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	replaced := cmd()
	v, refresh := v.Update(replaced)
	v = run(t, v, refresh)

	buf, err := editor.Buffer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A cat and A dog and A bird", buf.Current)
	assert.Empty(t, v.Matches())
	assert.Equal(t, "Replaced 3", v.StatusMessage())
}

func TestView_ReplacementEscape(t *testing.T) {
	v, _ := newLoadedView(t)
	v = search(t, v, "the")

	v, _ = v.Update(keyRunes("a"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeMatches, v.Mode())
}

func TestView_Escape(t *testing.T) {
	v, _ := newLoadedView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_NewFind(t *testing.T) {
	v, _ := newLoadedView(t)
	v = search(t, v, "the")

	v, _ = v.Update(keyRunes("/"))
	assert.Equal(t, ModePattern, v.Mode())
}

func TestView_ErrorOccurred(t *testing.T) {
	v, _ := newLoadedView(t)

	v, _ = v.Update(messages.ErrorOccurred{Err: errors.New("boom")})
	assert.EqualError(t, v.Err(), "boom")
	assert.Contains(t, v.View(), "Error: boom")
}

func TestView_Reset(t *testing.T) {
	v, _ := newLoadedView(t)
	v = search(t, v, "the")

	v.Reset()
	assert.Equal(t, ModePattern, v.Mode())
	assert.Empty(t, v.Matches())
	assert.Equal(t, "", v.Pattern())
	assert.NoError(t, v.Err())
}
