package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/styles"
)

func TestNewPromptInput(t *testing.T) {
	in := NewPromptInput(styles.DefaultStyles(), "Find: ", "pattern")

	require.NotNil(t, in)
	assert.Equal(t, "", in.Value())
	assert.Equal(t, "Find: ", in.Label())
	assert.False(t, in.Focused())
}

func TestNewPromptInput_NilStyles(t *testing.T) {
	in := NewPromptInput(nil, "Find: ", "")

	require.NotNil(t, in)
	assert.NotNil(t, in.styles)
}

func TestPromptInput_Init(t *testing.T) {
	assert.NotNil(t, NewPromptInput(nil, "x", "").Init())
}

func TestPromptInput_Update(t *testing.T) {
	t.Run("focused input accepts runes", func(t *testing.T) {
		in := NewPromptInput(nil, "Find: ", "")
		in.Focus()

		updated, _ := in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
		assert.Equal(t, in, updated)
		assert.Equal(t, "a", in.Value())
	})

	t.Run("blurred input ignores runes", func(t *testing.T) {
		in := NewPromptInput(nil, "Find: ", "")

		in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
		assert.Equal(t, "", in.Value())
	})
}

func TestPromptInput_View(t *testing.T) {
	in := NewPromptInput(nil, "Replace with: ", "")
	in.SetValue("dog")

	view := in.View()
	assert.Contains(t, view, "Replace with:")
	assert.Contains(t, view, "dog")
}

func TestPromptInput_FocusBlur(t *testing.T) {
	in := NewPromptInput(nil, "Find: ", "")

	in.Focus()
	assert.True(t, in.Focused())

	in.Blur()
	assert.False(t, in.Focused())
}

func TestPromptInput_SetWidth(t *testing.T) {
	in := NewPromptInput(nil, "Find: ", "")

	in.SetWidth(100)
	assert.Equal(t, 100, in.Width())

	in.SetWidth(5)
	assert.Equal(t, 5, in.Width())
	assert.Equal(t, 20, in.textinput.Width)
}

func TestPromptInput_Reset(t *testing.T) {
	in := NewPromptInput(nil, "Find: ", "")
	in.SetValue("cat")

	in.Reset()
	assert.Equal(t, "", in.Value())
}
