// Package text provides the scrolling view of the working text.
package text

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driving"
)

// ErrNoEditorService indicates that no editor service was provided.
var ErrNoEditorService = errors.New("editor service is required")

// View shows the working text, or the original with "o".
// "u" restores the original and "z" runs the default normaliser.
type View struct {
	styles    *styles.Styles
	editor    driving.EditorService
	normalise driving.NormaliseService
	ctx       context.Context

	buffer       *domain.TextBuffer
	showOriginal bool
	lines        []string
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	notice       string
}

// NewView creates a new text view. normalise may be nil.
func NewView(s *styles.Styles, editor driving.EditorService, normalise driving.NormaliseService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		editor:    editor,
		normalise: normalise,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the buffer.
func (v *View) Init() tea.Cmd {
	v.notice = ""
	return v.Load()
}

// Load returns a command that reads the buffer.
func (v *View) Load() tea.Cmd {
	return func() tea.Msg {
		if v.editor == nil {
			return messages.BufferLoaded{Err: ErrNoEditorService}
		}
		buf, err := v.editor.Buffer(v.ctx)
		return messages.BufferLoaded{Buffer: buf, Err: err}
	}
}

func (v *View) reset() tea.Cmd {
	return func() tea.Msg {
		if v.editor == nil {
			return messages.BufferLoaded{Err: ErrNoEditorService}
		}
		buf, err := v.editor.Reset(v.ctx)
		return messages.BufferLoaded{Buffer: buf, Err: err}
	}
}

func (v *View) normaliseDefaults() tea.Cmd {
	return func() tea.Msg {
		buf, err := v.normalise.Apply(v.ctx, v.normalise.Defaults())
		return messages.BufferLoaded{Buffer: buf, Err: err}
	}
}

// Update handles messages for the text view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.BufferLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.buffer = msg.Buffer
		v.wrapContent()
		if v.scrollOffset > v.maxScrollOffset() {
			v.scrollOffset = v.maxScrollOffset()
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "pgup", "ctrl+u":
		v.scrollOffset = max(v.scrollOffset-v.visibleLines(), 0)
	case "pgdown", "ctrl+d":
		v.scrollOffset = min(v.scrollOffset+v.visibleLines(), v.maxScrollOffset())
	case "home", "g":
		v.scrollOffset = 0
	case "end", "G":
		v.scrollOffset = v.maxScrollOffset()
	case "o":
		v.showOriginal = !v.showOriginal
		v.scrollOffset = 0
		v.wrapContent()
	case "u":
		v.notice = "Restored original text"
		return v, v.reset()
	case "z":
		if v.normalise == nil {
			v.notice = "Normaliser not available"
			return v, nil
		}
		v.notice = "Normalised"
		return v, v.normaliseDefaults()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// wrapContent splits the displayed text into lines that fit the width.
func (v *View) wrapContent() {
	text := v.Content()
	if text == "" {
		v.lines = nil
		return
	}

	contentWidth := max(v.width-4, 20)
	rawLines := strings.Split(text, "\n")
	v.lines = make([]string, 0, len(rawLines))

	for _, line := range rawLines {
		runes := []rune(line)
		for len(runes) > contentWidth {
			v.lines = append(v.lines, string(runes[:contentWidth]))
			runes = runes[contentWidth:]
		}
		v.lines = append(v.lines, string(runes))
	}
}

func (v *View) visibleLines() int {
	return max(v.height-7, 1)
}

func (v *View) maxScrollOffset() int {
	return max(len(v.lines)-v.visibleLines(), 0)
}

// View renders the text view.
func (v *View) View() string {
	var b strings.Builder

	title := "Working text"
	if v.showOriginal {
		title = "Original text"
	}
	if v.buffer != nil && v.buffer.Source != "" {
		title += " · " + v.buffer.Source
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(v.width-4, 60)))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	case len(v.lines) == 0:
		b.WriteString(v.styles.Muted.Render("(No text)"))
		b.WriteString("\n\n")
	default:
		visible := v.visibleLines()
		end := min(v.scrollOffset+visible, len(v.lines))
		for i := v.scrollOffset; i < end; i++ {
			b.WriteString(v.styles.Normal.Render(v.lines[i]))
			b.WriteString("\n")
		}
		if len(v.lines) > visible {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("\n  Line %d-%d of %d",
				v.scrollOffset+1, end, len(v.lines))))
		}
		b.WriteString("\n\n")
	}

	if v.notice != "" && v.err == nil {
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [o] original  [u] restore  [z] normalise  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.wrapContent()
}

// Content returns the text being displayed.
func (v *View) Content() string {
	if v.buffer == nil {
		return ""
	}
	if v.showOriginal {
		return v.buffer.Original
	}
	return v.buffer.Current
}

// Lines returns the wrapped lines.
func (v *View) Lines() []string {
	return v.lines
}

// ScrollOffset returns the first visible line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
