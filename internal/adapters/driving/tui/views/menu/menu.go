// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool
}

// View is the main menu with a one-line summary of the loaded buffer.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	buffer   *domain.TextBuffer
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Find & Replace", View: messages.ViewFind},
			{Label: "View Text", View: messages.ViewText},
			{Label: "Analysis", View: messages.ViewAnalysis},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.BufferLoaded:
		v.buffer, v.err = msg.Buffer, msg.Err
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}
		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("textdesk"))
	b.WriteString("\n\n")
	b.WriteString(v.renderBuffer())
	b.WriteString("\n\n")

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString("> " + v.styles.Subtitle.Render(item.Label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(item.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))
	return b.String()
}

func (v *View) renderBuffer() string {
	switch {
	case v.err != nil:
		return v.styles.Warning.Render("No text loaded. Run: textdesk load <file>")
	case v.buffer == nil:
		return v.styles.Muted.Render("Loading...")
	}

	modified := ""
	if v.buffer.IsModified() {
		modified = ", modified"
	}
	return v.styles.Muted.Render(fmt.Sprintf("%s (%d chars%s)",
		v.buffer.Source, len([]rune(v.buffer.Current)), modified))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu items.
func (v *View) Items() []Item {
	return v.items
}
