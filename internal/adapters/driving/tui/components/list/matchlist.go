// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// MatchList displays matches with their surrounding context.
// The selected row mirrors the editor's match cursor; -1 means none.
type MatchList struct {
	matches  []domain.Match
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewMatchList creates a new match list component.
func NewMatchList(s *styles.Styles) *MatchList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &MatchList{
		selected: -1,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the match list.
func (m *MatchList) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the owning view drives selection through the editor.
func (m *MatchList) Update(_ tea.Msg) (*MatchList, tea.Cmd) {
	return m, nil
}

// View renders the match list.
func (m *MatchList) View() string {
	if len(m.matches) == 0 {
		return m.styles.Muted.Render("No matches")
	}

	lines := make([]string, 0, len(m.matches)+2)
	header := m.styles.Subtitle.Render(fmt.Sprintf("Matches (%d)", len(m.matches)))
	lines = append(lines, header, "")

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderMatch(i, m.matches[i]))
	}

	return strings.Join(lines, "\n")
}

// visibleRange keeps the selected row on screen.
func (m *MatchList) visibleRange() (int, int) {
	visible := m.height - 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := start + visible
	if end > len(m.matches) {
		end = len(m.matches)
	}
	return start, end
}

// renderMatch formats one match as "before [match] after".
func (m *MatchList) renderMatch(index int, match domain.Match) string {
	indicator := "  "
	if index == m.selected {
		indicator = "> "
	}

	before := flatten(match.ContextBefore)
	after := flatten(match.ContextAfter)
	prefix := fmt.Sprintf("%s%3d @%-6d ", indicator, index+1, match.Index)

	if index == m.selected {
		return m.styles.Selected.Render(prefix + before + "[" + flatten(match.Text) + "]" + after)
	}
	return m.styles.Normal.Render(prefix) +
		m.styles.Muted.Render(before) +
		m.styles.Match.Render(flatten(match.Text)) +
		m.styles.Muted.Render(after)
}

func flatten(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
}

// SetMatches replaces the list and clears the selection.
func (m *MatchList) SetMatches(matches []domain.Match) {
	m.matches = matches
	m.selected = -1
}

// Matches returns the current matches.
func (m *MatchList) Matches() []domain.Match {
	return m.matches
}

// Selected returns the selected index, or -1.
func (m *MatchList) Selected() int {
	return m.selected
}

// SetSelected sets the selected index. Out-of-range values clear the selection.
func (m *MatchList) SetSelected(index int) {
	if index >= 0 && index < len(m.matches) {
		m.selected = index
		return
	}
	m.selected = -1
}

// SelectedMatch returns the selected match, or nil if none.
func (m *MatchList) SelectedMatch() *domain.Match {
	if m.selected < 0 || m.selected >= len(m.matches) {
		return nil
	}
	return &m.matches[m.selected]
}

// SetDimensions sets the component dimensions.
func (m *MatchList) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

// Count returns the number of matches.
func (m *MatchList) Count() int {
	return len(m.matches)
}

// IsEmpty returns whether the list is empty.
func (m *MatchList) IsEmpty() bool {
	return len(m.matches) == 0
}
