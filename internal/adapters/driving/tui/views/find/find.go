// Package find provides the find and replace view for the TUI.
package find

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driving"
)

// Mode is the part of the view that receives key presses.
type Mode int

const (
	// ModePattern edits the search pattern.
	ModePattern Mode = iota
	// ModeMatches navigates the match list.
	ModeMatches
	// ModeReplacement edits the replacement text.
	ModeReplacement
)

// View is the find and replace view: pattern input, match list and status bar.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	pattern     *input.PromptInput
	replacement *input.PromptInput
	list        *list.MatchList
	statusbar   *status.Bar

	editor driving.EditorService
	ctx    context.Context

	useRegex      bool
	caseSensitive bool
	replaceAll    bool
	lastPattern   string
	notice        string

	mode   Mode
	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new find view.
func NewView(s *styles.Styles, km *keymap.KeyMap, editor driving.EditorService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:      s,
		keymap:      km,
		pattern:     input.NewPromptInput(s, "Find: ", "text or regular expression"),
		replacement: input.NewPromptInput(s, "Replace with: ", "replacement"),
		list:        list.NewMatchList(s),
		statusbar:   status.NewBar(s, km),
		editor:      editor,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
	v.pattern.Focus()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.pattern.Init()
}

// Update handles messages for the find view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FindCompleted:
		v.handleFindCompleted(msg)
		return v, nil

	case messages.MatchNavigated:
		v.handleNavigated(msg)
		return v, nil

	case messages.Replaced:
		return v, v.handleReplaced(msg)

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	switch v.mode {
	case ModePattern:
		v.pattern, cmd = v.pattern.Update(msg)
	case ModeReplacement:
		v.replacement, cmd = v.replacement.Update(msg)
	case ModeMatches:
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.mode {
	case ModePattern:
		return v.handlePatternKey(msg)
	case ModeReplacement:
		return v.handleReplacementKey(msg)
	case ModeMatches:
		return v.handleMatchesKey(msg)
	}
	return v, nil
}

func (v *View) handlePatternKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		return v, backToMenu
	case msg.Type == tea.KeyEnter:
		pattern := v.pattern.Value()
		if pattern == "" {
			return v, nil
		}
		v.statusbar.SetState(status.StateSearching)
		return v, v.find(pattern)
	case keymap.Matches(msg.String(), v.keymap.ToggleRegex):
		v.useRegex = !v.useRegex
		return v, nil
	case keymap.Matches(msg.String(), v.keymap.ToggleCase):
		v.caseSensitive = !v.caseSensitive
		return v, nil
	}

	var cmd tea.Cmd
	v.pattern, cmd = v.pattern.Update(msg)
	return v, cmd
}

func (v *View) handleMatchesKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, backToMenu
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Next), keymap.Matches(key, v.keymap.Down):
		return v, v.navigate(1)
	case keymap.Matches(key, v.keymap.Prev), keymap.Matches(key, v.keymap.Up):
		return v, v.navigate(-1)
	case keymap.Matches(key, v.keymap.Replace):
		if v.list.Selected() < 0 {
			v.statusbar.SetMessage(ErrNoSelection.Error())
			return v, nil
		}
		return v, v.startReplacement(false)
	case keymap.Matches(key, v.keymap.ReplaceAll):
		if v.list.IsEmpty() {
			return v, nil
		}
		return v, v.startReplacement(true)
	case keymap.Matches(key, v.keymap.NewFind):
		v.mode = ModePattern
		v.statusbar.SetMessage("")
		return v, v.pattern.Focus()
	}
	return v, nil
}

func (v *View) handleReplacementKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.replacement.Blur()
		v.mode = ModeMatches
		v.statusbar.SetState(status.StateMatches)
		v.statusbar.SetMessage("")
		return v, nil
	case tea.KeyEnter:
		v.replacement.Blur()
		v.mode = ModeMatches
		return v, v.replace(v.replacement.Value())
	}

	var cmd tea.Cmd
	v.replacement, cmd = v.replacement.Update(msg)
	return v, cmd
}

func (v *View) startReplacement(all bool) tea.Cmd {
	v.replaceAll = all
	v.mode = ModeReplacement
	v.statusbar.SetState(status.StateEditing)
	if all {
		v.statusbar.SetMessage(fmt.Sprintf("Replace all %d matches", v.list.Count()))
	} else {
		v.statusbar.SetMessage(fmt.Sprintf("Replace match %d", v.list.Selected()+1))
	}
	return v.replacement.Focus()
}

func backToMenu() tea.Msg {
	return messages.ViewChanged{View: messages.ViewMenu}
}

// find runs the search and reports the match set.
func (v *View) find(pattern string) tea.Cmd {
	useRegex, caseSensitive := v.useRegex, v.caseSensitive
	return func() tea.Msg {
		if v.editor == nil {
			return messages.ErrorOccurred{Err: ErrNoEditorService}
		}
		set, err := v.editor.Find(v.ctx, pattern, useRegex, caseSensitive)
		return messages.FindCompleted{Matches: set, Err: err}
	}
}

func (v *View) navigate(direction int) tea.Cmd {
	return func() tea.Msg {
		if v.editor == nil {
			return messages.ErrorOccurred{Err: ErrNoEditorService}
		}
		match, cursor, err := v.editor.Navigate(v.ctx, direction)
		return messages.MatchNavigated{Match: match, Cursor: cursor, Err: err}
	}
}

func (v *View) replace(replacement string) tea.Cmd {
	all := v.replaceAll
	pattern := v.lastPattern
	useRegex, caseSensitive := v.useRegex, v.caseSensitive
	return func() tea.Msg {
		if v.editor == nil {
			return messages.ErrorOccurred{Err: ErrNoEditorService}
		}
		var (
			res *domain.ReplaceResult
			err error
		)
		if all {
			res, err = v.editor.Replace(v.ctx, pattern, replacement, useRegex, caseSensitive, domain.ReplaceScopeAll)
		} else {
			res, err = v.editor.ReplaceCurrent(v.ctx, replacement)
		}
		return messages.Replaced{Result: res, Err: err}
	}
}

func (v *View) handleFindCompleted(msg messages.FindCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.lastPattern = msg.Matches.Pattern
	v.list.SetMatches(msg.Matches.Matches)
	v.statusbar.SetState(status.StateMatches)
	v.statusbar.SetMatches(msg.Matches.Count(), -1)
	v.statusbar.SetMessage(v.notice)
	v.notice = ""

	v.mode = ModeMatches
	v.pattern.Blur()
}

func (v *View) handleNavigated(msg messages.MatchNavigated) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}
	if msg.Match == nil {
		return
	}
	v.list.SetSelected(msg.Cursor.Current)
	v.statusbar.SetState(status.StateMatches)
	v.statusbar.SetMatches(v.list.Count(), msg.Cursor.Current)
	v.statusbar.SetMessage("")
}

// handleReplaced reports the count and searches again, since any edit
// invalidates the previous match set.
func (v *View) handleReplaced(msg messages.Replaced) tea.Cmd {
	if msg.Err != nil {
		v.setError(msg.Err)
		return nil
	}
	v.replacement.Reset()
	if v.lastPattern == "" {
		return nil
	}
	v.notice = fmt.Sprintf("Replaced %d", msg.Result.Count)
	return v.find(v.lastPattern)
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the find view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)
	sections = append(sections, v.styles.Title.Render("textdesk · Find & Replace"), "")
	sections = append(sections, v.pattern.View(), v.renderFlags(), "")

	if v.mode == ModeReplacement {
		sections = append(sections, v.replacement.View(), "")
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderFlags() string {
	flags := []string{
		checkbox("regex", v.useRegex) + " [ctrl+r]",
		checkbox("case sensitive", v.caseSensitive) + " [ctrl+t]",
	}
	return v.styles.Muted.Render(strings.Join(flags, "   "))
}

func checkbox(label string, on bool) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.pattern.SetWidth(width)
	v.replacement.SetWidth(width)
	v.list.SetDimensions(width, height-12)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Mode returns the part of the view receiving keys.
func (v *View) Mode() Mode {
	return v.mode
}

// Pattern returns the pattern being edited.
func (v *View) Pattern() string {
	return v.pattern.Value()
}

// SetPattern sets the pattern.
func (v *View) SetPattern(pattern string) {
	v.pattern.SetValue(pattern)
}

// Matches returns the matches of the last search.
func (v *View) Matches() []domain.Match {
	return v.list.Matches()
}

// SelectedIndex returns the selected match position, or -1.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// UseRegex reports whether the pattern is treated as a regular expression.
func (v *View) UseRegex() bool {
	return v.useRegex
}

// CaseSensitive reports whether matching is case sensitive.
func (v *View) CaseSensitive() bool {
	return v.caseSensitive
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset returns the view to pattern entry with no matches.
func (v *View) Reset() {
	v.mode = ModePattern
	v.pattern.Focus()
	v.pattern.SetValue("")
	v.replacement.Reset()
	v.replacement.Blur()
	v.list.SetMatches(nil)
	v.lastPattern = ""
	v.err = nil
	v.statusbar.Clear()
}
