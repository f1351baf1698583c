package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/views/analysis"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/views/find"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/views/text"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	menuView     *menu.View
	findView     *find.View
	textView     *text.View
	analysisView *analysis.View

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		findView:     find.NewView(s, km, ports.Editor),
		textView:     text.NewView(s, ports.Editor, ports.Normalise),
		analysisView: analysis.NewView(s, ports.Analysis),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.findView.WithContext(ctx)
	a.textView.WithContext(ctx)
	a.analysisView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("textdesk"),
		a.textView.Load(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.forwardKey(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewFind:
			a.findView.Reset()
			return a, a.findView.Init()
		case messages.ViewText:
			return a, a.textView.Init()
		case messages.ViewAnalysis:
			return a, a.analysisView.Init()
		case messages.ViewMenu:
			// Refresh the buffer summary; edits may have happened elsewhere.
			return a, a.textView.Load()
		case messages.ViewHelp:
		}
		return a, nil

	case messages.BufferLoaded:
		// Both the menu summary and the text view track the buffer.
		a.menuView, _ = a.menuView.Update(msg)
		a.textView, cmd = a.textView.Update(msg)
		return a, cmd

	case messages.FindCompleted, messages.MatchNavigated, messages.Replaced:
		a.findView, cmd = a.findView.Update(msg)
		return a, cmd

	case messages.AnalysisCompleted:
		a.analysisView, cmd = a.analysisView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewFind:
			a.findView, cmd = a.findView.Update(msg)
		case messages.ViewText:
			a.textView, cmd = a.textView.Update(msg)
		case messages.ViewAnalysis:
			a.analysisView, cmd = a.analysisView.Update(msg)
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the active view.
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewFind:
		a.findView, cmd = a.findView.Update(msg)
	case messages.ViewText:
		a.textView, cmd = a.textView.Update(msg)
	case messages.ViewAnalysis:
		a.analysisView, cmd = a.analysisView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) forwardKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewFind:
		a.findView, cmd = a.findView.Update(msg)
	case messages.ViewText:
		a.textView, cmd = a.textView.Update(msg)
	case messages.ViewAnalysis:
		a.analysisView, cmd = a.analysisView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewFind:
		return a.findView.View()
	case messages.ViewText:
		return a.textView.View()
	case messages.ViewAnalysis:
		return a.analysisView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
	}
	return a.menuView.View()
}

func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Find & Replace:
  (type)      Enter pattern
  ctrl+r      Toggle regular expression
  ctrl+t      Toggle case sensitivity
  enter       Find
  n / p       Next / previous match (wraps)
  r           Replace the current match
  a           Replace all matches
  /           New find

Text:
  j/k         Scroll
  o           Toggle original text
  u           Restore original text
  z           Normalise with the configured steps

Analysis:
  m           Cycle summary method
  + / -       More / fewer summary sentences
  r           Refresh

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.findView.SetDimensions(width, height)
	a.textView.SetDimensions(width, height)
	a.analysisView.SetDimensions(width, height)
}
