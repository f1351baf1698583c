package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for textdesk.

With a file argument the file is loaded first; otherwise the current
buffer is used.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Find / Select
  n, p     - Next / previous match
  r, a     - Replace current / all
  Esc      - Back
  ctrl+c   - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUIApp(cmd, args)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// newTUIApp loads the optional file and builds the app.
func newTUIApp(cmd *cobra.Command, args []string) (*tui.App, error) {
	if err := requireEditor(); err != nil {
		return nil, err
	}
	if len(args) == 1 {
		if _, err := editorService.LoadFile(cmd.Context(), args[0]); err != nil {
			return nil, fmt.Errorf("loading %s: %w", args[0], err)
		}
	}

	ports := tui.NewPorts(editorService, analysisService)
	ports.Normalise = normaliseService

	app, err := tui.NewApp(ports)
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app.WithContext(cmd.Context()), nil
}
