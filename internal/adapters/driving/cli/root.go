// Package cli implements the textdesk command line.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textdesk/internal/core/ports/driving"
	"github.com/custodia-labs/textdesk/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services wired by main.
var (
	editorService    driving.EditorService
	analysisService  driving.AnalysisService
	stopwordService  driving.StopwordService
	normaliseService driving.NormaliseService
	nlpService       driving.NLPService
	settingsService  driving.SettingsService
)

// Global flags.
var (
	verboseFlag bool
	prettyFlag  bool
)

var errNotConfigured = errors.New("service not configured")

var rootCmd = &cobra.Command{
	Use:   "textdesk",
	Short: "Search, replace and analyse text from the terminal",
	Long: `textdesk keeps one text buffer and lets you search it, replace matches,
rank word frequencies, build extractive summaries, normalise whitespace and
case, and send the text to an NLP backend.

Start by loading some text:
  textdesk load notes.md
  cat report.txt | textdesk load`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&prettyFlag, "pretty", false, "render summaries and statistics as markdown")
}

// Services groups the driving ports used by the commands.
type Services struct {
	Editor    driving.EditorService
	Analysis  driving.AnalysisService
	Stopwords driving.StopwordService
	Normalise driving.NormaliseService
	NLP       driving.NLPService
	Settings  driving.SettingsService
}

// SetServices installs the services used by every command.
func SetServices(s *Services) {
	editorService = s.Editor
	analysisService = s.Analysis
	stopwordService = s.Stopwords
	normaliseService = s.Normalise
	nlpService = s.NLP
	settingsService = s.Settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func requireEditor() error {
	if editorService == nil {
		return errNotConfigured
	}
	return nil
}
