package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change textdesk settings.

Settings are stored in ~/.textdesk/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting.

List values (normalise.steps) are comma separated, e.g.
  textdesk settings set normalise.steps "newlines,trim_lines,case:sentence"`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the setting keys",
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Backend]")
	cmd.Printf("  URL: %s\n", valueOr(settings.Backend.URL, "(not set)"))
	cmd.Printf("  Timeout: %ds\n", settings.Backend.TimeoutSeconds)
	cmd.Printf("  Rate: %g requests/s\n", settings.Backend.RatePerSecond)
	cmd.Println()

	cmd.Println("[Rewrite]")
	cmd.Printf("  Provider: %s\n", settings.Rewrite.Provider.Description())
	if settings.Rewrite.Provider.IsLocal() {
		cmd.Printf("  Model: %s\n", settings.Rewrite.Model)
		cmd.Printf("  Base URL: %s\n", settings.Rewrite.BaseURL)
	}
	cmd.Println()

	cmd.Println("[Frequency]")
	cmd.Printf("  Top N: %d\n", settings.Frequency.TopN)
	cmd.Printf("  Segmentation: %s\n", settings.Frequency.Segmentation)
	cmd.Printf("  Exclude stopwords: %t\n", settings.Frequency.ExcludeStopwords)
	cmd.Println()

	cmd.Println("[Summary]")
	cmd.Printf("  Method: %s\n", settings.Summary.Method.Description())
	cmd.Printf("  Sentences: %d\n", settings.Summary.Sentences)
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Mode: %s\n", settings.Storage.Mode.Description())
	cmd.Println()

	cmd.Println("[Normalise]")
	cmd.Printf("  Steps: %s\n", strings.Join(settings.Normalise.Steps, ", "))

	if err := settingsService.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s = %s\n", args[0], args[1])

	if args[0] == "storage.mode" && domain.StorageMode(args[1]) == domain.StorageMemory {
		cmd.Println("Note: in memory mode the buffer does not survive between commands.")
	}
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured
	}
	for _, k := range settingsService.Keys() {
		cmd.Println(k)
	}
	return nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
