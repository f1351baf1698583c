package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textdesk/internal/frequency"
)

var (
	stopwordsJSON     bool
	stopwordsSeedLang string
)

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "Manage the stopword list",
	Long: `Manage the words that freq leaves out.

Words may be separated by spaces, commas or semicolons (including the
full-width ，and ；). Case is kept as typed.`,
	RunE: runStopwordsList,
}

var stopwordsAddCmd = &cobra.Command{
	Use:   "add <words...>",
	Short: "Add stopwords",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStopwordsAdd,
}

var stopwordsRemoveCmd = &cobra.Command{
	Use:   "remove <words...>",
	Short: "Remove stopwords",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStopwordsRemove,
}

var stopwordsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every stopword",
	RunE:  runStopwordsClear,
}

var stopwordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stopwords",
	RunE:  runStopwordsList,
}

var stopwordsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add a built-in stopword list",
	Long: `Add a built-in stopword list to the set.

--lang selects the list: en (default), zh or all.`,
	RunE: runStopwordsSeed,
}

func init() {
	stopwordsListCmd.Flags().BoolVar(&stopwordsJSON, "json", false, "output as JSON")
	stopwordsSeedCmd.Flags().StringVar(&stopwordsSeedLang, "lang", frequency.LangEnglish, "built-in list: en, zh or all")

	stopwordsCmd.AddCommand(stopwordsAddCmd)
	stopwordsCmd.AddCommand(stopwordsRemoveCmd)
	stopwordsCmd.AddCommand(stopwordsClearCmd)
	stopwordsCmd.AddCommand(stopwordsListCmd)
	stopwordsCmd.AddCommand(stopwordsSeedCmd)
	rootCmd.AddCommand(stopwordsCmd)
}

func runStopwordsAdd(cmd *cobra.Command, args []string) error {
	if stopwordService == nil {
		return errNotConfigured
	}
	words, err := stopwordService.Add(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}
	cmd.Printf("Added %d stopwords.\n", len(words))
	return nil
}

func runStopwordsRemove(cmd *cobra.Command, args []string) error {
	if stopwordService == nil {
		return errNotConfigured
	}
	words, err := stopwordService.Remove(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}
	cmd.Printf("Removed %d stopwords.\n", len(words))
	return nil
}

func runStopwordsClear(cmd *cobra.Command, _ []string) error {
	if stopwordService == nil {
		return errNotConfigured
	}
	if err := stopwordService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}
	cmd.Println("Stopwords cleared.")
	return nil
}

func runStopwordsList(cmd *cobra.Command, _ []string) error {
	if stopwordService == nil {
		return errNotConfigured
	}
	words, err := stopwordService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if stopwordsJSON {
		return printJSON(cmd, words)
	}
	if len(words) == 0 {
		cmd.Println("No stopwords. Add some with 'textdesk stopwords add' or 'textdesk stopwords seed'.")
		return nil
	}
	cmd.Printf("%d stopwords:\n", len(words))
	cmd.Println(strings.Join(words, ", "))
	return nil
}

func runStopwordsSeed(cmd *cobra.Command, _ []string) error {
	if stopwordService == nil {
		return errNotConfigured
	}
	n, err := stopwordService.Seed(cmd.Context(), stopwordsSeedLang)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	cmd.Printf("Added %d built-in stopwords.\n", n)
	return nil
}
