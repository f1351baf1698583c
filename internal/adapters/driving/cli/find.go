package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

var (
	findRegex         bool
	findCaseSensitive bool
	findJSON          bool
)

var findCmd = &cobra.Command{
	Use:   "find <pattern>",
	Short: "Find every occurrence of a pattern",
	Long: `Find every occurrence of a pattern in the working text.

Matches are numbered from 0; use the numbers with select-replace, or step
through them with next and prev. The search is kept until the text changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Select the next match",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runNavigate(cmd, 1)
	},
}

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Select the previous match",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runNavigate(cmd, -1)
	},
}

func init() {
	addPatternFlags(findCmd, &findRegex, &findCaseSensitive)
	findCmd.Flags().BoolVar(&findJSON, "json", false, "output matches as JSON")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
}

func addPatternFlags(cmd *cobra.Command, useRegex, caseSensitive *bool) {
	cmd.Flags().BoolVarP(useRegex, "regex", "r", false, "treat the pattern as a regular expression")
	cmd.Flags().BoolVarP(caseSensitive, "case-sensitive", "c", false, "match case exactly")
}

func runFind(cmd *cobra.Command, args []string) error {
	if err := requireEditor(); err != nil {
		return err
	}

	set, err := editorService.Find(cmd.Context(), args[0], findRegex, findCaseSensitive)
	if err != nil {
		return fmt.Errorf("find failed: %w", err)
	}

	if findJSON {
		return printJSON(cmd, struct {
			Pattern string         `json:"pattern"`
			Count   int            `json:"count"`
			Matches []domain.Match `json:"matches"`
		}{set.Pattern, set.Count(), set.Matches})
	}

	if set.Count() == 0 {
		cmd.Println("No matches found.")
		return nil
	}

	cmd.Printf("%d matches:\n", set.Count())
	cmd.Println()
	for i, m := range set.Matches {
		cmd.Printf("  [%d] @%d  %s\n", i, m.Index, formatContext(m))
	}
	return nil
}

func runNavigate(cmd *cobra.Command, direction int) error {
	if err := requireEditor(); err != nil {
		return err
	}

	match, cursor, err := editorService.Navigate(cmd.Context(), direction)
	if err != nil {
		return err
	}
	if match == nil {
		cmd.Println("No matches.")
		return nil
	}

	set, _, err := editorService.Matches(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Printf("Match %d/%d @%d  %s\n", cursor.Current+1, set.Count(), match.Index, formatContext(*match))
	return nil
}

// formatContext shows a match with its surrounding text on one line.
func formatContext(m domain.Match) string {
	flat := func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	}
	before := flat(m.ContextBefore)
	if strings.TrimRightFunc(m.ContextBefore, unicode.IsSpace) != m.ContextBefore && before != "" {
		before += " "
	}
	after := flat(m.ContextAfter)
	if strings.TrimLeftFunc(m.ContextAfter, unicode.IsSpace) != m.ContextAfter && after != "" {
		after = " " + after
	}
	return fmt.Sprintf("...%s[%s]%s...", before, m.Text, after)
}
