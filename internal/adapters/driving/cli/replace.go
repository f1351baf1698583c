package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

var (
	replaceRegex         bool
	replaceCaseSensitive bool
	replaceScope         string

	selectRegex         bool
	selectCaseSensitive bool
	selectIndices       string
)

var replaceCmd = &cobra.Command{
	Use:   "replace <pattern> <replacement>",
	Short: "Replace matches of a pattern",
	Long: `Replace matches of a pattern in the working text.

The replacement is inserted literally, with --regex too: $1 and ${name}
are not expanded.`,
	Args: cobra.ExactArgs(2),
	RunE: runReplace,
}

var selectReplaceCmd = &cobra.Command{
	Use:   "select-replace <pattern> <replacement>",
	Short: "Replace selected matches by number",
	Long: `Replace only the matches whose numbers are given with --index.

Numbers are the positions printed by find, counted from 0. Every number is
checked before anything changes.`,
	Args: cobra.ExactArgs(2),
	RunE: runSelectReplace,
}

var replaceCurrentCmd = &cobra.Command{
	Use:   "replace-current <replacement>",
	Short: "Replace the match selected with next/prev",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaceCurrent,
}

func init() {
	addPatternFlags(replaceCmd, &replaceRegex, &replaceCaseSensitive)
	replaceCmd.Flags().StringVarP(&replaceScope, "scope", "s", string(domain.ReplaceScopeAll), "which matches to replace (all, first)")

	addPatternFlags(selectReplaceCmd, &selectRegex, &selectCaseSensitive)
	selectReplaceCmd.Flags().StringVarP(&selectIndices, "index", "i", "", "comma separated match numbers, e.g. 0,2")
	_ = selectReplaceCmd.MarkFlagRequired("index")

	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(selectReplaceCmd)
	rootCmd.AddCommand(replaceCurrentCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	if err := requireEditor(); err != nil {
		return err
	}

	scope := domain.ReplaceScope(replaceScope)
	if !scope.IsValid() {
		return fmt.Errorf("invalid scope %q: use all or first", replaceScope)
	}

	res, err := editorService.Replace(cmd.Context(), args[0], args[1], replaceRegex, replaceCaseSensitive, scope)
	if err != nil {
		return fmt.Errorf("replace failed: %w", err)
	}
	printReplaced(cmd, res)
	return nil
}

func runSelectReplace(cmd *cobra.Command, args []string) error {
	if err := requireEditor(); err != nil {
		return err
	}

	indices, err := parseIndices(selectIndices)
	if err != nil {
		return err
	}

	res, err := editorService.SelectiveReplace(cmd.Context(), args[0], args[1], indices, selectRegex, selectCaseSensitive)
	if err != nil {
		return fmt.Errorf("replace failed: %w", err)
	}
	printReplaced(cmd, res)
	return nil
}

func runReplaceCurrent(cmd *cobra.Command, args []string) error {
	if err := requireEditor(); err != nil {
		return err
	}

	res, err := editorService.ReplaceCurrent(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("replace failed: %w", err)
	}
	printReplaced(cmd, res)
	return nil
}

func printReplaced(cmd *cobra.Command, res *domain.ReplaceResult) {
	if res.Count == 0 {
		cmd.Println("No matches replaced.")
		return
	}
	noun := "matches"
	if res.Count == 1 {
		noun = "match"
	}
	cmd.Printf("Replaced %d %s.\n", res.Count, noun)
}

// parseIndices parses "0,2, 5" into match positions.
func parseIndices(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid match number %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}
