package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

var (
	normNewlines bool
	normTrim     bool
	normCollapse bool
	normRemove   bool
	normMerge    bool
	normCase     string
	normApply    bool
)

var normaliseCmd = &cobra.Command{
	Use:     "normalise",
	Aliases: []string{"normalize"},
	Short:   "Clean up whitespace, blank lines and case",
	Long: `Normalise the working text line by line.

Steps always run in the same order: newlines, trim, collapse, remove or
merge empty lines, then case. Without any step flags the steps listed in
the normalise.steps setting are used.

The result is printed; pass --apply to store it in the buffer.`,
	Args: cobra.NoArgs,
	RunE: runNormalise,
}

func init() {
	f := normaliseCmd.Flags()
	f.BoolVar(&normNewlines, "newlines", false, "convert CRLF and CR to LF")
	f.BoolVar(&normTrim, "trim", false, "trim every line")
	f.BoolVar(&normCollapse, "collapse", false, "collapse runs of spaces within a line")
	f.BoolVar(&normRemove, "remove-empty", false, "drop blank lines")
	f.BoolVar(&normMerge, "merge-empty", false, "collapse consecutive blank lines")
	f.StringVar(&normCase, "case", "", "none, upper, lower, title or sentence")
	f.BoolVar(&normApply, "apply", false, "write the result to the buffer")

	rootCmd.AddCommand(normaliseCmd)
}

func runNormalise(cmd *cobra.Command, _ []string) error {
	if normaliseService == nil {
		return errNotConfigured
	}

	opts := normaliseOptions(cmd)
	ctx := cmd.Context()

	if normApply {
		buf, err := normaliseService.Apply(ctx, opts)
		if err != nil {
			return fmt.Errorf("normalise failed: %w", err)
		}
		cmd.Printf("Buffer normalised (%d characters).\n", len([]rune(buf.Current)))
		return nil
	}

	text, err := normaliseService.Preview(ctx, opts)
	if err != nil {
		return fmt.Errorf("normalise failed: %w", err)
	}
	cmd.Print(text)
	if !strings.HasSuffix(text, "\n") {
		cmd.Println()
	}
	return nil
}

// normaliseOptions builds options from flags, or from settings when no
// step flag was given.
func normaliseOptions(cmd *cobra.Command) domain.NormaliseOptions {
	stepFlags := []string{"newlines", "trim", "collapse", "remove-empty", "merge-empty", "case"}
	anySet := false
	for _, name := range stepFlags {
		if cmd.Flags().Changed(name) {
			anySet = true
			break
		}
	}
	if !anySet {
		return normaliseService.Defaults()
	}

	return domain.NormaliseOptions{
		NormalizeNewlines:  normNewlines,
		TrimLines:          normTrim,
		CollapseWhitespace: normCollapse,
		RemoveEmptyLines:   normRemove,
		MergeEmptyLines:    normMerge,
		Case:               domain.CaseTransform(normCase),
	}
}
