package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

var (
	loadText     string
	showOriginal bool
	statsJSON    bool
	historyLimit int
)

var loadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Load text into the buffer",
	Long: `Load text into the buffer, replacing whatever was there.

The text can come from a file (plain text, markdown or HTML), from --text,
or from standard input when it is piped:
  textdesk load notes.md
  textdesk load --text "some words"
  curl -s https://example.com | textdesk load`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the working text",
	RunE:  runShow,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the text as it was loaded",
	RunE:  runReset,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show text statistics",
	RunE:  runStats,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent changes to the buffer",
	RunE:  runHistory,
}

func init() {
	loadCmd.Flags().StringVarP(&loadText, "text", "t", "", "load this text instead of a file")
	showCmd.Flags().BoolVar(&showOriginal, "original", false, "print the text as loaded")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of revisions")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	if err := requireEditor(); err != nil {
		return err
	}
	ctx := cmd.Context()

	var (
		buf *domain.TextBuffer
		err error
	)
	switch {
	case len(args) == 1:
		buf, err = editorService.LoadFile(ctx, args[0])
	case cmd.Flags().Changed("text"):
		buf, err = editorService.Load(ctx, loadText, "text")
	default:
		var text string
		text, err = readStdin(cmd)
		if err == nil {
			buf, err = editorService.Load(ctx, text, "stdin")
		}
	}
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	cmd.Printf("Loaded %d characters from %s\n", len([]rune(buf.Current)), buf.Source)
	return nil
}

// readStdin reads piped input. An interactive terminal is rejected so the
// command does not hang waiting for input.
func readStdin(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errors.New("no input: pass a file, use --text, or pipe text on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func runShow(cmd *cobra.Command, _ []string) error {
	if err := requireEditor(); err != nil {
		return err
	}

	buf, err := editorService.Buffer(cmd.Context())
	if err != nil {
		return err
	}

	text := buf.Current
	if showOriginal {
		text = buf.Original
	}
	cmd.Print(text)
	if !strings.HasSuffix(text, "\n") {
		cmd.Println()
	}
	return nil
}

func runReset(cmd *cobra.Command, _ []string) error {
	if err := requireEditor(); err != nil {
		return err
	}

	if _, err := editorService.Reset(cmd.Context()); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	cmd.Println("Buffer restored to the loaded text.")
	return nil
}

func runStats(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errNotConfigured
	}

	stats, err := analysisService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	if statsJSON {
		return printJSON(cmd, stats)
	}
	return printMarkdown(cmd, formatStats(stats))
}

func formatStats(s *domain.TextStats) string {
	var b strings.Builder
	b.WriteString("# Text statistics\n\n")
	b.WriteString("| Measure | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Characters | %d |\n", s.Characters)
	fmt.Fprintf(&b, "| Characters (no spaces) | %d |\n", s.CharactersNoSpaces)
	fmt.Fprintf(&b, "| Lines | %d |\n", s.Lines)
	fmt.Fprintf(&b, "| Paragraphs | %d |\n", s.Paragraphs)
	fmt.Fprintf(&b, "| Sentences | %d |\n", s.Sentences)
	fmt.Fprintf(&b, "| Words | %d |\n", s.Words)
	fmt.Fprintf(&b, "| Unique words | %d |\n", s.UniqueWords)
	fmt.Fprintf(&b, "| Average frequency | %.2f |\n", s.AverageFrequency)
	fmt.Fprintf(&b, "| Max frequency | %d |\n", s.MaxFrequency)
	fmt.Fprintf(&b, "| Average sentence length | %.2f |\n", s.AverageSentenceLength)
	return b.String()
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if err := requireEditor(); err != nil {
		return err
	}

	revs, err := editorService.History(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(revs) == 0 {
		cmd.Println("No history.")
		return nil
	}

	for _, r := range revs {
		preview := strings.Join(strings.Fields(r.Text), " ")
		cmd.Printf("  %s  %-18s %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"), r.Reason, truncate(preview, 50))
	}
	return nil
}
