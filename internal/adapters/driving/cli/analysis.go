package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

var (
	freqTopN          int
	freqMinLength     int
	freqIgnoreCase    bool
	freqNoPunctuation bool
	freqNoStopwords   bool
	freqNoNumbers     bool
	freqNoSingle      bool
	freqSegmentation  string
	freqJSON          bool

	summarySentences int
	summaryMethod    string
	summaryTitle     string
)

var freqCmd = &cobra.Command{
	Use:   "freq",
	Short: "Rank the most frequent words",
	Long: `Rank the words of the working text by how often they occur.

Ties keep the order in which words first appear. Stopwords come from the
stopword list (see textdesk stopwords) and are matched exactly.`,
	Args: cobra.NoArgs,
	RunE: runFreq,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Build an extractive summary",
	Long: `Pick the most representative sentences of the working text.

Methods:
  position   - first, middle and last sentences
  frequency  - sentences with the most frequent words
  hybrid     - frequency, weighted towards the first and last sentences`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	defaults := domain.DefaultFrequencyOptions()
	f := freqCmd.Flags()
	f.IntVarP(&freqTopN, "top", "n", 0, "number of words to show (default from settings)")
	f.IntVar(&freqMinLength, "min-length", 1, "drop words shorter than this")
	f.BoolVar(&freqIgnoreCase, "ignore-case", defaults.IgnoreCase, "fold case before counting")
	f.BoolVar(&freqNoPunctuation, "exclude-punctuation", defaults.ExcludePunctuation, "strip punctuation")
	f.BoolVar(&freqNoStopwords, "exclude-stopwords", defaults.ExcludeStopwords, "drop stopwords (default from settings)")
	f.BoolVar(&freqNoNumbers, "exclude-numbers", defaults.ExcludeNumbers, "drop numbers")
	f.BoolVar(&freqNoSingle, "exclude-single", defaults.ExcludeSingleChars, "drop one-character words")
	f.StringVar(&freqSegmentation, "segmentation", "", "tokenizer: whitespace, unicode or backend (default from settings)")
	f.BoolVar(&freqJSON, "json", false, "output as JSON")

	s := summaryCmd.Flags()
	s.IntVarP(&summarySentences, "sentences", "n", 0, "number of sentences (default from settings)")
	s.StringVarP(&summaryMethod, "method", "m", "", "position, frequency or hybrid (default from settings)")
	s.StringVar(&summaryTitle, "title", "", "heading printed above the summary")

	rootCmd.AddCommand(freqCmd)
	rootCmd.AddCommand(summaryCmd)
}

func runFreq(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errNotConfigured
	}

	opts := domain.FrequencyOptions{
		TopN:               freqTopN,
		MinTokenLength:     freqMinLength,
		IgnoreCase:         freqIgnoreCase,
		ExcludePunctuation: freqNoPunctuation,
		ExcludeStopwords:   freqNoStopwords,
		ExcludeNumbers:     freqNoNumbers,
		ExcludeSingleChars: freqNoSingle,
		Segmentation:       domain.SegmentationMethod(freqSegmentation),
	}

	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			if !cmd.Flags().Changed("exclude-stopwords") {
				opts.ExcludeStopwords = settings.Frequency.ExcludeStopwords
			}
			if opts.Segmentation == "" {
				opts.Segmentation = settings.Frequency.Segmentation
			}
		}
	}

	counts, err := analysisService.WordFrequency(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("frequency failed: %w", err)
	}

	if freqJSON {
		return printJSON(cmd, counts)
	}
	printCounts(cmd, counts)
	return nil
}

func printCounts(cmd *cobra.Command, counts []domain.WordCount) {
	if len(counts) == 0 {
		cmd.Println("No words to count.")
		return
	}
	width := 0
	for _, c := range counts {
		if n := len([]rune(c.Token)); n > width {
			width = n
		}
	}
	for i, c := range counts {
		pad := strings.Repeat(" ", width-len([]rune(c.Token)))
		cmd.Printf("  %3d. %s%s  %d\n", i+1, c.Token, pad, c.Count)
	}
}

func runSummary(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errNotConfigured
	}

	req := domain.SummaryRequest{
		SentenceCount: summarySentences,
		Method:        domain.SummaryMethod(summaryMethod),
		Title:         summaryTitle,
	}
	if cmd.Flags().Changed("sentences") && summarySentences < 1 {
		return fmt.Errorf("--sentences must be at least 1")
	}

	summary, err := analysisService.Summarise(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}

	var b strings.Builder
	if summaryTitle != "" {
		fmt.Fprintf(&b, "# %s\n\n", summaryTitle)
	}
	b.WriteString(summary)
	b.WriteString("\n")
	return printMarkdown(cmd, b.String())
}
