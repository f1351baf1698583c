// Package analysis provides the word frequency, statistics and summary view.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driving"
)

// ErrNoAnalysisService indicates that no analysis service was provided.
var ErrNoAnalysisService = errors.New("analysis service is required")

const (
	topWords = 10
	barWidth = 30
)

// View shows the top words as a bar chart, the text statistics and a summary.
type View struct {
	styles   *styles.Styles
	analysis driving.AnalysisService
	ctx      context.Context

	words   []domain.WordCount
	stats   *domain.TextStats
	summary string

	method    domain.SummaryMethod
	sentences int

	scrollOffset int
	width        int
	height       int
	ready        bool
	loading      bool
	err          error
}

// NewView creates a new analysis view.
func NewView(s *styles.Styles, analysis driving.AnalysisService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		analysis:  analysis,
		ctx:       context.Background(),
		method:    domain.SummaryHybrid,
		sentences: domain.DefaultSentenceCount,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init runs the analyses.
func (v *View) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh returns a command that recomputes every panel.
func (v *View) Refresh() tea.Cmd {
	v.loading = true
	req := domain.SummaryRequest{SentenceCount: v.sentences, Method: v.method}
	return func() tea.Msg {
		if v.analysis == nil {
			return messages.AnalysisCompleted{Err: ErrNoAnalysisService}
		}

		stats, err := v.analysis.Stats(v.ctx)
		if err != nil {
			return messages.AnalysisCompleted{Err: err}
		}
		words, err := v.analysis.WordFrequency(v.ctx, domain.FrequencyOptions{
			TopN:               topWords,
			MinTokenLength:     1,
			IgnoreCase:         true,
			ExcludePunctuation: true,
			ExcludeStopwords:   true,
			ExcludeNumbers:     true,
			ExcludeSingleChars: true,
		})
		if err != nil {
			return messages.AnalysisCompleted{Err: err}
		}
		summary, err := v.analysis.Summarise(v.ctx, req)
		if err != nil && !errors.Is(err, domain.ErrEmptyInput) {
			return messages.AnalysisCompleted{Err: err}
		}
		return messages.AnalysisCompleted{Words: words, Stats: stats, Summary: summary}
	}
}

// Update handles messages for the analysis view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AnalysisCompleted:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.words, v.stats, v.summary = msg.Words, msg.Stats, msg.Summary
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "m":
		v.method = nextMethod(v.method)
		return v, v.Refresh()
	case "+", "=":
		v.sentences++
		return v, v.Refresh()
	case "-":
		if v.sentences > 1 {
			v.sentences--
			return v, v.Refresh()
		}
	case "r":
		return v, v.Refresh()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}
	return v, nil
}

func nextMethod(m domain.SummaryMethod) domain.SummaryMethod {
	all := domain.AllSummaryMethods()
	for i, candidate := range all {
		if candidate == m {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func (v *View) visibleLines() int {
	return max(v.height-6, 1)
}

func (v *View) maxScrollOffset() int {
	return max(len(v.buildContent())-v.visibleLines(), 0)
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	if v.stats == nil {
		return nil
	}

	lines := []string{v.styles.Subtitle.Render("Statistics")}
	s := v.stats
	lines = append(lines,
		formatField("Characters", fmt.Sprintf("%d (%d without spaces)", s.Characters, s.CharactersNoSpaces)),
		formatField("Lines", fmt.Sprintf("%d", s.Lines)),
		formatField("Paragraphs", fmt.Sprintf("%d", s.Paragraphs)),
		formatField("Sentences", fmt.Sprintf("%d", s.Sentences)),
		formatField("Words", fmt.Sprintf("%d (%d unique)", s.Words, s.UniqueWords)),
		"",
		v.styles.Subtitle.Render("Top words"),
	)

	if len(v.words) == 0 {
		lines = append(lines, v.styles.Muted.Render("  (none)"))
	}
	lines = append(lines, v.renderChart()...)

	lines = append(lines, "",
		v.styles.Subtitle.Render(fmt.Sprintf("Summary · %s · %d sentences", v.method, v.sentences)))
	if v.summary == "" {
		lines = append(lines, v.styles.Muted.Render("  (nothing to summarise)"))
	}
	for _, line := range wrap(v.summary, max(v.width-4, 20)) {
		lines = append(lines, "  "+line)
	}
	return lines
}

// renderChart draws one bar per word scaled to the most frequent word.
func (v *View) renderChart() []string {
	if len(v.words) == 0 {
		return nil
	}
	top := v.words[0].Count
	width := 0
	for _, w := range v.words {
		width = max(width, len([]rune(w.Token)))
	}

	lines := make([]string, 0, len(v.words))
	for _, w := range v.words {
		n := max(w.Count*barWidth/top, 1)
		bar := v.styles.FrequencyBar.Render(strings.Repeat("█", n))
		lines = append(lines, fmt.Sprintf("  %-*s %s %d", width, w.Token, bar, w.Count))
	}
	return lines
}

func formatField(label, value string) string {
	return fmt.Sprintf("  %-12s %s", label+":", value)
}

// wrap breaks text on spaces so no line exceeds width runes where possible.
func wrap(text string, width int) []string {
	var lines []string
	var current []string
	length := 0
	for _, word := range strings.Fields(text) {
		n := len([]rune(word))
		if length > 0 && length+1+n > width {
			lines = append(lines, strings.Join(current, " "))
			current, length = nil, 0
		}
		if length > 0 {
			length++
		}
		current = append(current, word)
		length += n
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// View renders the analysis view.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Analysis"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(v.width-4, 60)))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	case v.loading && v.stats == nil:
		b.WriteString(v.styles.Muted.Render("Analysing..."))
		b.WriteString("\n\n")
	default:
		lines := v.buildContent()
		end := min(v.scrollOffset+v.visibleLines(), len(lines))
		for i := v.scrollOffset; i < end; i++ {
			b.WriteString(lines[i])
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Help.Render("[↑/↓] scroll  [m] method  [+/-] sentences  [r] refresh  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Words returns the top words.
func (v *View) Words() []domain.WordCount {
	return v.words
}

// Stats returns the statistics.
func (v *View) Stats() *domain.TextStats {
	return v.stats
}

// Summary returns the summary.
func (v *View) Summary() string {
	return v.summary
}

// Method returns the summary method.
func (v *View) Method() domain.SummaryMethod {
	return v.method
}

// Sentences returns the summary length.
func (v *View) Sentences() int {
	return v.sentences
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
