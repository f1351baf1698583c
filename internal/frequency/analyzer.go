// Package frequency ranks the word tokens of a text.
package frequency

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
	"github.com/custodia-labs/textdesk/internal/logger"
)

// Analyzer computes token frequency tables.
// The stopword store is read once per call; a nil store behaves as empty.
type Analyzer struct {
	stopwords  driven.StopwordStore
	segmenters *SegmenterRegistry
}

// New creates an analyzer. A nil registry gets the default segmenters.
func New(stopwords driven.StopwordStore, segmenters *SegmenterRegistry) *Analyzer {
	if segmenters == nil {
		segmenters = NewSegmenterRegistry()
		RegisterDefaults(segmenters)
	}
	return &Analyzer{
		stopwords:  stopwords,
		segmenters: segmenters,
	}
}

// Analyze returns the top tokens of text ranked by count.
func (a *Analyzer) Analyze(ctx context.Context, text string, opts domain.FrequencyOptions) ([]domain.WordCount, error) {
	opts = opts.WithDefaults()
	table, err := a.Table(ctx, text, opts)
	if err != nil {
		return nil, err
	}
	return table.Top(opts.TopN), nil
}

// Table returns the full ranked table for text.
// Steps run in order: case fold, punctuation strip, segment, filter, count.
func (a *Analyzer) Table(ctx context.Context, text string, opts domain.FrequencyOptions) (*Table, error) {
	opts = opts.WithDefaults()
	if strings.TrimSpace(text) == "" {
		return newTable(), nil
	}

	if opts.IgnoreCase {
		text = strings.ToLower(text)
	}
	if opts.ExcludePunctuation {
		text = StripPunctuation(text)
	}

	seg, err := a.segmenters.Get(opts.Segmentation)
	if err != nil {
		return nil, err
	}
	tokens, err := seg.Segment(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("segment with %s: %w", opts.Segmentation, err)
	}

	stop, err := a.stopwordSet(ctx, opts.ExcludeStopwords)
	if err != nil {
		return nil, err
	}

	table := newTable()
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		n := utf8.RuneCountInString(tok)
		if n < opts.MinTokenLength {
			continue
		}
		if opts.ExcludeSingleChars && n == 1 {
			continue
		}
		if opts.ExcludeNumbers && IsNumeric(tok) {
			continue
		}
		if _, ok := stop[tok]; ok {
			continue
		}
		table.add(tok)
	}
	table.rank()

	logger.Debug("frequency: %d tokens, %d kept, %d unique", len(tokens), table.Total(), table.Unique())
	return table, nil
}

func (a *Analyzer) stopwordSet(ctx context.Context, enabled bool) (map[string]struct{}, error) {
	if !enabled || a.stopwords == nil {
		return nil, nil
	}
	words, err := a.stopwords.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stopwords: %w", err)
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set, nil
}

// Table is a ranked token count table.
// Entries are ordered by count descending, ties by first occurrence.
type Table struct {
	entries []domain.WordCount
	index   map[string]int
	total   int
}

func newTable() *Table {
	return &Table{index: make(map[string]int)}
}

func (t *Table) add(tok string) {
	t.total++
	if i, ok := t.index[tok]; ok {
		t.entries[i].Count++
		return
	}
	t.index[tok] = len(t.entries)
	t.entries = append(t.entries, domain.WordCount{Token: tok, Count: 1})
}

func (t *Table) rank() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Count > t.entries[j].Count
	})
	for i, e := range t.entries {
		t.index[e.Token] = i
	}
}

// Count returns the count of tok, or 0.
func (t *Table) Count(tok string) int {
	if i, ok := t.index[tok]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Top returns at most n entries. n <= 0 returns every entry.
func (t *Table) Top(n int) []domain.WordCount {
	if n <= 0 || n > len(t.entries) {
		n = len(t.entries)
	}
	out := make([]domain.WordCount, n)
	copy(out, t.entries[:n])
	return out
}

// Total returns the number of counted tokens.
func (t *Table) Total() int {
	return t.total
}

// Unique returns the number of distinct tokens.
func (t *Table) Unique() int {
	return len(t.entries)
}

// Max returns the highest count, or 0 for an empty table.
func (t *Table) Max() int {
	if len(t.entries) == 0 {
		return 0
	}
	return t.entries[0].Count
}
