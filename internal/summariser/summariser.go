// Package summariser builds extractive summaries by selecting sentences.
package summariser

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/frequency"
	"github.com/custodia-labs/textdesk/internal/logger"
)

// MinSentenceRunes is the length a fragment must exceed to count as a sentence.
const MinSentenceRunes = 5

// Joiner is appended after every selected sentence.
const Joiner = "。"

// edgeWeight multiplies the hybrid score of the first and last sentence.
const edgeWeight = 1.5

// SplitSentences splits text on runs of sentence terminators, trims each
// piece and drops pieces of five characters or fewer.
func SplitSentences(text string) []string {
	parts := strings.FieldsFunc(text, isTerminator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) > MinSentenceRunes {
			out = append(out, p)
		}
	}
	return out
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return true
	default:
		return false
	}
}

// Summarise selects req.SentenceCount sentences from text.
// When text has no more sentences than requested it is returned unchanged.
// Unrecognised methods fall back to hybrid.
func Summarise(text string, req domain.SummaryRequest) (string, error) {
	if req.SentenceCount < 1 {
		return "", domain.ErrInvalidInput
	}

	sentences := SplitSentences(text)
	if len(sentences) <= req.SentenceCount {
		return text, nil
	}

	method := req.Method
	if !method.IsValid() {
		if method != "" {
			logger.Warn("unknown summary method %q, using %s", method, domain.SummaryHybrid)
		}
		method = domain.SummaryHybrid
	}
	logger.Debug("summarising %d sentences to %d with %s", len(sentences), req.SentenceCount, method)

	var selected []string
	switch method {
	case domain.SummaryPosition:
		selected = byPosition(sentences, req.SentenceCount)
	case domain.SummaryFrequency:
		selected = byScore(sentences, scores(text, sentences, false), req.SentenceCount)
	default:
		selected = byScore(sentences, scores(text, sentences, true), req.SentenceCount)
	}

	var b strings.Builder
	for _, s := range selected {
		b.WriteString(s)
		b.WriteString(Joiner)
	}
	return b.String(), nil
}

// byPosition picks the first, middle and last sentences in that order.
func byPosition(sentences []string, count int) []string {
	n := len(sentences)
	picks := []string{sentences[0], sentences[n/2], sentences[n-1]}
	if count < len(picks) {
		picks = picks[:count]
	}
	return picks
}

// scores sums, for each sentence, the whole-text frequency of its tokens.
// With weighted set the first and last sentences score half as much again.
func scores(text string, sentences []string, weighted bool) []float64 {
	table := countTokens(text)
	out := make([]float64, len(sentences))
	for i, s := range sentences {
		sum := 0
		for _, tok := range tokens(s) {
			sum += table[tok]
		}
		out[i] = float64(sum)
		if weighted && (i == 0 || i == len(sentences)-1) {
			out[i] *= edgeWeight
		}
	}
	return out
}

func byScore(sentences []string, score []float64, count int) []string {
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return score[order[a]] > score[order[b]]
	})

	out := make([]string, 0, count)
	for _, idx := range order[:count] {
		out = append(out, sentences[idx])
	}
	return out
}

// tokens folds case, strips punctuation and splits on whitespace.
func tokens(s string) []string {
	return strings.Fields(frequency.StripPunctuation(strings.ToLower(s)))
}

func countTokens(text string) map[string]int {
	table := make(map[string]int)
	for _, tok := range tokens(text) {
		table[tok]++
	}
	return table
}
