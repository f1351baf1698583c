package normaliser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// Step names.
const (
	StepNewlines           = "newlines"
	StepTrimLines          = "trim_lines"
	StepCollapseWhitespace = "collapse_whitespace"
	StepRemoveEmptyLines   = "remove_empty_lines"
	StepMergeEmptyLines    = "merge_empty_lines"
	StepCase               = "case"
)

// NormalizeNewlines converts CRLF and lone CR to LF.
func NormalizeNewlines() Step {
	return textStep{name: StepNewlines, fn: func(text string) string {
		return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
	}}
}

// TrimLines trims surrounding whitespace from every line.
func TrimLines() Step {
	return lineStep{name: StepTrimLines, fn: func(lines []string) []string {
		for i, l := range lines {
			lines[i] = strings.TrimSpace(l)
		}
		return lines
	}}
}

// CollapseWhitespace replaces each run of whitespace within a line with a
// single space.
func CollapseWhitespace() Step {
	return lineStep{name: StepCollapseWhitespace, fn: func(lines []string) []string {
		for i, l := range lines {
			lines[i] = collapse(l)
		}
		return lines
	}}
}

func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// RemoveEmptyLines drops every blank line.
func RemoveEmptyLines() Step {
	return lineStep{name: StepRemoveEmptyLines, fn: func(lines []string) []string {
		out := lines[:0]
		for _, l := range lines {
			if strings.TrimSpace(l) != "" {
				out = append(out, l)
			}
		}
		return out
	}}
}

// MergeEmptyLines collapses consecutive blank lines into one.
func MergeEmptyLines() Step {
	return lineStep{name: StepMergeEmptyLines, fn: func(lines []string) []string {
		out := lines[:0]
		lastEmpty := false
		for _, l := range lines {
			empty := strings.TrimSpace(l) == ""
			if empty && lastEmpty {
				continue
			}
			out = append(out, l)
			lastEmpty = empty
		}
		return out
	}}
}

var (
	wordRun        = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentenceLetter = regexp.MustCompile(`[.!?。！？]\s*\p{Ll}`)
)

// ChangeCase applies a whole-text case transform.
// Returns domain.ErrUnsupportedType for an unknown transform.
func ChangeCase(c domain.CaseTransform) (Step, error) {
	var fn func(string) string
	switch c {
	case "", domain.CaseNone:
		fn = func(s string) string { return s }
	case domain.CaseUpper:
		fn = strings.ToUpper
	case domain.CaseLower:
		fn = strings.ToLower
	case domain.CaseTitle:
		fn = titleCase
	case domain.CaseSentence:
		fn = sentenceCase
	default:
		return nil, unsupportedCase(c)
	}
	return textStep{name: StepCase, fn: fn}, nil
}

func titleCase(s string) string {
	return wordRun.ReplaceAllStringFunc(s, func(w string) string {
		r, size := utf8.DecodeRuneInString(w)
		return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	})
}

func sentenceCase(s string) string {
	s = sentenceLetter.ReplaceAllStringFunc(s, func(m string) string {
		r, size := utf8.DecodeLastRuneInString(m)
		return m[:len(m)-size] + string(unicode.ToUpper(r))
	})
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
