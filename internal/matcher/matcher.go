// Package matcher locates every occurrence of a literal or regular
// expression pattern in a text.
package matcher

import (
	"regexp"
	"regexp/syntax"
	"unicode/utf8"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// ContextRunes is the number of characters captured on either side of a match.
const ContextRunes = 30

// Pattern is a compiled search pattern.
// Literal patterns are escaped before compilation so both kinds share one
// matching path.
type Pattern struct {
	// Kind records whether Source was literal or a regular expression.
	Kind domain.PatternKind

	// Source is the pattern as supplied.
	Source string

	// CaseSensitive reports whether matching is case sensitive.
	CaseSensitive bool

	re *regexp.Regexp
}

// Compile resolves pattern into a Pattern.
// Case-insensitive patterns use Unicode simple case folding. A regular
// expression that can match the empty string is rejected with
// domain.ErrInvalidPattern.
func Compile(pattern string, useRegex, caseSensitive bool) (*Pattern, error) {
	if pattern == "" {
		return nil, domain.ErrEmptyPattern
	}

	kind := domain.PatternRegex
	expr := pattern
	if !useRegex {
		kind = domain.PatternLiteral
		expr = regexp.QuoteMeta(pattern)
	}
	if !caseSensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &domain.InvalidPatternError{Pattern: pattern, Reason: err.Error()}
	}
	if useRegex {
		parsed, err := syntax.Parse(expr, syntax.Perl)
		if err != nil {
			return nil, &domain.InvalidPatternError{Pattern: pattern, Reason: err.Error()}
		}
		if matchesEmpty(parsed.Simplify()) {
			return nil, &domain.InvalidPatternError{
				Pattern: pattern,
				Reason:  "pattern matches the empty string",
			}
		}
	}

	return &Pattern{
		Kind:          kind,
		Source:        pattern,
		CaseSensitive: caseSensitive,
		re:            re,
	}, nil
}

// UseRegex reports whether the pattern is a regular expression.
func (p *Pattern) UseRegex() bool {
	return p.Kind == domain.PatternRegex
}

// Find returns every non-overlapping match of p in text, left to right.
// A zero-length match is rejected with domain.ErrInvalidPattern.
func Find(text string, p *Pattern) (*domain.MatchSet, error) {
	if p == nil || p.re == nil {
		return nil, domain.ErrEmptyPattern
	}

	locs := p.re.FindAllStringIndex(text, -1)
	matches := make([]domain.Match, 0, len(locs))
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if start == end {
			return nil, &domain.InvalidPatternError{
				Pattern: p.Source,
				Reason:  "pattern matches the empty string",
			}
		}
		matches = append(matches, domain.Match{
			Index:         start,
			Text:          text[start:end],
			ContextBefore: lastRunes(text[:start], ContextRunes),
			ContextAfter:  firstRunes(text[end:], ContextRunes),
		})
	}

	return &domain.MatchSet{
		SourceText:    text,
		Fingerprint:   domain.Fingerprint(text),
		Pattern:       p.Source,
		UseRegex:      p.UseRegex(),
		CaseSensitive: p.CaseSensitive,
		Matches:       matches,
	}, nil
}

// FindString compiles pattern and searches text.
func FindString(text, pattern string, useRegex, caseSensitive bool) (*domain.MatchSet, error) {
	p, err := Compile(pattern, useRegex, caseSensitive)
	if err != nil {
		return nil, err
	}
	return Find(text, p)
}

func firstRunes(s string, n int) string {
	i := 0
	for count := 0; count < n && i < len(s); count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

func lastRunes(s string, n int) string {
	i := len(s)
	for count := 0; count < n && i > 0; count++ {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return s[i:]
}

// matchesEmpty reports whether re can match zero characters at some
// position. Empty-width assertions such as ^ and \b count as satisfiable.
func matchesEmpty(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpEmptyMatch, syntax.OpStar, syntax.OpQuest,
		syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return true
	case syntax.OpLiteral:
		return len(re.Rune) == 0
	case syntax.OpCapture, syntax.OpPlus:
		return matchesEmpty(re.Sub[0])
	case syntax.OpRepeat:
		return re.Min == 0 || matchesEmpty(re.Sub[0])
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if !matchesEmpty(sub) {
				return false
			}
		}
		return true
	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if matchesEmpty(sub) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
