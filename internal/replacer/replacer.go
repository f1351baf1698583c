// Package replacer substitutes matches found by the matcher.
// Replacement strings are inserted literally; "$1" has no special meaning.
package replacer

import (
	"sort"
	"strings"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/matcher"
)

// All replaces every match of pattern in text.
// A pattern with no matches returns the text unchanged with a count of 0.
func All(text, pattern, replacement string, useRegex, caseSensitive bool) (domain.ReplaceResult, error) {
	set, err := matcher.FindString(text, pattern, useRegex, caseSensitive)
	if err != nil {
		return domain.ReplaceResult{}, err
	}
	return splice(text, set.Matches, replacement), nil
}

// Subset replaces only the matches at the given positions.
//
// Matches are re-derived from text rather than trusted from an earlier
// search, so positions always refer to the text being edited. Every index
// is validated before anything changes; duplicates count once.
func Subset(text, pattern, replacement string, indices []int, useRegex, caseSensitive bool) (domain.ReplaceResult, error) {
	set, err := matcher.FindString(text, pattern, useRegex, caseSensitive)
	if err != nil {
		return domain.ReplaceResult{}, err
	}
	if len(indices) == 0 {
		return domain.ReplaceResult{Text: text}, nil
	}

	n := set.Count()
	seen := make(map[int]struct{}, len(indices))
	selected := make([]domain.Match, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return domain.ReplaceResult{}, &domain.IndexOutOfRangeError{Index: idx, Count: n}
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		selected = append(selected, set.Matches[idx])
	}

	return splice(text, selected, replacement), nil
}

// First replaces the first match only.
func First(text, pattern, replacement string, useRegex, caseSensitive bool) (domain.ReplaceResult, error) {
	set, err := matcher.FindString(text, pattern, useRegex, caseSensitive)
	if err != nil {
		return domain.ReplaceResult{}, err
	}
	if set.Count() == 0 {
		return domain.ReplaceResult{Text: text}, nil
	}
	return splice(text, set.Matches[:1], replacement), nil
}

// Scoped dispatches to All or First.
func Scoped(text, pattern, replacement string, useRegex, caseSensitive bool, scope domain.ReplaceScope) (domain.ReplaceResult, error) {
	switch scope {
	case domain.ReplaceScopeAll, "":
		return All(text, pattern, replacement, useRegex, caseSensitive)
	case domain.ReplaceScopeFirst:
		return First(text, pattern, replacement, useRegex, caseSensitive)
	default:
		return domain.ReplaceResult{}, domain.ErrInvalidInput
	}
}

// splice applies replacements from the highest offset down so earlier
// offsets stay valid. matches must not overlap.
func splice(text string, matches []domain.Match, replacement string) domain.ReplaceResult {
	if len(matches) == 0 {
		return domain.ReplaceResult{Text: text}
	}

	ordered := make([]domain.Match, len(matches))
	copy(ordered, matches)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Index > ordered[j].Index
	})

	out := text
	for _, m := range ordered {
		var b strings.Builder
		b.Grow(len(out) - len(m.Text) + len(replacement))
		b.WriteString(out[:m.Index])
		b.WriteString(replacement)
		b.WriteString(out[m.End():])
		out = b.String()
	}

	return domain.ReplaceResult{Text: out, Count: len(ordered)}
}
