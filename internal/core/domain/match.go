package domain

// PatternKind distinguishes literal patterns from regular expressions.
type PatternKind int

// Available pattern kinds.
const (
	// PatternLiteral matches the pattern text exactly.
	PatternLiteral PatternKind = iota

	// PatternRegex matches the pattern as a regular expression.
	PatternRegex
)

// String returns the string representation.
func (k PatternKind) String() string {
	if k == PatternRegex {
		return "regex"
	}
	return "literal"
}

// Match is one located occurrence of a pattern.
type Match struct {
	// Index is the byte offset of the match in the searched text.
	Index int `json:"index"`

	// Text is the matched text.
	Text string `json:"text"`

	// ContextBefore is up to 30 characters preceding the match.
	ContextBefore string `json:"context_before"`

	// ContextAfter is up to 30 characters following the match.
	ContextAfter string `json:"context_after"`
}

// End returns the byte offset just past the match.
func (m Match) End() int {
	return m.Index + len(m.Text)
}

// MatchSet is the ordered result of one search against one text snapshot.
// Matches are ordered by ascending Index and are addressed by position.
type MatchSet struct {
	// SourceText is the text that was searched.
	SourceText string `json:"-"`

	// Fingerprint identifies SourceText; compare with Fingerprint(current)
	// to detect a stale set.
	Fingerprint string `json:"fingerprint"`

	// Pattern is the pattern as supplied by the caller.
	Pattern string `json:"pattern"`

	// UseRegex reports whether Pattern was a regular expression.
	UseRegex bool `json:"use_regex"`

	// CaseSensitive reports whether matching was case sensitive.
	CaseSensitive bool `json:"case_sensitive"`

	// Matches holds every occurrence in order.
	Matches []Match `json:"matches"`
}

// Count returns the number of matches.
func (s *MatchSet) Count() int {
	if s == nil {
		return 0
	}
	return len(s.Matches)
}

// IsStale reports whether the set no longer describes text.
func (s *MatchSet) IsStale(text string) bool {
	return s == nil || s.Fingerprint != Fingerprint(text)
}

// MatchCursor tracks the "current match" within a MatchSet.
// Current is -1 when no match is selected.
type MatchCursor struct {
	Current int `json:"current"`
}

// NewMatchCursor returns a cursor with no selection.
func NewMatchCursor() MatchCursor {
	return MatchCursor{Current: -1}
}

// Navigate moves the cursor by direction (+1 or -1), wrapping around count.
// It is a no-op when count is zero.
func (c *MatchCursor) Navigate(direction, count int) {
	if count <= 0 {
		return
	}
	c.Current = ((c.Current+direction)%count + count) % count
}

// HasSelection reports whether a match is selected.
func (c MatchCursor) HasSelection() bool {
	return c.Current >= 0
}

// ReplaceScope selects which matches a replace call touches.
type ReplaceScope string

// Available replace scopes.
const (
	// ReplaceScopeAll replaces every match.
	ReplaceScopeAll ReplaceScope = "all"

	// ReplaceScopeFirst replaces only the first match.
	ReplaceScopeFirst ReplaceScope = "first"
)

// IsValid returns true if the scope is recognised.
func (s ReplaceScope) IsValid() bool {
	return s == ReplaceScopeAll || s == ReplaceScopeFirst
}

// ReplaceResult is the outcome of a replacement.
type ReplaceResult struct {
	// Text is the new text.
	Text string `json:"new_text"`

	// Count is the number of replacements performed.
	Count int `json:"count"`
}
