package domain

// CaseTransform is the whole-text case conversion applied last by the normaliser.
type CaseTransform string

// Available case transforms.
const (
	// CaseNone leaves text unchanged.
	CaseNone CaseTransform = "none"

	// CaseUpper converts to upper case.
	CaseUpper CaseTransform = "upper"

	// CaseLower converts to lower case.
	CaseLower CaseTransform = "lower"

	// CaseTitle capitalises the first letter of each word and lowercases the rest.
	CaseTitle CaseTransform = "title"

	// CaseSentence capitalises the first character of the text and the first
	// character after each sentence terminator.
	CaseSentence CaseTransform = "sentence"
)

// IsValid returns true if the transform is recognised. Empty counts as none.
func (c CaseTransform) IsValid() bool {
	switch c {
	case "", CaseNone, CaseUpper, CaseLower, CaseTitle, CaseSentence:
		return true
	default:
		return false
	}
}

// IsNone reports whether the transform leaves text unchanged.
func (c CaseTransform) IsNone() bool {
	return c == "" || c == CaseNone
}

// String returns the string representation.
func (c CaseTransform) String() string {
	return string(c)
}

// AllCaseTransforms returns all available case transforms.
func AllCaseTransforms() []CaseTransform {
	return []CaseTransform{CaseNone, CaseUpper, CaseLower, CaseTitle, CaseSentence}
}

// NormaliseOptions toggles the steps of the normaliser.
// Steps run in a fixed order regardless of how the options are set.
type NormaliseOptions struct {
	// NormalizeNewlines converts CRLF and CR to LF.
	NormalizeNewlines bool `json:"normalize_newlines"`

	// TrimLines trims leading and trailing whitespace from every line.
	TrimLines bool `json:"trim_lines"`

	// CollapseWhitespace replaces runs of whitespace within a line with one space.
	CollapseWhitespace bool `json:"collapse_whitespace"`

	// RemoveEmptyLines drops blank lines. Takes precedence over MergeEmptyLines.
	RemoveEmptyLines bool `json:"remove_empty_lines"`

	// MergeEmptyLines collapses consecutive blank lines into one.
	MergeEmptyLines bool `json:"merge_empty_lines"`

	// Case is the final case transform.
	Case CaseTransform `json:"case"`
}
