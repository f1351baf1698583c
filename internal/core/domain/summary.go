package domain

// SummaryMethod selects an extractive summarisation strategy.
type SummaryMethod string

// Available summary methods.
const (
	// SummaryPosition picks the first, middle and last sentences.
	SummaryPosition SummaryMethod = "position"

	// SummaryFrequency picks the sentences with the highest token frequency score.
	SummaryFrequency SummaryMethod = "frequency"

	// SummaryHybrid weights the frequency score by sentence position.
	SummaryHybrid SummaryMethod = "hybrid"
)

// IsValid returns true if the method is recognised.
func (m SummaryMethod) IsValid() bool {
	switch m {
	case SummaryPosition, SummaryFrequency, SummaryHybrid:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m SummaryMethod) String() string {
	return string(m)
}

// Description returns a human-readable description of the method.
func (m SummaryMethod) Description() string {
	switch m {
	case SummaryPosition:
		return "Position (first, middle, last)"
	case SummaryFrequency:
		return "Frequency (word frequency score)"
	case SummaryHybrid:
		return "Hybrid (frequency weighted by position)"
	default:
		return unknownDescription
	}
}

// AllSummaryMethods returns all available summary methods.
func AllSummaryMethods() []SummaryMethod {
	return []SummaryMethod{SummaryPosition, SummaryFrequency, SummaryHybrid}
}

// DefaultSentenceCount is the summary length used when none is given.
const DefaultSentenceCount = 3

// SummaryRequest configures an extractive summary.
type SummaryRequest struct {
	// SentenceCount is the number of sentences to select (>= 1).
	SentenceCount int `json:"sentence_count"`

	// Method is the selection strategy. Unrecognised values use hybrid.
	Method SummaryMethod `json:"method"`

	// Title is optional and kept for backends that use it.
	Title string `json:"title,omitempty"`
}
