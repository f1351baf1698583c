package domain

// DefaultTopN is the number of ranked tokens returned when TopN is unset.
const DefaultTopN = 20

// SegmentationMethod names the tokenizer used by frequency analysis.
type SegmentationMethod string

// Built-in segmentation methods.
const (
	// SegmentationWhitespace splits on runs of whitespace.
	SegmentationWhitespace SegmentationMethod = "whitespace"

	// SegmentationUnicode splits into letter/digit runs and emits each
	// Han ideograph as its own token.
	SegmentationUnicode SegmentationMethod = "unicode"

	// SegmentationBackend delegates segmentation to the NLP backend.
	SegmentationBackend SegmentationMethod = "backend"
)

// String returns the string representation.
func (m SegmentationMethod) String() string {
	return string(m)
}

// FrequencyOptions configures a word frequency analysis.
// All toggles are independent and composable.
type FrequencyOptions struct {
	// TopN caps the number of returned tokens (default 20).
	TopN int `json:"top_n"`

	// MinTokenLength drops tokens shorter than this many characters (default 1).
	MinTokenLength int `json:"min_token_length"`

	// IgnoreCase folds the text to lower case before tokenizing.
	IgnoreCase bool `json:"ignore_case"`

	// ExcludePunctuation replaces every character that is not a letter,
	// digit, underscore, whitespace or ideograph with a space.
	ExcludePunctuation bool `json:"exclude_punctuation"`

	// ExcludeStopwords drops tokens present in the stopword store.
	ExcludeStopwords bool `json:"exclude_stopwords"`

	// ExcludeNumbers drops tokens that parse entirely as a number.
	ExcludeNumbers bool `json:"exclude_numbers"`

	// ExcludeSingleChars drops tokens of length one.
	ExcludeSingleChars bool `json:"exclude_single_chars"`

	// Segmentation selects the tokenizer (default whitespace).
	Segmentation SegmentationMethod `json:"segmentation"`
}

// DefaultFrequencyOptions returns the options used when the caller
// supplies none.
func DefaultFrequencyOptions() FrequencyOptions {
	return FrequencyOptions{
		TopN:               DefaultTopN,
		MinTokenLength:     1,
		IgnoreCase:         true,
		ExcludePunctuation: true,
		ExcludeStopwords:   true,
		ExcludeNumbers:     true,
		ExcludeSingleChars: true,
		Segmentation:       SegmentationWhitespace,
	}
}

// WithDefaults fills unset numeric and segmentation fields.
func (o FrequencyOptions) WithDefaults() FrequencyOptions {
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	if o.MinTokenLength <= 0 {
		o.MinTokenLength = 1
	}
	if o.Segmentation == "" {
		o.Segmentation = SegmentationWhitespace
	}
	return o
}

// WordCount is one ranked token.
type WordCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}
