package domain

// Entity is a named entity found by the NLP backend.
type Entity struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source,omitempty"`
}

// EntityOptions configures entity extraction.
type EntityOptions struct {
	// Method selects the extractor on the backend (e.g. "auto", "spacy").
	Method string `json:"method"`

	// Deduplicate merges repeated entities.
	Deduplicate bool `json:"deduplicate"`
}

// SentimentResult is the backend's sentiment verdict.
type SentimentResult struct {
	Label      string             `json:"label"`
	Score      float64            `json:"score"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores,omitempty"`
	Methods    []string           `json:"methods,omitempty"`
}

// SyntaxToken is one analysed token of a sentence.
type SyntaxToken struct {
	Text   string `json:"text"`
	Lemma  string `json:"lemma,omitempty"`
	POS    string `json:"pos"`
	DepRel string `json:"dep,omitempty"`
	Head   int    `json:"head,omitempty"`
}

// SyntaxSentence is one analysed sentence.
type SyntaxSentence struct {
	Text   string        `json:"text"`
	Tokens []SyntaxToken `json:"tokens"`
}

// SyntaxResult holds the backend's syntax analysis.
type SyntaxResult struct {
	Sentences []SyntaxSentence `json:"sentences"`
}

// TokenCount returns the total number of tokens across all sentences.
func (s *SyntaxResult) TokenCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, sent := range s.Sentences {
		n += len(sent.Tokens)
	}
	return n
}

// DefaultMaxSegmentLength bounds each segment of a segmented rewrite.
const DefaultMaxSegmentLength = 1000

// RewriteOptions configures a rewrite.
type RewriteOptions struct {
	// Style is the target register (e.g. "formal", "casual", "concise").
	Style string `json:"style"`

	// Intensity is "light", "medium" or "heavy".
	Intensity string `json:"intensity"`

	// SegmentMode rewrites the text segment by segment.
	SegmentMode bool `json:"segment_mode"`

	// MaxSegmentLength bounds each segment in characters.
	MaxSegmentLength int `json:"max_segment_length"`
}

// RewriteResult is the outcome of a rewrite.
type RewriteResult struct {
	Text     string `json:"text"`
	Segments int    `json:"segments"`
	Model    string `json:"model,omitempty"`
}

// Capabilities lists which NLP features the backend offers.
type Capabilities struct {
	Entities     bool     `json:"entities"`
	Sentiment    bool     `json:"sentiment"`
	Syntax       bool     `json:"syntax"`
	Segmentation bool     `json:"segmentation"`
	Rewrite      bool     `json:"rewrite"`
	Models       []string `json:"models,omitempty"`
}
