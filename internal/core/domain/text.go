package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// TextBuffer is the text under analysis.
// Original is the snapshot captured at load time and never changes;
// Current is the working version every operation reads and edits.
type TextBuffer struct {
	// ID is the unique identifier for the loaded buffer.
	ID string

	// Source describes where the text came from (file path, "stdin", "mcp").
	Source string

	// Original is the text as loaded.
	Original string

	// Current is the working text.
	Current string

	// LoadedAt is when the text was loaded.
	LoadedAt time.Time

	// UpdatedAt is when Current last changed.
	UpdatedAt time.Time
}

// Fingerprint returns the fingerprint of the working text.
func (b *TextBuffer) Fingerprint() string {
	return Fingerprint(b.Current)
}

// IsModified reports whether the working text differs from the original.
func (b *TextBuffer) IsModified() bool {
	return b.Current != b.Original
}

// IsBlank reports whether the working text is empty or whitespace-only.
func (b *TextBuffer) IsBlank() bool {
	return strings.TrimSpace(b.Current) == ""
}

// Fingerprint returns a stable digest of text.
// Two texts have the same fingerprint only if they are byte-identical,
// so a MatchSet is stale whenever its fingerprint differs from the buffer's.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Revision records one change to a buffer's working text.
type Revision struct {
	// ID is the unique identifier for the revision.
	ID string

	// BufferID links the revision to its buffer.
	BufferID string

	// Reason is the operation that produced the text (load, replace, normalise...).
	Reason string

	// Text is the working text after the change.
	Text string

	// CreatedAt is when the change happened.
	CreatedAt time.Time
}

// TextStats summarises the working text.
type TextStats struct {
	// Characters is the number of characters.
	Characters int `json:"characters"`

	// CharactersNoSpaces excludes spaces, tabs and newlines.
	CharactersNoSpaces int `json:"characters_no_spaces"`

	// Lines is the number of newline-separated lines.
	Lines int `json:"lines"`

	// Paragraphs is the number of non-blank blocks separated by blank lines.
	Paragraphs int `json:"paragraphs"`

	// Sentences is the number of sentences the summariser would see.
	Sentences int `json:"sentences"`

	// Words is the number of tokens left after default frequency filters.
	Words int `json:"words"`

	// UniqueWords is the number of distinct tokens.
	UniqueWords int `json:"unique_words"`

	// AverageFrequency is Words / UniqueWords, rounded to two decimals.
	AverageFrequency float64 `json:"average_frequency"`

	// MaxFrequency is the highest token count.
	MaxFrequency int `json:"max_frequency"`

	// AverageSentenceLength is Characters / Sentences, rounded to two decimals.
	AverageSentenceLength float64 `json:"average_sentence_length"`
}
