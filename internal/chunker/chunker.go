// Package chunker splits text into bounded segments for rewriting.
// Paragraphs are kept whole where possible, then sentences; only a single
// sentence longer than the limit is cut mid-text.
package chunker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxLength is the default number of characters per segment.
const DefaultMaxLength = 1000

const paragraphSep = "\n\n"

// Segment is one piece of the split text.
type Segment struct {
	// Content is the segment text.
	Content string

	// Position is the zero-based order of the segment.
	Position int

	// Separator is written after Content when segments are joined.
	Separator string
}

// Chunker splits text into segments of at most maxLength characters.
type Chunker struct {
	maxLength int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithMaxLength sets the segment length limit in characters.
func WithMaxLength(n int) Option {
	return func(c *Chunker) {
		if n > 0 {
			c.maxLength = n
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{maxLength: DefaultMaxLength}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxLength returns the configured limit.
func (c *Chunker) MaxLength() int {
	return c.maxLength
}

// Split divides text into segments.
// Text within the limit is returned as a single segment unchanged.
// Blank paragraphs are dropped and paragraphs are re-joined with a blank line.
func (c *Chunker) Split(text string) []Segment {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if runeLen(text) <= c.maxLength {
		return []Segment{{Content: text}}
	}

	var segs []Segment
	emit := func(content, sep string) {
		segs = append(segs, Segment{Content: content, Position: len(segs), Separator: sep})
	}

	current := ""
	for _, para := range strings.Split(text, paragraphSep) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if current == "" && runeLen(para) <= c.maxLength {
			current = para
			continue
		}
		if current != "" && runeLen(current)+len(paragraphSep)+runeLen(para) <= c.maxLength {
			current += paragraphSep + para
			continue
		}

		if current != "" {
			emit(current, paragraphSep)
			current = ""
		}
		if runeLen(para) > c.maxLength {
			parts := c.splitSentences(para)
			for i, p := range parts {
				sep := ""
				if i == len(parts)-1 {
					sep = paragraphSep
				}
				emit(p, sep)
			}
			continue
		}
		current = para
	}
	if current != "" {
		emit(current, "")
	}

	if n := len(segs); n > 0 {
		segs[n-1].Separator = ""
	}
	return segs
}

// Join reassembles segments using their separators.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Content)
		b.WriteString(s.Separator)
	}
	return b.String()
}

// splitSentences packs whole sentences into segments, hard-cutting any
// sentence that alone exceeds the limit.
func (c *Chunker) splitSentences(para string) []string {
	var out []string
	current := ""
	for _, sent := range Sentences(para) {
		if strings.TrimSpace(sent) == "" {
			continue
		}
		if runeLen(sent) > c.maxLength {
			if current != "" {
				out = append(out, current)
				current = ""
			}
			out = append(out, cut(sent, c.maxLength)...)
			continue
		}
		if runeLen(current)+runeLen(sent) <= c.maxLength {
			current += sent
			continue
		}
		if current != "" {
			out = append(out, current)
		}
		current = sent
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}

// Sentences splits text after each run of sentence terminators and the
// whitespace that follows it. Concatenating the result yields text.
func Sentences(text string) []string {
	var out []string
	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isTerminator(r) {
			i += size
			continue
		}
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !isTerminator(r) {
				break
			}
			i += size
		}
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !unicode.IsSpace(r) {
				break
			}
			i += size
		}
		out = append(out, text[start:i])
		start = i
	}
	if start < len(text) {
		out = append(out, text[start:])
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

func cut(s string, n int) []string {
	runes := []rune(s)
	out := make([]string, 0, len(runes)/n+1)
	for start := 0; start < len(runes); start += n {
		end := start + n
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
