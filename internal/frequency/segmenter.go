package frequency

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
)

// TokenizerFunc adapts a plain function into a Segmenter.
type TokenizerFunc struct {
	method domain.SegmentationMethod
	fn     func(string) []string
}

// NewTokenizerFunc wraps fn as a segmenter named method.
func NewTokenizerFunc(method domain.SegmentationMethod, fn func(string) []string) *TokenizerFunc {
	return &TokenizerFunc{method: method, fn: fn}
}

// Name returns the segmentation method.
func (t *TokenizerFunc) Name() domain.SegmentationMethod {
	return t.method
}

// Segment splits text with the wrapped function.
func (t *TokenizerFunc) Segment(_ context.Context, text string) ([]string, error) {
	return t.fn(text), nil
}

// Ensure TokenizerFunc implements the interface.
var _ driven.Segmenter = (*TokenizerFunc)(nil)

// Whitespace splits on runs of whitespace.
func Whitespace(text string) []string {
	return strings.Fields(text)
}

// Unicode splits text into runs of word runes and emits each Han
// ideograph as a token of its own.
func Unicode(text string) []string {
	var tokens []string
	start := -1
	for i, r := range text {
		switch {
		case IsHan(r):
			if start >= 0 {
				tokens = append(tokens, text[start:i])
				start = -1
			}
			tokens = append(tokens, string(r))
		case IsWordRune(r) || unicode.Is(unicode.Mn, r):
			if start < 0 {
				start = i
			}
		default:
			if start >= 0 {
				tokens = append(tokens, text[start:i])
				start = -1
			}
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// BackendSegmenter delegates tokenization to the NLP backend.
type BackendSegmenter struct {
	backend driven.NLPBackend
	method  string
}

// NewBackendSegmenter creates a segmenter using the backend's named method.
// An empty method lets the backend choose.
func NewBackendSegmenter(backend driven.NLPBackend, method string) *BackendSegmenter {
	if method == "" {
		method = "auto"
	}
	return &BackendSegmenter{backend: backend, method: method}
}

// Name returns the segmentation method.
func (b *BackendSegmenter) Name() domain.SegmentationMethod {
	return domain.SegmentationBackend
}

// Segment calls the backend.
func (b *BackendSegmenter) Segment(ctx context.Context, text string) ([]string, error) {
	if b.backend == nil {
		return nil, domain.ErrNLPUnavailable
	}
	return b.backend.Segment(ctx, text, b.method)
}

// Ensure BackendSegmenter implements the interface.
var _ driven.Segmenter = (*BackendSegmenter)(nil)

// SegmenterRegistry maps segmentation methods to segmenters.
type SegmenterRegistry struct {
	segmenters map[domain.SegmentationMethod]driven.Segmenter
}

// NewSegmenterRegistry creates an empty registry.
func NewSegmenterRegistry() *SegmenterRegistry {
	return &SegmenterRegistry{
		segmenters: make(map[domain.SegmentationMethod]driven.Segmenter),
	}
}

// Register adds a segmenter under its own name, replacing any previous one.
func (r *SegmenterRegistry) Register(s driven.Segmenter) {
	r.segmenters[s.Name()] = s
}

// Get returns the segmenter for method.
func (r *SegmenterRegistry) Get(method domain.SegmentationMethod) (driven.Segmenter, error) {
	s, ok := r.segmenters[method]
	if !ok {
		return nil, fmt.Errorf("%w: segmentation %q", domain.ErrUnsupportedType, method)
	}
	return s, nil
}

// Names returns the registered methods sorted by name.
func (r *SegmenterRegistry) Names() []domain.SegmentationMethod {
	names := make([]domain.SegmentationMethod, 0, len(r.segmenters))
	for name := range r.segmenters {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// RegisterDefaults registers the local segmenters.
// The backend segmenter is registered separately once a backend exists.
func RegisterDefaults(r *SegmenterRegistry) {
	r.Register(NewTokenizerFunc(domain.SegmentationWhitespace, Whitespace))
	r.Register(NewTokenizerFunc(domain.SegmentationUnicode, Unicode))
}
