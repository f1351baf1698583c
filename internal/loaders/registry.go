package loaders

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
	"github.com/custodia-labs/textdesk/internal/loaders/html"
	"github.com/custodia-labs/textdesk/internal/loaders/markdown"
	"github.com/custodia-labs/textdesk/internal/loaders/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.LoaderRegistry = (*Registry)(nil)

// Registry selects loaders by MIME type and priority.
type Registry struct {
	loaders []driven.Loader
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns a registry with every built-in loader.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(html.New())
	return r
}

// Register adds a loader.
func (r *Registry) Register(l driven.Loader) {
	r.loaders = append(r.loaders, l)
	sort.SliceStable(r.loaders, func(i, j int) bool {
		return r.loaders[i].Priority() > r.loaders[j].Priority()
	})
}

// Get returns the highest priority loader for mimeType.
// Parameters such as "; charset=utf-8" are ignored. Any text/* type falls
// back to a loader registered for text/plain.
func (r *Registry) Get(mimeType string) (driven.Loader, error) {
	base := baseType(mimeType)
	for _, l := range r.loaders {
		for _, t := range l.SupportedMIMETypes() {
			if t == base {
				return l, nil
			}
		}
	}
	if strings.HasPrefix(base, "text/") && base != "text/plain" {
		return r.Get("text/plain")
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, mimeType)
}

// Load selects a loader and converts content.
func (r *Registry) Load(ctx context.Context, mimeType string, content []byte) (string, error) {
	l, err := r.Get(mimeType)
	if err != nil {
		return "", err
	}
	return l.Load(ctx, content)
}

var extensionTypes = map[string]string{
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".txt":      "text/plain",
	".text":     "text/plain",
	".htm":      "text/html",
	".html":     "text/html",
	".xhtml":    "application/xhtml+xml",
}

// DetectMIME guesses the MIME type of a file from its extension, then
// from its content.
func DetectMIME(path string, content []byte) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return baseType(t)
	}
	return baseType(http.DetectContentType(content))
}

func baseType(mimeType string) string {
	base, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(mimeType))
	}
	return base
}
