package normaliser

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// BuilderFunc creates a Step from generic config.
// Config is a map of step-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (Step, error)

// Registry maps step names to their builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new step registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a step builder to the registry.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a step by name with the given config.
func (r *Registry) Build(name string, cfg map[string]any) (Step, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: normalise step %q", domain.ErrUnsupportedType, name)
	}
	return builder(cfg)
}

// Has returns true if a step with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered step names sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
