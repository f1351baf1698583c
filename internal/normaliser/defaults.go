package normaliser

import "github.com/custodia-labs/textdesk/internal/core/domain"

// RegisterDefaults registers all built-in steps with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(StepNewlines, func(map[string]any) (Step, error) { return NormalizeNewlines(), nil })
	r.Register(StepTrimLines, func(map[string]any) (Step, error) { return TrimLines(), nil })
	r.Register(StepCollapseWhitespace, func(map[string]any) (Step, error) { return CollapseWhitespace(), nil })
	r.Register(StepRemoveEmptyLines, func(map[string]any) (Step, error) { return RemoveEmptyLines(), nil })
	r.Register(StepMergeEmptyLines, func(map[string]any) (Step, error) { return MergeEmptyLines(), nil })
	r.Register(StepCase, buildCase)
}

// DefaultRegistry returns a registry with the built-in steps.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// buildCase creates a case step from generic config.
// Supported config keys:
//   - transform (string): none, upper, lower, title or sentence
func buildCase(cfg map[string]any) (Step, error) {
	transform, _ := cfg["transform"].(string)
	return ChangeCase(domain.CaseTransform(transform))
}
