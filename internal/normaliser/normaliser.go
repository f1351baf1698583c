package normaliser

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// Order is the fixed execution order of steps.
// Empty-line removal and merging are exclusive; removal wins.
var Order = []string{
	StepNewlines,
	StepTrimLines,
	StepCollapseWhitespace,
	StepRemoveEmptyLines,
	StepMergeEmptyLines,
	StepCase,
}

// Normalise runs the steps enabled in opts over text.
func Normalise(text string, opts domain.NormaliseOptions) (string, error) {
	p, err := Build(opts)
	if err != nil {
		return "", err
	}
	return p.Run(text), nil
}

// Build creates a pipeline for opts using the default registry.
func Build(opts domain.NormaliseOptions) (*Pipeline, error) {
	return BuildWith(DefaultRegistry(), opts)
}

// BuildWith creates a pipeline for opts, constructing each step from r.
// Steps are always added in Order regardless of how opts were produced.
func BuildWith(r *Registry, opts domain.NormaliseOptions) (*Pipeline, error) {
	if !opts.Case.IsValid() {
		return nil, unsupportedCase(opts.Case)
	}

	enabled := map[string]bool{
		StepNewlines:           opts.NormalizeNewlines,
		StepTrimLines:          opts.TrimLines,
		StepCollapseWhitespace: opts.CollapseWhitespace,
		StepRemoveEmptyLines:   opts.RemoveEmptyLines,
		StepMergeEmptyLines:    opts.MergeEmptyLines && !opts.RemoveEmptyLines,
		StepCase:               !opts.Case.IsNone(),
	}

	p := NewPipeline()
	for _, name := range Order {
		if !enabled[name] {
			continue
		}
		var cfg map[string]any
		if name == StepCase {
			cfg = map[string]any{"transform": string(opts.Case)}
		}
		step, err := r.Build(name, cfg)
		if err != nil {
			return nil, err
		}
		p.Add(step)
	}
	return p, nil
}

// OptionsFromSteps converts configured step names into options.
// The case step is written "case:<transform>", e.g. "case:title".
func OptionsFromSteps(names []string) (domain.NormaliseOptions, error) {
	var opts domain.NormaliseOptions
	for _, raw := range names {
		name, arg, _ := strings.Cut(strings.TrimSpace(raw), ":")
		switch name {
		case StepNewlines:
			opts.NormalizeNewlines = true
		case StepTrimLines:
			opts.TrimLines = true
		case StepCollapseWhitespace:
			opts.CollapseWhitespace = true
		case StepRemoveEmptyLines:
			opts.RemoveEmptyLines = true
		case StepMergeEmptyLines:
			opts.MergeEmptyLines = true
		case StepCase:
			c := domain.CaseTransform(arg)
			if !c.IsValid() {
				return domain.NormaliseOptions{}, unsupportedCase(c)
			}
			opts.Case = c
		default:
			return domain.NormaliseOptions{}, fmt.Errorf("%w: normalise step %q", domain.ErrUnsupportedType, name)
		}
	}
	return opts, nil
}

func unsupportedCase(c domain.CaseTransform) error {
	return fmt.Errorf("%w: case transform %q", domain.ErrUnsupportedType, c)
}
