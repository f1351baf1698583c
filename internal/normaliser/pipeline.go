// Package normaliser provides line-oriented text clean-up steps and the
// pipeline that runs them.
package normaliser

import "strings"

// Step transforms text. Steps are pure.
type Step interface {
	// Name returns the step name used in configuration.
	Name() string

	// Apply returns the transformed text.
	Apply(text string) string
}

// Pipeline chains steps and runs them in order.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a pipeline with the given steps.
// Steps are executed in the order provided.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run passes text through every step.
func (p *Pipeline) Run(text string) string {
	for _, s := range p.steps {
		text = s.Apply(text)
	}
	return text
}

// Add appends a step to the pipeline.
func (p *Pipeline) Add(s Step) {
	p.steps = append(p.steps, s)
}

// Len returns the number of steps in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Names returns the step names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

// lineStep applies fn to the text split into lines.
type lineStep struct {
	name string
	fn   func(lines []string) []string
}

func (s lineStep) Name() string { return s.name }

func (s lineStep) Apply(text string) string {
	return strings.Join(s.fn(strings.Split(text, "\n")), "\n")
}

// textStep applies fn to the whole text.
type textStep struct {
	name string
	fn   func(text string) string
}

func (s textStep) Name() string { return s.name }

func (s textStep) Apply(text string) string { return s.fn(text) }
