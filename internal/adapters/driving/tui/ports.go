// Package tui provides an interactive terminal user interface for textdesk.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/textdesk/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Editor owns the buffer, search and replace.
	Editor driving.EditorService

	// Analysis provides frequency, summary and statistics.
	Analysis driving.AnalysisService

	// Normalise cleans up the buffer. Optional.
	Normalise driving.NormaliseService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(editor driving.EditorService, analysis driving.AnalysisService) *Ports {
	return &Ports{
		Editor:   editor,
		Analysis: analysis,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Editor == nil {
		return ErrMissingEditorService
	}
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	return nil
}
