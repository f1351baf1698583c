package mcp

import (
	"github.com/custodia-labs/textdesk/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Editor owns the buffer, search and replace.
	Editor driving.EditorService

	// Analysis provides frequency, summary and statistics.
	Analysis driving.AnalysisService

	// Stopwords manages the stopword list. Optional.
	Stopwords driving.StopwordService

	// Normalise runs the normaliser. Optional.
	Normalise driving.NormaliseService
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
