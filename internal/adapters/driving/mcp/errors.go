// Package mcp provides an MCP (Model Context Protocol) server adapter for textdesk.
// It lets AI assistants load text into the buffer, search and replace it,
// and run the analyses.
package mcp

import "errors"

var (
	// ErrMissingEditorService is returned when the editor service is not provided.
	ErrMissingEditorService = errors.New("mcp: editor service is required")

	// ErrMissingAnalysisService is returned when the analysis service is not provided.
	ErrMissingAnalysisService = errors.New("mcp: analysis service is required")

	// ErrServiceUnavailable is returned by tools whose optional service is not provided.
	ErrServiceUnavailable = errors.New("mcp: service not available")
)
