// Package domain defines the core business entities for textdesk.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TextBuffer: The loaded text, its original snapshot and its working version
//   - MatchSet: The ordered result of one search against one text snapshot
//   - WordCount: A ranked token produced by frequency analysis
//   - SummaryRequest: Parameters for extractive summarisation
//   - NormaliseOptions: Toggles for the line-oriented normaliser
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
