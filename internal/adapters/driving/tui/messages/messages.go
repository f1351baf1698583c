// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// FindRequested is a command to search the buffer.
type FindRequested struct {
	Pattern       string
	UseRegex      bool
	CaseSensitive bool
}

// FindCompleted carries the match set back to the model.
type FindCompleted struct {
	Matches *domain.MatchSet
	Err     error
}

// MatchNavigated is sent after moving to the next or previous match.
type MatchNavigated struct {
	Match  *domain.Match
	Cursor domain.MatchCursor
	Err    error
}

// Replaced is sent after a replace-current or replace-all.
type Replaced struct {
	Result *domain.ReplaceResult
	Err    error
}

// BufferLoaded carries the working text.
type BufferLoaded struct {
	Buffer *domain.TextBuffer
	Err    error
}

// AnalysisCompleted carries the frequency table, statistics and summary.
type AnalysisCompleted struct {
	Words   []domain.WordCount
	Stats   *domain.TextStats
	Summary string
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewFind is the find and replace view.
	ViewFind
	// ViewText shows the working text.
	ViewText
	// ViewAnalysis shows frequency, statistics and a summary.
	ViewAnalysis
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewFind:
		return "find"
	case ViewText:
		return "text"
	case ViewAnalysis:
		return "analysis"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
