package find

import "errors"

// Error definitions for the find view.
var (
	// ErrNoEditorService indicates that no editor service was provided.
	ErrNoEditorService = errors.New("editor service is required")

	// ErrNoSelection indicates replace-current was requested before a match was selected.
	ErrNoSelection = errors.New("no match selected, press n or p first")
)
