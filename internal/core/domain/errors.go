package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown method, segmenter, loader or case transform.
	ErrUnsupportedType = errors.New("unsupported type")

	// Text Errors.

	// ErrEmptyPattern indicates a search pattern is blank.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrInvalidPattern indicates a regular expression does not compile
	// or produces zero-length matches.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrIndexOutOfRange indicates a selective replace references a match
	// position that does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyInput indicates an operation requiring non-blank text received
	// blank or whitespace-only text.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoBuffer indicates no text has been loaded yet.
	ErrNoBuffer = errors.New("no text loaded")

	// NLP Backend Errors.

	// ErrNLPUnavailable indicates the NLP backend is not configured.
	// Entity, sentiment, syntax and rewrite features are disabled.
	ErrNLPUnavailable = errors.New("NLP backend unavailable")

	// ErrRateLimited indicates the NLP backend rejected a request for rate reasons.
	ErrRateLimited = errors.New("rate limited")
)

// IndexOutOfRangeError reports the first selected index that does not
// address a match.
type IndexOutOfRangeError struct {
	// Index is the offending match position.
	Index int

	// Count is the number of matches that were available.
	Count int
}

// Error implements error.
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range: %d matches", e.Index, e.Count)
}

// Unwrap allows errors.Is(err, ErrIndexOutOfRange).
func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

// InvalidPatternError describes why a pattern was rejected.
type InvalidPatternError struct {
	// Pattern is the rejected pattern source.
	Pattern string

	// Reason is the compile error or the zero-length match description.
	Reason string
}

// Error implements error.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidPattern).
func (e *InvalidPatternError) Unwrap() error {
	return ErrInvalidPattern
}
