package coach

import "errors"

// Domain-specific errors for the coach package.
var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrEmptyTitle    = errors.New("task title is empty")
	ErrBadSuggestion = errors.New("backend returned an unusable suggestion")
)
