package core

import "errors"

// Common errors.
var (
	ErrNotebookNotFound = errors.New("notebook not found")
	ErrInvalidNotebook  = errors.New("invalid notebook")
	ErrUnknownFormat    = errors.New("unknown format")
)
