package core

import "context"

// Repository defines the contract for reading notebooks.
// Files are addressed by their path relative to the repository root.
type Repository interface {
	// Get parses the notebook stored at file.
	// It returns an error wrapping ErrNotebookNotFound when the file does not exist
	// and ErrInvalidNotebook when it cannot be parsed.
	Get(ctx context.Context, file string) (Notebook, error)
}

// Discoverable is implemented by repositories that can enumerate notebooks by pattern.
type Discoverable interface {
	Discover(ctx context.Context, pattern string) ([]Entry, error)
}

// Watchable is implemented by repositories that can report changes to files.
type Watchable interface {
	Watch(ctx context.Context, files []string) (<-chan Event, error)
}
