package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/capstone/pkg/core"
)

// options holds the internal configuration for the insight service.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	entries      []core.Entry
	discover     string
	errorHandler func(error)
	debounce     time.Duration
}

// Option defines a functional option for configuring the insight service.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the service and its repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository injects a notebook repository instead of the filesystem one.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithNotebooks sets the ordered notebook entries to analyze.
// Without it the default capstone notebook set is used.
func WithNotebooks(entries []core.Entry) Option {
	return func(o *options) {
		o.entries = entries
	}
}

// WithDiscover adds notebooks matching a glob, relative to the repository root.
func WithDiscover(pattern string) Option {
	return func(o *options) {
		o.discover = pattern
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while watching notebooks.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// WithDebounce sets the quiet period before a notebook change is reported.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}
