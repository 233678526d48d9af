package capstone

import (
	"log/slog"
	"time"

	"github.com/aretw0/capstone/internal/platform"
	"github.com/aretw0/capstone/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Configuration ---

// Option defines a functional option for configuring the insight service.
type Option = platform.Option

// Config is the contents of a capstone.yaml file.
type Config = platform.Config

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository injects a custom notebook repository.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithNotebooks sets the ordered notebook entries to analyze.
func WithNotebooks(entries []core.Entry) Option {
	return platform.WithNotebooks(entries)
}

// WithDiscover adds notebooks matching a glob under the repository.
func WithDiscover(pattern string) Option {
	return platform.WithDiscover(pattern)
}

// WithWatcherErrorHandler registers a callback for watch errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithDebounce sets the quiet period before a notebook change is reported.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// --- Factory ---

// New creates the insight service over the notebooks under repoPath.
func New(repoPath string, opts ...Option) (*core.Service, error) {
	return platform.New(repoPath, opts...)
}

// Open returns the notebook repository for repoPath.
func Open(repoPath string, opts ...Option) (core.Repository, error) {
	return platform.Open(repoPath, opts...)
}

// --- Configuration files ---

// DefaultNotebooks returns the capstone notebooks in report order.
func DefaultNotebooks() []core.Entry {
	return platform.DefaultNotebooks()
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return platform.DefaultConfig()
}

// LoadConfig reads a capstone.yaml file over the defaults.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// FindConfig returns the capstone.yaml of the project containing startDir, if any.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}

// FindRoot looks upwards from startDir for a project root indicator.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
