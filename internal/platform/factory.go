package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/capstone/pkg/adapters/fs"
	"github.com/aretw0/capstone/pkg/core"
)

// New creates the insight service over the notebooks under repoPath.
//
//	svc, err := platform.New("./coursework", platform.WithDiscover("**/*.ipynb"))
func New(repoPath string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, err := open(repoPath, o)
	if err != nil {
		return nil, err
	}

	entries := o.entries
	if entries == nil {
		entries = DefaultNotebooks()
	}

	svcOpts := []core.ServiceOption{core.WithServiceLogger(o.logger)}
	if o.discover != "" {
		svcOpts = append(svcOpts, core.WithDiscoverPattern(o.discover))
	}
	return core.NewService(repo, entries, svcOpts...), nil
}

// Open returns the notebook repository for repoPath.
func Open(repoPath string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return open(repoPath, o)
}

func open(repoPath string, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}

	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("invalid repository path %q: %w", repoPath, err)
	}

	// A missing directory is not fatal: every notebook is then reported as not found.
	if info, err := os.Stat(abs); err != nil {
		if o.logger != nil {
			o.logger.Warn("notebook repository not found", "path", abs)
		}
	} else if !info.IsDir() {
		return nil, fmt.Errorf("repository path %s is not a directory", abs)
	}

	return fs.NewRepository(fs.Config{
		Path:         abs,
		Logger:       o.logger,
		ErrorHandler: o.errorHandler,
		Debounce:     o.debounce,
	}), nil
}
