package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/capstone/pkg/core"
)

// CheckpointDir is the directory Jupyter uses for autosaved copies. Discovery skips it.
const CheckpointDir = ".ipynb_checkpoints"

// Repository implements core.Repository over notebook files in a directory.
type Repository struct {
	Path   string
	cache  *cache
	config Config

	mu            sync.RWMutex
	parsed        int
	watcherActive bool
	lastEvent     *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path         string
	Logger       *slog.Logger
	ErrorHandler func(error)   // Receives watcher errors. Optional.
	Debounce     time.Duration // Quiet period before a watch event is emitted. Defaults to 50ms.
}

// NewRepository creates a new filesystem-backed notebook repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	return &Repository{
		Path:   config.Path,
		cache:  newCache(),
		config: config,
	}
}

// Get reads and parses the notebook at file, relative to the repository root.
// Parsed notebooks are cached until the file's mtime or size changes.
func (r *Repository) Get(ctx context.Context, file string) (core.Notebook, error) {
	if err := ctx.Err(); err != nil {
		return core.Notebook{}, err
	}

	fullPath := r.fullPath(file)
	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			r.cache.Delete(file)
			return core.Notebook{}, fmt.Errorf("%w: %s", core.ErrNotebookNotFound, file)
		}
		return core.Notebook{}, err
	}

	if entry, ok := r.cache.Get(file, info.ModTime(), info.Size()); ok {
		return entry.Notebook, nil
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return core.Notebook{}, err
	}
	defer f.Close()

	nb, err := ParseNotebook(f)
	if err != nil {
		return core.Notebook{}, fmt.Errorf("failed to parse notebook %s: %w", file, err)
	}

	r.cache.Set(file, &cacheEntry{
		Notebook:     nb,
		LastModified: info.ModTime(),
		Size:         info.Size(),
	})
	r.mu.Lock()
	r.parsed++
	r.mu.Unlock()

	return nb, nil
}

// Discover returns entries for every notebook matching the doublestar pattern,
// sorted by path. Jupyter checkpoint copies are skipped.
// The key of a discovered entry is its relative path without extension.
func (r *Repository) Discover(ctx context.Context, pattern string) ([]core.Entry, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(r.Path), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	entries := make([]core.Entry, 0, len(matches))
	for _, rel := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isCheckpoint(rel) {
			continue
		}
		entries = append(entries, core.Entry{
			Key:  strings.TrimSuffix(rel, filepath.Ext(rel)),
			File: rel,
		})
	}

	r.config.Logger.Debug("notebooks discovered", "pattern", pattern, "count", len(entries))
	return entries, nil
}

func (r *Repository) fullPath(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(r.Path, filepath.FromSlash(file))
}

// relPath maps an absolute path under the root back to a slash separated relative path.
func (r *Repository) relPath(path string) (string, error) {
	root, err := filepath.Abs(r.Path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s is outside repository %s", path, r.Path)
	}
	return filepath.ToSlash(rel), nil
}

func isCheckpoint(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if part == CheckpointDir {
			return true
		}
	}
	return false
}
