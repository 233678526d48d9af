package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Service runs insight extraction over a configured set of notebooks.
type Service struct {
	repo     Repository
	entries  []Entry
	discover string
	logger   *slog.Logger

	mu       sync.RWMutex
	lastRun  *time.Time
	analyzed int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger used by the service.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDiscoverPattern appends notebooks matching pattern to the configured entries.
func WithDiscoverPattern(pattern string) ServiceOption {
	return func(s *Service) {
		s.discover = pattern
	}
}

// NewService creates a new Service over the given entries, kept in order.
func NewService(repo Repository, entries []Entry, opts ...ServiceOption) *Service {
	s := &Service{
		repo:    repo,
		entries: append([]Entry(nil), entries...),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze parses a single notebook and extracts its insights.
func (s *Service) Analyze(ctx context.Context, file string) (Notebook, []Insight, error) {
	if file == "" {
		return Notebook{}, nil, errors.New("notebook file cannot be empty")
	}
	nb, err := s.repo.Get(ctx, file)
	if err != nil {
		return Notebook{}, nil, err
	}
	return nb, Extract(nb), nil
}

// AnalyzeEntry analyzes one entry and folds any failure into the result message.
func (s *Service) AnalyzeEntry(ctx context.Context, entry Entry) Result {
	res := Result{Key: entry.Key, File: entry.File}

	nb, insights, err := s.Analyze(ctx, entry.File)
	s.recordAnalysis()
	if err != nil {
		res.Err = err
		res.Message = Placeholder(entry.File, err)
		s.logger.Debug("notebook skipped", "key", entry.Key, "file", entry.File, "error", err)
		return res
	}

	res.Title = nb.Title
	res.Insights = insights
	s.logger.Debug("notebook analyzed", "key", entry.Key, "cells", len(nb.Cells), "insights", len(insights))
	return res
}

// Placeholder returns the message shown in place of insights for a failed notebook.
func Placeholder(file string, err error) string {
	if errors.Is(err, ErrNotebookNotFound) {
		return fmt.Sprintf("Notebook not found: %s", file)
	}
	return fmt.Sprintf("Error analyzing notebook: %v", err)
}

// Entries returns the configured entries followed by any discovered notebooks
// that are not already named.
func (s *Service) Entries(ctx context.Context) ([]Entry, error) {
	entries := append([]Entry(nil), s.entries...)
	if s.discover == "" {
		return entries, nil
	}

	d, ok := s.repo.(Discoverable)
	if !ok {
		return nil, errors.New("repository does not support discovery")
	}
	found, err := d.Discover(ctx, s.discover)
	if err != nil {
		return nil, fmt.Errorf("failed to discover notebooks: %w", err)
	}

	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[e.File] = true
	}
	for _, e := range found {
		if known[e.File] {
			continue
		}
		known[e.File] = true
		entries = append(entries, e)
	}
	return entries, nil
}

// ExtractAll analyzes every entry in order. A failing notebook never affects the others.
func (s *Service) ExtractAll(ctx context.Context) ([]Result, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, s.AnalyzeEntry(ctx, entry))
	}

	s.mu.Lock()
	now := time.Now()
	s.lastRun = &now
	s.mu.Unlock()

	s.logger.Info("insight extraction finished", "notebooks", len(results))
	return results, nil
}

// Watch re-analyzes entries whose files change and emits their new results.
// The channel is closed when ctx is done or the repository stops watching.
func (s *Service) Watch(ctx context.Context) (<-chan Result, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	byFile := make(map[string]Entry, len(entries))
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		byFile[e.File] = e
		files = append(files, e.File)
	}

	events, err := w.Watch(ctx, files)
	if err != nil {
		return nil, err
	}

	out := make(chan Result)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				entry, tracked := byFile[ev.File]
				if !tracked {
					continue
				}
				s.logger.Debug("notebook changed", "event", ev.String())
				res := s.AnalyzeEntry(ctx, entry)
				select {
				case out <- res:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (s *Service) recordAnalysis() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyzed++
}
