package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Entries        int        `json:"entries"`
	Discover       string     `json:"discover,omitempty"`
	Analyzed       int        `json:"analyzed"`
	LastRun        *time.Time `json:"last_run,omitempty"`
	RepositoryType string     `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	return ServiceState{
		Entries:        len(s.entries),
		Discover:       s.discover,
		Analyzed:       s.analyzed,
		LastRun:        s.lastRun,
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
