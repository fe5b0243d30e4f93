package generator

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
	"github.com/ngo-tools/grant-forge/pkg/services/enrich"
)

// Service creates and tracks generator sessions.
type Service interface {
	// NewSession opens a session for the document type.
	NewSession(t domain.DocType) (*Session, error)
	// Get returns a tracked session by id.
	Get(id string) (*Session, error)
	// Close drops a session. Closing an unknown id is a no-op.
	Close(id string)
	// Types lists the supported document types.
	Types() []domain.DocType
}

// Options tune session behavior. The zero value uses no pacing delay
// and a time-seeded random source.
type Options struct {
	// Delay is the pacing wait applied by Session.Generate.
	Delay time.Duration
	// Source drives theme selection; nil seeds from the clock.
	Source enrich.Source
}

type service struct {
	delay time.Duration
	src   enrich.Source

	mu       sync.RWMutex
	sessions map[string]*Session
}

// globalSource delegates to the shared math/rand generator, which is
// safe for concurrent sessions.
type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

func NewService(opts Options) Service {
	src := opts.Source
	if src == nil {
		src = globalSource{}
	}
	return &service{
		delay:    opts.Delay,
		src:      src,
		sessions: make(map[string]*Session),
	}
}

func (s *service) NewSession(t domain.DocType) (*Session, error) {
	session, err := newSession(t, s.delay, s.src)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()
	return session, nil
}

func (s *service) Get(id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	return session, nil
}

func (s *service) Close(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *service) Types() []domain.DocType {
	return domain.DocTypes()
}
