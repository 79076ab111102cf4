// Package memory is the default session store. Nothing survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"finprobe/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	sessions map[string]domain.Analysis
}

func New() *Store {
	return &Store{sessions: make(map[string]domain.Analysis)}
}

func (s *Store) Save(_ context.Context, a domain.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[a.SessionID] = a
	return nil
}

func (s *Store) Latest(_ context.Context, sessionID string) (domain.Analysis, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.sessions[sessionID]
	return a, ok, nil
}

func (s *Store) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, a := range s.sessions {
		if a.Expired(now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

func (s *Store) Close() error { return nil }
