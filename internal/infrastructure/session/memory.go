// Package session keeps live puzzle sessions in memory. Persisting puzzle
// state across restarts is deliberately out of scope.
package session

import (
	"context"
	"errors"
	"sort"
	"sync"

	"svw.info/gridkit/internal/domain"
)

var ErrNotFound = errors.New("session not found")

type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]*domain.Session)}
}

func (m *Memory) Put(ctx context.Context, s *domain.Session) error {
	if s == nil || s.ID == "" {
		return errors.New("invalid session: missing ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *Memory) Get(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *Memory) List(ctx context.Context) ([]domain.SessionMeta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.SessionMeta, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, domain.SessionMeta{ID: s.ID, Game: s.Game, CreatedAt: s.CreatedAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}
