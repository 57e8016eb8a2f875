package domain

import "sync"

// Session binds one grid to its definition for the lifetime of a puzzle run.
// Mutation of a grid must be serialized: callers hold the session lock across
// any edit or propagation run, so external edits and passes never interleave.
type Session struct {
	ID        string `json:"id"`
	Game      string `json:"game"`
	CreatedAt int64  `json:"createdAt"`
	Grid      *Grid  `json:"-"`

	mu sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// SessionMeta is a lightweight listing entry.
type SessionMeta struct {
	ID        string `json:"id"`
	Game      string `json:"game"`
	CreatedAt int64  `json:"createdAt"`
}
