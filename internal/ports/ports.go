package ports

import (
	"context"
	"time"

	"svw.info/gridkit/internal/domain"
)

// Stats captures performance characteristics of a propagation run.
type Stats struct {
	Passes       int
	Eliminations int
	Duration     time.Duration
}

// Engine drives rule evaluation over a grid to a fixed point, a solution, or
// a contradiction. trace may be nil.
type Engine interface {
	Run(ctx context.Context, g *domain.Grid, def *domain.GameDefinition, trace TraceSink) (domain.PropagationResult, Stats, error)
}

// TraceSink receives structured propagation events. The core never logs;
// a presentation layer subscribes here instead. Implementations must be fast
// and must not call back into the engine.
type TraceSink interface {
	Elimination(at domain.Coordinate, value domain.CellContent, rule, scope string)
	PassDone(pass, eliminations int)
	Finished(res domain.PropagationResult, st Stats)
}

// Catalog resolves built-in game definitions by name.
type Catalog interface {
	ByName(name string) (*domain.GameDefinition, error)
	Names() []string
}

// SessionStore keeps live puzzle sessions. In-memory only; persisting puzzle
// state is out of scope.
type SessionStore interface {
	Put(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]domain.SessionMeta, error)
	Delete(ctx context.Context, id string) error
}
