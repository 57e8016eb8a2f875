package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"svw.info/gridkit/internal/domain"
	"svw.info/gridkit/internal/ports"
)

type Service struct {
	Engine  ports.Engine
	Catalog ports.Catalog
	Store   ports.SessionStore
}

func NewService(e ports.Engine, c ports.Catalog, st ports.SessionStore) *Service {
	return &Service{Engine: e, Catalog: c, Store: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewSession starts a puzzle instance of the named game with the supplied
// givens and registers it under a fresh ID.
func (u *Service) NewSession(ctx context.Context, game string, initial []domain.Cell) (*domain.Session, error) {
	if u.Catalog == nil || u.Store == nil {
		return nil, errNotConfigured
	}
	def, err := u.Catalog.ByName(game)
	if err != nil {
		return nil, err
	}
	grid, err := domain.NewGrid(def, initial)
	if err != nil {
		return nil, err
	}
	s := &domain.Session{
		ID:        uuid.NewString(),
		Game:      def.Name,
		CreatedAt: time.Now().UnixNano(),
		Grid:      grid,
	}
	if err := u.Store.Put(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Session returns the live session for id.
func (u *Service) Session(ctx context.Context, id string) (*domain.Session, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.Get(ctx, id)
}

// CellAt reads one cell of a session's grid for rendering.
func (u *Service) CellAt(ctx context.Context, id string, at domain.Coordinate) (domain.Cell, error) {
	s, err := u.Session(ctx, id)
	if err != nil {
		return domain.Cell{}, err
	}
	s.Lock()
	defer s.Unlock()
	return s.Grid.CellAt(at)
}

// SetCell applies a user edit to a session's grid. Edits and propagation runs
// on one session are serialized through the session lock.
func (u *Service) SetCell(ctx context.Context, id string, at domain.Coordinate, cell domain.Cell) error {
	s, err := u.Session(ctx, id)
	if err != nil {
		return err
	}
	s.Lock()
	defer s.Unlock()
	return s.Grid.SetCellAt(at, cell)
}

// Propagate runs the rule engine on a session's grid to a terminal state.
func (u *Service) Propagate(ctx context.Context, id string, trace ports.TraceSink) (domain.PropagationResult, ports.Stats, error) {
	if u.Engine == nil {
		return domain.PropagationResult{}, ports.Stats{}, errNotConfigured
	}
	s, err := u.Session(ctx, id)
	if err != nil {
		return domain.PropagationResult{}, ports.Stats{}, err
	}
	s.Lock()
	defer s.Unlock()
	return u.Engine.Run(ctx, s.Grid, nil, trace)
}

// Games lists the available puzzle types.
func (u *Service) Games(ctx context.Context) ([]string, error) {
	if u.Catalog == nil {
		return nil, errNotConfigured
	}
	return u.Catalog.Names(), nil
}

// Sessions lists live sessions.
func (u *Service) Sessions(ctx context.Context) ([]domain.SessionMeta, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.List(ctx)
}

// Drop discards a session.
func (u *Service) Drop(ctx context.Context, id string) error {
	if u.Store == nil {
		return errNotConfigured
	}
	return u.Store.Delete(ctx, id)
}
