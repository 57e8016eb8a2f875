// Package engine runs the fixed-point candidate elimination loop.
package engine

import (
	"context"
	"errors"
	"time"

	"svw.info/gridkit/internal/domain"
	"svw.info/gridkit/internal/ports"
)

// FixedPoint evaluates every rule against every relevant scope until a full
// pass eliminates nothing, the grid is solved, or a cell runs out of
// candidates. Candidate sets only shrink, so termination is guaranteed.
type FixedPoint struct{}

func New() *FixedPoint { return &FixedPoint{} }

// Run propagates constraints over g. def may be nil, in which case the grid's
// own definition is used. trace may be nil. The returned error covers context
// cancellation and structural failures only; contradictions come back as a
// result, not an error.
func (e *FixedPoint) Run(ctx context.Context, g *domain.Grid, def *domain.GameDefinition, trace ports.TraceSink) (domain.PropagationResult, ports.Stats, error) {
	start := time.Now()
	if def == nil {
		def = g.Definition()
	}
	scopes, err := buildScopes(def)
	if err != nil {
		return domain.PropagationResult{}, ports.Stats{}, err
	}

	st := ports.Stats{}
	res := domain.PropagationResult{Outcome: domain.Stalled}
	for {
		if ctx.Err() != nil {
			st.Duration = time.Since(start)
			return domain.PropagationResult{}, st, ctx.Err()
		}
		st.Passes++
		eliminated, contra, err := e.pass(g, def, scopes, trace, &st)
		if err != nil {
			st.Duration = time.Since(start)
			return domain.PropagationResult{}, st, err
		}
		if contra != nil {
			res = *contra
			break
		}
		if g.Solved() {
			res = domain.PropagationResult{Outcome: domain.Solved}
			break
		}
		if trace != nil {
			trace.PassDone(st.Passes, eliminated)
		}
		if eliminated == 0 {
			res = domain.PropagationResult{Outcome: domain.Stalled}
			break
		}
	}
	st.Duration = time.Since(start)
	if trace != nil {
		trace.Finished(res, st)
	}
	return res, st, nil
}

// pass applies every applicable rule to every scope once, in deterministic
// order. It returns the number of eliminations, or a contradiction result if
// a cell emptied.
func (e *FixedPoint) pass(g *domain.Grid, def *domain.GameDefinition, scopes []domain.CoordinateCollection, trace ports.TraceSink, st *ports.Stats) (int, *domain.PropagationResult, error) {
	eliminated := 0
	for _, scope := range scopes {
		for _, rule := range def.Rules {
			if !rule.AppliesTo(scope) {
				continue
			}
			switch rr := rule.(type) {
			case domain.CellRule:
				for _, at := range scope.Coords {
					cell, err := g.CellAt(at)
					if err != nil {
						return eliminated, nil, err
					}
					if cell.IsFixed() {
						continue
					}
					ok, elims := rr.CheckCell(g, scope, cell)
					if ok {
						continue
					}
					n, contra, err := e.apply(g, rule.Name(), scope.Name, elims, trace, st)
					eliminated += n
					if contra != nil || err != nil {
						return eliminated, contra, err
					}
				}
			case domain.GridRule:
				ok, elims := rr.CheckGrid(g, scope)
				if ok {
					continue
				}
				n, contra, err := e.apply(g, rule.Name(), scope.Name, elims, trace, st)
				eliminated += n
				if contra != nil || err != nil {
					return eliminated, contra, err
				}
			}
		}
	}
	return eliminated, nil, nil
}

// apply performs the eliminations a rule attributed to a violation. A fixed
// cell asked to give up its own value, or a cell emptied outright, halts the
// run with a contradiction at that coordinate. Fixed cells are otherwise
// never touched.
func (e *FixedPoint) apply(g *domain.Grid, rule, scope string, elims []domain.Elimination, trace ports.TraceSink, st *ports.Stats) (int, *domain.PropagationResult, error) {
	n := 0
	for _, el := range elims {
		removed, remaining, err := g.Eliminate(el.At, el.Value)
		var fixed *domain.FixedCellMutationError
		if errors.As(err, &fixed) {
			return n, &domain.PropagationResult{Outcome: domain.Contradiction, At: el.At, Rule: rule}, nil
		}
		if err != nil {
			return n, nil, err
		}
		if !removed {
			continue
		}
		n++
		st.Eliminations++
		if trace != nil {
			trace.Elimination(el.At, el.Value, rule, scope)
		}
		if remaining == 0 {
			return n, &domain.PropagationResult{Outcome: domain.Contradiction, At: el.At, Rule: rule}, nil
		}
	}
	return n, nil, nil
}

// buildScopes lists every scope a pass visits: all rows ascending, all
// columns ascending, then the definition's extra collections in declared
// order.
func buildScopes(def *domain.GameDefinition) ([]domain.CoordinateCollection, error) {
	scopes := make([]domain.CoordinateCollection, 0, def.MaxRow+def.MaxCol+len(def.Extra))
	for r := 0; r < def.MaxRow; r++ {
		cc, err := domain.RowCollection(r, def.MaxCol)
		if err != nil {
			return nil, err
		}
		scopes = append(scopes, cc)
	}
	for c := 0; c < def.MaxCol; c++ {
		cc, err := domain.ColCollection(c, def.MaxRow)
		if err != nil {
			return nil, err
		}
		scopes = append(scopes, cc)
	}
	scopes = append(scopes, def.Extra...)
	return scopes, nil
}
