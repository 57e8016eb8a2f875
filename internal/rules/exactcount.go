package rules

import (
	"fmt"

	"svw.info/gridkit/internal/domain"
)

// ExactCount requires Value to appear exactly Count times in a scope.
// Three situations yield eliminations:
//   - more than Count resolved occurrences: violation, attributed to the
//     (Count+1)-th occurrence in scope order;
//   - exactly Count resolved occurrences: Value leaves every other cell;
//   - resolved plus candidate occurrences add up to exactly Count: each
//     candidate cell must take Value, so its other candidates go.
type ExactCount struct {
	Value domain.CellContent
	Count int
}

func NewExactCount(v domain.CellContent, count int) *ExactCount {
	return &ExactCount{Value: v, Count: count}
}

func (r *ExactCount) Name() string {
	return fmt.Sprintf("exact-count(%s x%d)", r.Value, r.Count)
}

func (r *ExactCount) AppliesTo(domain.CoordinateCollection) bool { return true }

func (r *ExactCount) CheckGrid(g *domain.Grid, scope domain.CoordinateCollection) (bool, []domain.Elimination) {
	var resolved []domain.Coordinate // cells found with Value
	var open []domain.Cell           // unresolved cells still holding Value
	for _, at := range scope.Coords {
		cell, err := g.CellAt(at)
		if err != nil {
			continue
		}
		if v, found := cell.Value(); found {
			if v == r.Value {
				resolved = append(resolved, at)
			}
			continue
		}
		if cell.Has(r.Value) {
			open = append(open, cell)
		}
	}

	var elims []domain.Elimination
	switch {
	case len(resolved) > r.Count:
		elims = append(elims, domain.Elimination{At: resolved[r.Count], Value: r.Value})
	case len(resolved) == r.Count:
		for _, cell := range open {
			elims = append(elims, domain.Elimination{At: cell.Coord, Value: r.Value})
		}
	case len(resolved)+len(open) == r.Count:
		// every open candidate is needed; strip their other values
		for _, cell := range open {
			for _, v := range cell.Possibilities {
				if v != r.Value {
					elims = append(elims, domain.Elimination{At: cell.Coord, Value: v})
				}
			}
		}
	}
	return len(elims) == 0, elims
}
