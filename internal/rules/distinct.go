// Package rules provides the built-in constraint rules dispatched by the
// engine: cell-scoped candidate pruning and grid-scoped counting rules.
package rules

import "svw.info/gridkit/internal/domain"

// DistinctFromFound is the cell-scoped latin constraint: a cell may not keep
// a candidate already resolved elsewhere in its scope. It does the cheap local
// pruning; UniqueInCollection catches outright duplicate placements.
type DistinctFromFound struct{}

func NewDistinctFromFound() *DistinctFromFound { return &DistinctFromFound{} }

func (r *DistinctFromFound) Name() string { return "distinct-from-found" }

func (r *DistinctFromFound) AppliesTo(domain.CoordinateCollection) bool { return true }

func (r *DistinctFromFound) CheckCell(g *domain.Grid, scope domain.CoordinateCollection, cell domain.Cell) (bool, []domain.Elimination) {
	if cell.IsFound() {
		return true, nil
	}
	var elims []domain.Elimination
	for _, at := range scope.Coords {
		if at == cell.Coord {
			continue
		}
		sib, err := g.CellAt(at)
		if err != nil {
			continue
		}
		v, found := sib.Value()
		if !found {
			continue
		}
		if cell.Has(v) {
			elims = append(elims, domain.Elimination{At: cell.Coord, Value: v})
		}
	}
	return len(elims) == 0, elims
}
