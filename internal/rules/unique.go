package rules

import "svw.info/gridkit/internal/domain"

// UniqueInCollection forbids the same resolved value twice in one scope.
// A violation is attributed to the second occurrence in scope order, so a
// conflicting given surfaces as a contradiction at the later coordinate.
type UniqueInCollection struct{}

func NewUniqueInCollection() *UniqueInCollection { return &UniqueInCollection{} }

func (r *UniqueInCollection) Name() string { return "unique-in-collection" }

func (r *UniqueInCollection) AppliesTo(domain.CoordinateCollection) bool { return true }

func (r *UniqueInCollection) CheckGrid(g *domain.Grid, scope domain.CoordinateCollection) (bool, []domain.Elimination) {
	seen := make(map[domain.CellContent]bool, domain.MaxDomain)
	var elims []domain.Elimination
	for _, at := range scope.Coords {
		cell, err := g.CellAt(at)
		if err != nil {
			continue
		}
		v, found := cell.Value()
		if !found {
			continue
		}
		if seen[v] {
			elims = append(elims, domain.Elimination{At: at, Value: v})
			continue
		}
		seen[v] = true
	}
	return len(elims) == 0, elims
}
