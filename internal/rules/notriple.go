package rules

import "svw.info/gridkit/internal/domain"

// NoTriple forbids three adjacent equal values along a line. It only applies
// to row- and column-shaped scopes; adjacency is scope order.
type NoTriple struct{}

func NewNoTriple() *NoTriple { return &NoTriple{} }

func (r *NoTriple) Name() string { return "no-triple" }

func (r *NoTriple) AppliesTo(scope domain.CoordinateCollection) bool {
	return scope.IsRow() || scope.IsColumn()
}

func (r *NoTriple) CheckGrid(g *domain.Grid, scope domain.CoordinateCollection) (bool, []domain.Elimination) {
	var elims []domain.Elimination
	for i := 0; i+2 < len(scope.Coords); i++ {
		window := [3]domain.Cell{}
		readable := true
		for j := 0; j < 3; j++ {
			cell, err := g.CellAt(scope.Coords[i+j])
			if err != nil {
				readable = false
				break
			}
			window[j] = cell
		}
		if !readable {
			continue
		}
		elims = append(elims, checkWindow(window)...)
	}
	return len(elims) == 0, elims
}

// checkWindow inspects one run of three adjacent cells: two resolved equal
// values outlaw that value in the remaining cell; three resolved equal values
// are a violation attributed to the last of them.
func checkWindow(w [3]domain.Cell) []domain.Elimination {
	var vals [3]domain.CellContent
	var found [3]bool
	n := 0
	for j := 0; j < 3; j++ {
		vals[j], found[j] = w[j].Value()
		if found[j] {
			n++
		}
	}
	if n == 3 && vals[0] == vals[1] && vals[1] == vals[2] {
		return []domain.Elimination{{At: w[2].Coord, Value: vals[2]}}
	}
	if n != 2 {
		return nil
	}
	// identify the open cell and the shared value, if any
	open := 0
	for j := 0; j < 3; j++ {
		if !found[j] {
			open = j
		}
	}
	a, b := (open+1)%3, (open+2)%3
	if vals[a] != vals[b] {
		return nil
	}
	if w[open].Has(vals[a]) {
		return []domain.Elimination{{At: w[open].Coord, Value: vals[a]}}
	}
	return nil
}
