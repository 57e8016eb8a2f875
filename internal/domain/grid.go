package domain

import "fmt"

// Grid is the two-dimensional cell container and sole owner of puzzle state.
// Invariant: cells[r][c].Coord == (r,c) at all times.
type Grid struct {
	def   *GameDefinition
	cells [][]Cell
}

// NewGrid builds a MaxRow x MaxCol grid where every cell starts with the full
// possibility domain and no cell is fixed, then overlays the given initial
// cells as fixed givens. An initial cell without exactly one possibility is
// rejected.
func NewGrid(def *GameDefinition, initial []Cell) (*Grid, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	cells := make([][]Cell, def.MaxRow)
	for r := 0; r < def.MaxRow; r++ {
		cells[r] = make([]Cell, def.MaxCol)
		for c := 0; c < def.MaxCol; c++ {
			ps := make([]CellContent, len(def.Domain))
			copy(ps, def.Domain)
			cells[r][c] = Cell{Possibilities: ps, Coord: Coordinate{Row: r, Col: c}}
		}
	}
	g := &Grid{def: def, cells: cells}
	for _, init := range initial {
		if len(init.Possibilities) != 1 {
			return nil, &IncompleteInitialCellError{At: init.Coord, Count: len(init.Possibilities)}
		}
		if err := g.checkBounds(init.Coord); err != nil {
			return nil, err
		}
		v := init.Possibilities[0]
		if !def.InDomain(v) {
			return nil, &InvalidCellError{At: init.Coord, Reason: fmt.Sprintf("value %s outside puzzle domain", v)}
		}
		g.cells[init.Coord.Row][init.Coord.Col] = FixedCell(v, init.Coord)
	}
	return g, nil
}

// Definition returns the shared, read-only puzzle configuration.
func (g *Grid) Definition() *GameDefinition { return g.def }

func (g *Grid) MaxRow() int { return g.def.MaxRow }
func (g *Grid) MaxCol() int { return g.def.MaxCol }

func (g *Grid) checkBounds(at Coordinate) error {
	if at.Row < 0 || at.Row >= g.def.MaxRow {
		return &OutOfRangeError{What: "row", Value: at.Row, Min: 0, Max: g.def.MaxRow - 1}
	}
	if at.Col < 0 || at.Col >= g.def.MaxCol {
		return &OutOfRangeError{What: "col", Value: at.Col, Min: 0, Max: g.def.MaxCol - 1}
	}
	return nil
}

// CellAt returns a copy of the cell at the coordinate. Callers cannot mutate
// grid state through the returned value.
func (g *Grid) CellAt(at Coordinate) (Cell, error) {
	if err := g.checkBounds(at); err != nil {
		return Cell{}, err
	}
	cell := g.cells[at.Row][at.Col]
	ps := make([]CellContent, len(cell.Possibilities))
	copy(ps, cell.Possibilities)
	cell.Possibilities = ps
	return cell, nil
}

// SetCellAt replaces the cell at the coordinate, e.g. with a user edit.
// Fixed cells are immutable post-placement: only writing back their identical
// content is allowed. All candidate values must belong to the puzzle domain.
func (g *Grid) SetCellAt(at Coordinate, cell Cell) error {
	if err := g.checkBounds(at); err != nil {
		return err
	}
	existing := &g.cells[at.Row][at.Col]
	if existing.Fixed {
		if cell.Coord != at || !cell.Fixed || len(cell.Possibilities) != 1 ||
			cell.Possibilities[0] != existing.Possibilities[0] {
			return &FixedCellMutationError{At: at}
		}
		return nil
	}
	if cell.Coord != at {
		return &InvalidCellError{At: at, Reason: fmt.Sprintf("cell carries coordinate %s", cell.Coord)}
	}
	validated, err := NewCell(cell.Possibilities, cell.Fixed, at)
	if err != nil {
		return err
	}
	for _, v := range validated.Possibilities {
		if !g.def.InDomain(v) {
			return &InvalidCellError{At: at, Reason: fmt.Sprintf("value %s outside puzzle domain", v)}
		}
	}
	g.cells[at.Row][at.Col] = validated
	return nil
}

// Eliminate removes one candidate from the cell at the coordinate and reports
// whether anything changed plus the remaining candidate count. Eliminating a
// fixed cell's own value is refused with a FixedCellMutationError; the caller
// interprets that as a contradiction at the coordinate. Eliminating a value a
// fixed cell does not hold is a no-op.
func (g *Grid) Eliminate(at Coordinate, v CellContent) (bool, int, error) {
	if err := g.checkBounds(at); err != nil {
		return false, 0, err
	}
	cell := &g.cells[at.Row][at.Col]
	if cell.Fixed {
		if cell.Has(v) {
			return false, len(cell.Possibilities), &FixedCellMutationError{At: at}
		}
		return false, len(cell.Possibilities), nil
	}
	removed := cell.remove(v)
	return removed, len(cell.Possibilities), nil
}

// AllFound reports whether every cell of the collection is resolved.
func (g *Grid) AllFound(cc CoordinateCollection) (bool, error) {
	for _, at := range cc.Coords {
		cell, err := g.CellAt(at)
		if err != nil {
			return false, err
		}
		if !cell.IsFound() {
			return false, nil
		}
	}
	return true, nil
}

// Solved reports whether every cell of the grid is resolved.
func (g *Grid) Solved() bool {
	for r := range g.cells {
		for c := range g.cells[r] {
			if !g.cells[r][c].IsFound() {
				return false
			}
		}
	}
	return true
}
