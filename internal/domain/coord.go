package domain

import "fmt"

// MaxDim bounds grid dimensions; coordinate components live in [0, MaxDim).
const MaxDim = 50

// Coordinate identifies a cell on the grid, zero-based.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewCoordinate validates both components against the global bound.
func NewCoordinate(row, col int) (Coordinate, error) {
	if row < 0 || row >= MaxDim {
		return Coordinate{}, &OutOfRangeError{What: "row", Value: row, Min: 0, Max: MaxDim - 1}
	}
	if col < 0 || col >= MaxDim {
		return Coordinate{}, &OutOfRangeError{What: "col", Value: col, Min: 0, Max: MaxDim - 1}
	}
	return Coordinate{Row: row, Col: col}, nil
}

func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// CoordinateCollection is an ordered group of positions used as a rule scope:
// a full row, a full column, or an arbitrary region such as a box.
type CoordinateCollection struct {
	Name   string       `json:"name,omitempty"`
	Coords []Coordinate `json:"coords"`
}

// IsRow reports whether every member shares the first member's row.
// An empty collection is vacuously a row.
func (cc CoordinateCollection) IsRow() bool {
	for _, c := range cc.Coords {
		if c.Row != cc.Coords[0].Row {
			return false
		}
	}
	return true
}

// IsColumn reports whether every member shares the first member's column.
func (cc CoordinateCollection) IsColumn() bool {
	for _, c := range cc.Coords {
		if c.Col != cc.Coords[0].Col {
			return false
		}
	}
	return true
}

// RowCollection builds the scope (r,0)..(r,maxCol-1).
func RowCollection(r, maxCol int) (CoordinateCollection, error) {
	if r < 0 || r >= MaxDim {
		return CoordinateCollection{}, &OutOfRangeError{What: "row", Value: r, Min: 0, Max: MaxDim - 1}
	}
	if maxCol < 1 || maxCol > MaxDim {
		return CoordinateCollection{}, &OutOfRangeError{What: "maxCol", Value: maxCol, Min: 1, Max: MaxDim}
	}
	cc := CoordinateCollection{Name: fmt.Sprintf("row %d", r)}
	cc.Coords = make([]Coordinate, maxCol)
	for c := 0; c < maxCol; c++ {
		cc.Coords[c] = Coordinate{Row: r, Col: c}
	}
	return cc, nil
}

// ColCollection builds the scope (0,c)..(maxRow-1,c).
func ColCollection(c, maxRow int) (CoordinateCollection, error) {
	if c < 0 || c >= MaxDim {
		return CoordinateCollection{}, &OutOfRangeError{What: "col", Value: c, Min: 0, Max: MaxDim - 1}
	}
	if maxRow < 1 || maxRow > MaxDim {
		return CoordinateCollection{}, &OutOfRangeError{What: "maxRow", Value: maxRow, Min: 1, Max: MaxDim}
	}
	cc := CoordinateCollection{Name: fmt.Sprintf("col %d", c)}
	cc.Coords = make([]Coordinate, maxRow)
	for r := 0; r < maxRow; r++ {
		cc.Coords[r] = Coordinate{Row: r, Col: c}
	}
	return cc, nil
}
