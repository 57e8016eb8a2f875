package domain

import "fmt"

// CellContent is one candidate value: a digit 0-9 or a single-character
// symbol. It marshals as a one-character JSON string.
type CellContent rune

// Number converts a small integer 0-9 into cell content.
// It panics on anything else; domains are built from literals at startup.
func Number(n int) CellContent {
	if n < 0 || n > 9 {
		panic(fmt.Sprintf("domain.Number: %d outside [0,9]", n))
	}
	return CellContent('0' + rune(n))
}

// Symbol converts a single character into cell content.
func Symbol(r rune) CellContent { return CellContent(r) }

func (c CellContent) String() string { return string(rune(c)) }

func (c CellContent) MarshalJSON() ([]byte, error) {
	return []byte(`"` + string(rune(c)) + `"`), nil
}

func (c *CellContent) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("cell content must be a JSON string, got %s", s)
	}
	runes := []rune(s[1 : len(s)-1])
	if len(runes) != 1 {
		return fmt.Errorf("cell content must be a single character, got %q", s)
	}
	*c = CellContent(runes[0])
	return nil
}

// Cell is the mutable unit of puzzle state: the shrinking candidate set for
// one position. A fixed cell was supplied as a given and never changes.
type Cell struct {
	Possibilities []CellContent `json:"possibilities"`
	Fixed         bool          `json:"fixed,omitempty"`
	Coord         Coordinate    `json:"coord"`
}

// NewCell validates structure only; membership in the puzzle's possibility
// domain is a grid-level precondition checked on placement.
func NewCell(possibilities []CellContent, fixed bool, at Coordinate) (Cell, error) {
	if fixed && len(possibilities) != 1 {
		return Cell{}, &InvalidCellError{At: at, Reason: fmt.Sprintf("fixed cell has %d possibilities, want 1", len(possibilities))}
	}
	seen := make(map[CellContent]bool, len(possibilities))
	for _, v := range possibilities {
		if seen[v] {
			return Cell{}, &InvalidCellError{At: at, Reason: fmt.Sprintf("duplicate candidate %s", v)}
		}
		seen[v] = true
	}
	ps := make([]CellContent, len(possibilities))
	copy(ps, possibilities)
	return Cell{Possibilities: ps, Fixed: fixed, Coord: at}, nil
}

// FixedCell builds a given with a single definite value.
func FixedCell(v CellContent, at Coordinate) Cell {
	return Cell{Possibilities: []CellContent{v}, Fixed: true, Coord: at}
}

// IsFound reports whether exactly one candidate remains.
func (c *Cell) IsFound() bool { return len(c.Possibilities) == 1 }

// IsInvalid reports whether no candidate remains (contradiction).
func (c *Cell) IsInvalid() bool { return len(c.Possibilities) == 0 }

// IsFixed reports whether the cell was supplied as a given.
func (c *Cell) IsFixed() bool { return c.Fixed }

// Value returns the resolved value of a found cell.
func (c *Cell) Value() (CellContent, bool) {
	if len(c.Possibilities) != 1 {
		return 0, false
	}
	return c.Possibilities[0], true
}

// Has reports whether v is still a candidate.
func (c *Cell) Has(v CellContent) bool {
	for _, p := range c.Possibilities {
		if p == v {
			return true
		}
	}
	return false
}

// remove deletes v from the candidate set, preserving order.
func (c *Cell) remove(v CellContent) bool {
	for i, p := range c.Possibilities {
		if p == v {
			c.Possibilities = append(c.Possibilities[:i], c.Possibilities[i+1:]...)
			return true
		}
	}
	return false
}
