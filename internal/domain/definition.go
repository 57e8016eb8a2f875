package domain

import "fmt"

// MaxDomain caps the possibility domain size per puzzle type.
const MaxDomain = 10

// MaxNameLen caps a game definition's display name.
const MaxNameLen = 20

// GameDefinition is the per-puzzle-type configuration: the value domain, the
// grid dimensions, the rule list, and any extra constraint scopes beyond rows
// and columns (e.g. boxes). Built once, never mutated, shared by reference.
type GameDefinition struct {
	Name   string
	Domain []CellContent
	MaxRow int
	MaxCol int
	Rules  []Rule
	Extra  []CoordinateCollection
}

// Validate checks the definition's structural constraints.
func (d *GameDefinition) Validate() error {
	if d.Name == "" || len(d.Name) > MaxNameLen {
		return fmt.Errorf("game name %q must be 1-%d characters", d.Name, MaxNameLen)
	}
	if len(d.Domain) == 0 || len(d.Domain) > MaxDomain {
		return fmt.Errorf("game %q: domain size %d outside [1,%d]", d.Name, len(d.Domain), MaxDomain)
	}
	seen := make(map[CellContent]bool, len(d.Domain))
	for _, v := range d.Domain {
		if seen[v] {
			return fmt.Errorf("game %q: duplicate domain value %s", d.Name, v)
		}
		seen[v] = true
	}
	if d.MaxRow < 1 || d.MaxRow > MaxDim {
		return &OutOfRangeError{What: "maxRow", Value: d.MaxRow, Min: 1, Max: MaxDim}
	}
	if d.MaxCol < 1 || d.MaxCol > MaxDim {
		return &OutOfRangeError{What: "maxCol", Value: d.MaxCol, Min: 1, Max: MaxDim}
	}
	for _, cc := range d.Extra {
		for _, at := range cc.Coords {
			if at.Row < 0 || at.Row >= d.MaxRow {
				return &OutOfRangeError{What: "extra collection " + cc.Name + " row", Value: at.Row, Min: 0, Max: d.MaxRow - 1}
			}
			if at.Col < 0 || at.Col >= d.MaxCol {
				return &OutOfRangeError{What: "extra collection " + cc.Name + " col", Value: at.Col, Min: 0, Max: d.MaxCol - 1}
			}
		}
	}
	return nil
}

// InDomain reports whether v is a legal value for this puzzle type.
func (d *GameDefinition) InDomain(v CellContent) bool {
	for _, dv := range d.Domain {
		if dv == v {
			return true
		}
	}
	return false
}
