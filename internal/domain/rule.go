package domain

// Elimination names one candidate deletion a rule attributes to a violation:
// remove Value from the cell at At.
type Elimination struct {
	At    Coordinate
	Value CellContent
}

// Rule is the common capability of puzzle rules. A rule is a pure consistency
// predicate over a scope; it never mutates the grid. When a check fails the
// rule must also enumerate the eliminations that repair (or expose) the
// violation — the engine applies exactly those. Every concrete rule refines
// this interface as either a CellRule or a GridRule.
type Rule interface {
	Name() string
	// AppliesTo reports whether the rule is meaningful for the given scope
	// shape (some rules only make sense along rows and columns).
	AppliesTo(scope CoordinateCollection) bool
}

// CellRule is checked once per non-fixed cell of a scope.
type CellRule interface {
	Rule
	// CheckCell returns false plus the offending candidates of this cell
	// when the cell's candidate set is inconsistent with the scope.
	CheckCell(g *Grid, scope CoordinateCollection, cell Cell) (bool, []Elimination)
}

// GridRule is checked once per scope against the whole grid.
type GridRule interface {
	Rule
	// CheckGrid returns false plus the candidates to eliminate when the
	// scope's current state is inconsistent with the rule.
	CheckGrid(g *Grid, scope CoordinateCollection) (bool, []Elimination)
}
