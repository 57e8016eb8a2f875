package domain

import "fmt"

// OutOfRangeError reports a coordinate or dimension outside its legal bounds,
// including accesses beyond a grid's edge.
type OutOfRangeError struct {
	What     string
	Value    int
	Min, Max int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d,%d]", e.What, e.Value, e.Min, e.Max)
}

// InvalidCellError reports a malformed cell: duplicate candidates, a value
// outside the puzzle's domain, a fixed cell without exactly one candidate, or
// a cell whose coordinate does not match its grid slot.
type InvalidCellError struct {
	At     Coordinate
	Reason string
}

func (e *InvalidCellError) Error() string {
	return fmt.Sprintf("invalid cell at %s: %s", e.At, e.Reason)
}

// FixedCellMutationError reports an attempt to change a fixed cell's content.
type FixedCellMutationError struct {
	At Coordinate
}

func (e *FixedCellMutationError) Error() string {
	return fmt.Sprintf("cell at %s is fixed and cannot be changed", e.At)
}

// IncompleteInitialCellError reports an initial cell supplied at setup with
// more (or fewer) than one possibility. Givens must be definite.
type IncompleteInitialCellError struct {
	At    Coordinate
	Count int
}

func (e *IncompleteInitialCellError) Error() string {
	return fmt.Sprintf("initial cell at %s has %d possibilities, want exactly 1", e.At, e.Count)
}
