package domain

// Outcome classifies how a propagation run ended.
type Outcome int

const (
	// Solved: every cell is found.
	Solved Outcome = iota
	// Contradiction: some cell lost its last candidate. Recoverable puzzle
	// state, not a failure; the caller may backtrack or inform the user.
	Contradiction
	// Stalled: fixed point reached with undetermined cells left. The rule
	// set cannot finish this instance; a valid, reportable outcome.
	Stalled
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Contradiction:
		return "contradiction"
	case Stalled:
		return "stalled"
	default:
		return "unknown"
	}
}

// PropagationResult is the terminal state of one fixed-point run. At and Rule
// are meaningful only for a Contradiction: the cell that emptied and the rule
// that forced it.
type PropagationResult struct {
	Outcome Outcome
	At      Coordinate
	Rule    string
}
