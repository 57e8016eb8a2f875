package engine

import (
	"context"
	"testing"
	"time"

	"svw.info/gridkit/internal/domain"
	"svw.info/gridkit/internal/games"
	"svw.info/gridkit/internal/ports"
)

func at(r, c int) domain.Coordinate { return domain.Coordinate{Row: r, Col: c} }

func run(t *testing.T, g *domain.Grid, trace ports.TraceSink) (domain.PropagationResult, ports.Stats) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res, st, err := New().Run(ctx, g, nil, trace)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return res, st
}

func mustValue(t *testing.T, g *domain.Grid, r, c int) domain.CellContent {
	t.Helper()
	cell, err := g.CellAt(at(r, c))
	if err != nil {
		t.Fatalf("CellAt(%d,%d) failed: %v", r, c, err)
	}
	v, found := cell.Value()
	if !found {
		t.Fatalf("cell (%d,%d) not found: %v", r, c, cell.Possibilities)
	}
	return v
}

func TestNoRulesStalls(t *testing.T) {
	zero, one := domain.Number(0), domain.Number(1)
	def := &domain.GameDefinition{
		Name:   "bare-2x2",
		Domain: []domain.CellContent{zero, one},
		MaxRow: 2,
		MaxCol: 2,
	}
	g, err := domain.NewGrid(def, []domain.Cell{
		domain.FixedCell(zero, at(0, 0)),
		domain.FixedCell(one, at(0, 1)),
	})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	res, st := run(t, g, nil)
	if res.Outcome != domain.Stalled {
		t.Fatalf("outcome = %s, want stalled", res.Outcome)
	}
	if st.Eliminations != 0 {
		t.Fatalf("rule-free run eliminated %d candidates", st.Eliminations)
	}
	for _, c := range []int{0, 1} {
		cell, _ := g.CellAt(at(1, c))
		if len(cell.Possibilities) != 2 {
			t.Fatalf("cell (1,%d) = %v, want both candidates intact", c, cell.Possibilities)
		}
	}
}

func TestExactCountSolvesSecondRow(t *testing.T) {
	def, err := games.Takuzu(2)
	if err != nil {
		t.Fatalf("Takuzu failed: %v", err)
	}
	zero, one := domain.Number(0), domain.Number(1)
	g, err := domain.NewGrid(def, []domain.Cell{
		domain.FixedCell(zero, at(0, 0)),
		domain.FixedCell(one, at(0, 1)),
	})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	res, _ := run(t, g, nil)
	if res.Outcome != domain.Solved {
		t.Fatalf("outcome = %s, want solved", res.Outcome)
	}
	if v := mustValue(t, g, 1, 0); v != one {
		t.Fatalf("(1,0) = %s, want 1", v)
	}
	if v := mustValue(t, g, 1, 1); v != zero {
		t.Fatalf("(1,1) = %s, want 0", v)
	}
}

func TestConflictingGivensContradict(t *testing.T) {
	def, err := games.Takuzu(2)
	if err != nil {
		t.Fatalf("Takuzu failed: %v", err)
	}
	zero := domain.Number(0)
	g, err := domain.NewGrid(def, []domain.Cell{
		domain.FixedCell(zero, at(0, 0)),
		domain.FixedCell(zero, at(0, 1)),
	})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	res, _ := run(t, g, nil)
	if res.Outcome != domain.Contradiction {
		t.Fatalf("outcome = %s, want contradiction", res.Outcome)
	}
	if res.At != at(0, 1) {
		t.Fatalf("contradiction at %s, want second conflicting cell (0,1)", res.At)
	}
	// fixed-cell invariance: the conflicting given keeps its value
	cell, _ := g.CellAt(at(0, 1))
	if !cell.IsFixed() || len(cell.Possibilities) != 1 || cell.Possibilities[0] != zero {
		t.Fatalf("fixed cell mutated by contradiction: %+v", cell)
	}
}

func TestLatinSquareLastRow(t *testing.T) {
	def, err := games.LatinSquare(4)
	if err != nil {
		t.Fatalf("LatinSquare failed: %v", err)
	}
	// cyclic square with the last row blank
	solution := [4][4]int{
		{1, 2, 3, 4},
		{2, 3, 4, 1},
		{3, 4, 1, 2},
		{4, 1, 2, 3},
	}
	var initial []domain.Cell
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			initial = append(initial, domain.FixedCell(domain.Number(solution[r][c]), at(r, c)))
		}
	}
	g, err := domain.NewGrid(def, initial)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	res, st := run(t, g, nil)
	if res.Outcome != domain.Solved {
		t.Fatalf("outcome = %s, want solved (stats %+v)", res.Outcome, st)
	}
	for c := 0; c < 4; c++ {
		if v := mustValue(t, g, 3, c); v != domain.Number(solution[3][c]) {
			t.Fatalf("(3,%d) = %s, want %d", c, v, solution[3][c])
		}
	}
}

func TestSudoku4BoxScope(t *testing.T) {
	def, err := games.Sudoku4()
	if err != nil {
		t.Fatalf("Sudoku4 failed: %v", err)
	}
	one := domain.Number(1)
	// same value twice in one 2x2 box, but on distinct rows and columns:
	// only the box collection can catch it
	g, err := domain.NewGrid(def, []domain.Cell{
		domain.FixedCell(one, at(0, 0)),
		domain.FixedCell(one, at(1, 1)),
	})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	res, _ := run(t, g, nil)
	if res.Outcome != domain.Contradiction {
		t.Fatalf("outcome = %s, want contradiction from box scope", res.Outcome)
	}
	if res.At != at(1, 1) {
		t.Fatalf("contradiction at %s, want (1,1)", res.At)
	}
}

// monotonicitySink verifies candidate sets only ever shrink and counts
// every elimination.
type monotonicitySink struct {
	t    *testing.T
	g    *domain.Grid
	seen int
}

func (m *monotonicitySink) Elimination(at domain.Coordinate, value domain.CellContent, rule, scope string) {
	m.seen++
	cell, err := m.g.CellAt(at)
	if err != nil {
		m.t.Fatalf("trace names bad coordinate %s: %v", at, err)
	}
	if cell.Has(value) {
		m.t.Fatalf("trace reported elimination of %s at %s but the candidate is still there", value, at)
	}
}

func (m *monotonicitySink) PassDone(pass, eliminations int) {}

func (m *monotonicitySink) Finished(res domain.PropagationResult, st ports.Stats) {}

func TestTerminationBoundAndTraces(t *testing.T) {
	def, err := games.Takuzu(6)
	if err != nil {
		t.Fatalf("Takuzu failed: %v", err)
	}
	one := domain.Number(1)
	g, err := domain.NewGrid(def, []domain.Cell{
		domain.FixedCell(one, at(0, 0)),
		domain.FixedCell(one, at(0, 1)),
		domain.FixedCell(one, at(2, 3)),
		domain.FixedCell(one, at(3, 3)),
	})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	sink := &monotonicitySink{t: t, g: g}
	res, st := run(t, g, sink)
	if res.Outcome == domain.Contradiction {
		t.Fatalf("unexpected contradiction at %s", res.At)
	}
	// domain size x cell count bounds total eliminations
	if bound := 2 * 36; st.Eliminations > bound {
		t.Fatalf("eliminations %d exceed bound %d", st.Eliminations, bound)
	}
	if sink.seen != st.Eliminations {
		t.Fatalf("trace saw %d eliminations, stats say %d", sink.seen, st.Eliminations)
	}
	// the no-triple rule must have fired on the two leading ones
	cell, _ := g.CellAt(at(0, 2))
	if cell.Has(one) && !cell.IsFound() {
		t.Fatalf("(0,2) still allows a third 1: %v", cell.Possibilities)
	}
}

func TestFixedCellsInvariantAcrossRun(t *testing.T) {
	def, err := games.Takuzu(4)
	if err != nil {
		t.Fatalf("Takuzu failed: %v", err)
	}
	zero := domain.Number(0)
	givens := []domain.Coordinate{at(0, 0), at(1, 2), at(3, 3)}
	var initial []domain.Cell
	for _, gc := range givens {
		initial = append(initial, domain.FixedCell(zero, gc))
	}
	g, err := domain.NewGrid(def, initial)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	run(t, g, nil)
	for _, gc := range givens {
		cell, _ := g.CellAt(gc)
		if !cell.IsFixed() || len(cell.Possibilities) != 1 || cell.Possibilities[0] != zero {
			t.Fatalf("given at %s changed: %+v", gc, cell)
		}
	}
}

func TestRunHonorsContext(t *testing.T) {
	def, err := games.Takuzu(4)
	if err != nil {
		t.Fatalf("Takuzu failed: %v", err)
	}
	g, err := domain.NewGrid(def, nil)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := New().Run(ctx, g, nil, nil); err == nil {
		t.Fatal("canceled context not reported")
	}
}
