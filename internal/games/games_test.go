package games

import (
	"testing"

	"svw.info/gridkit/internal/domain"
)

func TestRegistryCatalog(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	names := reg.Names()
	if len(names) == 0 {
		t.Fatal("empty catalog")
	}
	for _, name := range names {
		def, err := reg.ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) failed: %v", name, err)
		}
		if err := def.Validate(); err != nil {
			t.Fatalf("definition %q invalid: %v", name, err)
		}
		if len(def.Rules) == 0 {
			t.Fatalf("definition %q has no rules", name)
		}
	}
	if _, err := reg.ByName("no-such-game"); err == nil {
		t.Fatal("unknown game resolved")
	}
}

func TestTakuzuRejectsOddSize(t *testing.T) {
	if _, err := Takuzu(5); err == nil {
		t.Fatal("odd takuzu size accepted")
	}
	if _, err := Takuzu(0); err == nil {
		t.Fatal("zero takuzu size accepted")
	}
}

func TestSudoku4Boxes(t *testing.T) {
	def, err := Sudoku4()
	if err != nil {
		t.Fatalf("Sudoku4 failed: %v", err)
	}
	if len(def.Extra) != 4 {
		t.Fatalf("got %d boxes, want 4", len(def.Extra))
	}
	seen := make(map[domain.Coordinate]int)
	for _, box := range def.Extra {
		if len(box.Coords) != 4 {
			t.Fatalf("box %q has %d cells", box.Name, len(box.Coords))
		}
		if box.IsRow() || box.IsColumn() {
			t.Fatalf("box %q classified as a line", box.Name)
		}
		for _, at := range box.Coords {
			seen[at]++
		}
	}
	if len(seen) != 16 {
		t.Fatalf("boxes cover %d distinct cells, want 16", len(seen))
	}
	for at, n := range seen {
		if n != 1 {
			t.Fatalf("cell %s appears in %d boxes", at, n)
		}
	}
}
