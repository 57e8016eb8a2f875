// Package games holds the built-in puzzle type definitions.
package games

import (
	"fmt"
	"sort"

	"svw.info/gridkit/internal/domain"
	"svw.info/gridkit/internal/rules"
)

// Takuzu builds the binary-placement puzzle: domain {0,1}, each row and
// column balanced with size/2 of each value and no three alike adjacent.
// size must be even and in [2, MaxDim].
func Takuzu(size int) (*domain.GameDefinition, error) {
	if size < 2 || size > domain.MaxDim || size%2 != 0 {
		return nil, fmt.Errorf("takuzu size %d must be even and in [2,%d]", size, domain.MaxDim)
	}
	zero, one := domain.Number(0), domain.Number(1)
	def := &domain.GameDefinition{
		Name:   fmt.Sprintf("takuzu-%d", size),
		Domain: []domain.CellContent{zero, one},
		MaxRow: size,
		MaxCol: size,
		Rules: []domain.Rule{
			rules.NewExactCount(zero, size/2),
			rules.NewExactCount(one, size/2),
			rules.NewNoTriple(),
		},
	}
	return def, def.Validate()
}

// LatinSquare builds an n x n grid over digits 1..n where every row and
// column holds each digit once. n is capped by the domain size limit.
func LatinSquare(n int) (*domain.GameDefinition, error) {
	if n < 1 || n > 9 {
		return nil, fmt.Errorf("latin square size %d must be in [1,9]", n)
	}
	dom := make([]domain.CellContent, n)
	for i := range dom {
		dom[i] = domain.Number(i + 1)
	}
	def := &domain.GameDefinition{
		Name:   fmt.Sprintf("latin-%d", n),
		Domain: dom,
		MaxRow: n,
		MaxCol: n,
		Rules: []domain.Rule{
			rules.NewDistinctFromFound(),
			rules.NewUniqueInCollection(),
		},
	}
	return def, def.Validate()
}

// Sudoku4 is the 4x4 variant: a latin square over 1..4 with the four 2x2
// boxes as extra constraint scopes.
func Sudoku4() (*domain.GameDefinition, error) {
	def, err := LatinSquare(4)
	if err != nil {
		return nil, err
	}
	def.Name = "sudoku-4"
	for br := 0; br < 2; br++ {
		for bc := 0; bc < 2; bc++ {
			cc := domain.CoordinateCollection{Name: fmt.Sprintf("box %d,%d", br, bc)}
			for dr := 0; dr < 2; dr++ {
				for dc := 0; dc < 2; dc++ {
					cc.Coords = append(cc.Coords, domain.Coordinate{Row: br*2 + dr, Col: bc*2 + dc})
				}
			}
			def.Extra = append(def.Extra, cc)
		}
	}
	return def, def.Validate()
}

// Registry resolves definitions by name for the API layer. Definitions are
// built once and shared read-only across sessions.
type Registry struct {
	defs map[string]*domain.GameDefinition
}

// NewRegistry loads the standard catalog.
func NewRegistry() (*Registry, error) {
	reg := &Registry{defs: make(map[string]*domain.GameDefinition)}
	builders := []func() (*domain.GameDefinition, error){
		func() (*domain.GameDefinition, error) { return Takuzu(4) },
		func() (*domain.GameDefinition, error) { return Takuzu(6) },
		func() (*domain.GameDefinition, error) { return Takuzu(8) },
		func() (*domain.GameDefinition, error) { return LatinSquare(4) },
		func() (*domain.GameDefinition, error) { return LatinSquare(5) },
		Sudoku4,
	}
	for _, build := range builders {
		def, err := build()
		if err != nil {
			return nil, err
		}
		reg.defs[def.Name] = def
	}
	return reg, nil
}

// ByName returns the shared definition for name.
func (r *Registry) ByName(name string) (*domain.GameDefinition, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("unknown game %q", name)
	}
	return def, nil
}

// Names lists the catalog in stable order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.defs))
	for name := range r.defs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
