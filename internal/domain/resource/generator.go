package resource

import (
	"sort"

	"github.com/andrescamacho/trip-go/internal/domain/energy"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// Generator is the catalog of basic resources a planet can synthesize from a charged cell.
// Once handed to a planet it is only read; Make mutates the cell, never the catalog.
// A nil *Generator behaves as an empty catalog.
type Generator struct {
	recipes map[BasicResourceType]struct{}
}

// NewGenerator creates a generator that knows the given recipes
func NewGenerator(recipes ...BasicResourceType) *Generator {
	g := &Generator{recipes: make(map[BasicResourceType]struct{})}
	for _, r := range recipes {
		g.recipes[r] = struct{}{}
	}
	return g
}

// AddRecipe registers a basic resource recipe
func (g *Generator) AddRecipe(kind BasicResourceType) error {
	if _, err := ParseBasicResourceType(string(kind)); err != nil {
		return shared.NewValidationError("generation", err.Error())
	}
	g.recipes[kind] = struct{}{}
	return nil
}

// Contains reports whether the generator can produce kind
func (g *Generator) Contains(kind BasicResourceType) bool {
	if g == nil {
		return false
	}
	_, ok := g.recipes[kind]
	return ok
}

// Len returns the number of known recipes
func (g *Generator) Len() int {
	if g == nil {
		return 0
	}
	return len(g.recipes)
}

// AllAvailableRecipes returns the known recipes sorted by name
func (g *Generator) AllAvailableRecipes() []BasicResourceType {
	if g == nil {
		return []BasicResourceType{}
	}
	list := make([]BasicResourceType, 0, len(g.recipes))
	for r := range g.recipes {
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// Make consumes the cell's charge and produces one unit of kind.
// On error the cell is left untouched.
func (g *Generator) Make(kind BasicResourceType, cell *energy.EnergyCell) (BasicResource, error) {
	if !g.Contains(kind) {
		return BasicResource{}, shared.NewUnsupportedRecipeError(string(kind))
	}
	if cell == nil {
		return BasicResource{}, shared.NewCellNotChargedError(-1)
	}
	if err := cell.Discharge(); err != nil {
		return BasicResource{}, err
	}
	return NewBasicResource(kind), nil
}

// MakeOxygen is Make for the oxygen recipe
func (g *Generator) MakeOxygen(cell *energy.EnergyCell) (BasicResource, error) {
	return g.Make(Oxygen, cell)
}
