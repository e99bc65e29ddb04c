package resource

import (
	"sort"

	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// Combinator is the catalog of complex resources a planet advertises.
// It only enumerates recipes; combination itself is performed elsewhere.
type Combinator struct {
	recipes map[ComplexResourceType]struct{}
}

// NewCombinator creates a combinator that knows the given recipes
func NewCombinator(recipes ...ComplexResourceType) *Combinator {
	c := &Combinator{recipes: make(map[ComplexResourceType]struct{})}
	for _, r := range recipes {
		c.recipes[r] = struct{}{}
	}
	return c
}

// AddRecipe registers a complex resource recipe
func (c *Combinator) AddRecipe(kind ComplexResourceType) error {
	if _, err := ParseComplexResourceType(string(kind)); err != nil {
		return shared.NewValidationError("combination", err.Error())
	}
	c.recipes[kind] = struct{}{}
	return nil
}

// Contains reports whether kind is advertised
func (c *Combinator) Contains(kind ComplexResourceType) bool {
	if c == nil {
		return false
	}
	_, ok := c.recipes[kind]
	return ok
}

// Len returns the number of known recipes
func (c *Combinator) Len() int {
	if c == nil {
		return 0
	}
	return len(c.recipes)
}

// AllAvailableRecipes returns the known recipes sorted by name
func (c *Combinator) AllAvailableRecipes() []ComplexResourceType {
	if c == nil {
		return []ComplexResourceType{}
	}
	list := make([]ComplexResourceType, 0, len(c.recipes))
	for r := range c.recipes {
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}
