package planet

import (
	"fmt"
	"strings"
)

// PlanetType selects the structural constraints of a planet
type PlanetType string

const (
	PlanetTypeA PlanetType = "A"
	PlanetTypeB PlanetType = "B"
	PlanetTypeC PlanetType = "C"
	PlanetTypeD PlanetType = "D"
)

// Unbounded marks a recipe limit without an upper bound
const Unbounded = -1

// TypeRules describes what a planet type may hold
type TypeRules struct {
	EnergyCells    int
	CanHaveRocket  bool
	MaxGeneration  int
	MaxCombination int
}

var typeRules = map[PlanetType]TypeRules{
	PlanetTypeA: {EnergyCells: 5, CanHaveRocket: true, MaxGeneration: Unbounded, MaxCombination: 0},
	PlanetTypeB: {EnergyCells: 1, CanHaveRocket: false, MaxGeneration: 1, MaxCombination: 1},
	PlanetTypeC: {EnergyCells: 1, CanHaveRocket: true, MaxGeneration: 1, MaxCombination: 6},
	PlanetTypeD: {EnergyCells: 5, CanHaveRocket: false, MaxGeneration: Unbounded, MaxCombination: 0},
}

// ParsePlanetType converts "a", "A", "type_a" and similar into a PlanetType
func ParsePlanetType(name string) (PlanetType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	normalized = strings.TrimPrefix(normalized, "TYPE_")
	t := PlanetType(normalized)
	if _, ok := typeRules[t]; !ok {
		return "", fmt.Errorf("unknown planet type: %q", name)
	}
	return t, nil
}

// Rules returns the constraints for the type. Unknown types get zero rules.
func (t PlanetType) Rules() TypeRules {
	return typeRules[t]
}

// ValidateCatalogs checks recipe counts against the type's limits
func (t PlanetType) ValidateCatalogs(generation, combination int) error {
	rules, ok := typeRules[t]
	if !ok {
		return fmt.Errorf("unknown planet type: %q", string(t))
	}
	if rules.MaxGeneration != Unbounded && generation > rules.MaxGeneration {
		return fmt.Errorf("planet type %s supports at most %d generation recipes, got %d",
			t, rules.MaxGeneration, generation)
	}
	if rules.MaxCombination != Unbounded && combination > rules.MaxCombination {
		return fmt.Errorf("planet type %s supports at most %d combination recipes, got %d",
			t, rules.MaxCombination, combination)
	}
	return nil
}
