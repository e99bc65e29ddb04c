package resource

import (
	"fmt"
	"strings"
)

// BasicResourceType enumerates resources a planet generates directly from energy
type BasicResourceType string

const (
	Oxygen   BasicResourceType = "OXYGEN"
	Hydrogen BasicResourceType = "HYDROGEN"
	Carbon   BasicResourceType = "CARBON"
	Silicon  BasicResourceType = "SILICON"
)

// BasicResourceTypes lists every basic resource in declaration order
var BasicResourceTypes = []BasicResourceType{Oxygen, Hydrogen, Carbon, Silicon}

// ComplexResourceType enumerates resources produced by combining two others
type ComplexResourceType string

const (
	Water     ComplexResourceType = "WATER"
	Diamond   ComplexResourceType = "DIAMOND"
	Life      ComplexResourceType = "LIFE"
	Robot     ComplexResourceType = "ROBOT"
	Dolphin   ComplexResourceType = "DOLPHIN"
	AIPartner ComplexResourceType = "AI_PARTNER"
)

// ComplexResourceTypes lists every complex resource in declaration order
var ComplexResourceTypes = []ComplexResourceType{Water, Diamond, Life, Robot, Dolphin, AIPartner}

// ParseBasicResourceType converts a case-insensitive name into a BasicResourceType
func ParseBasicResourceType(name string) (BasicResourceType, error) {
	normalized := BasicResourceType(strings.ToUpper(strings.TrimSpace(name)))
	for _, t := range BasicResourceTypes {
		if t == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown basic resource: %q", name)
}

// ParseComplexResourceType converts a case-insensitive name into a ComplexResourceType.
// Both "ai_partner" and "aipartner" are accepted.
func ParseComplexResourceType(name string) (ComplexResourceType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if normalized == "AIPARTNER" {
		normalized = string(AIPartner)
	}
	for _, t := range ComplexResourceTypes {
		if string(t) == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown complex resource: %q", name)
}

// GenericResource is either a BasicResource or a ComplexResource
type GenericResource interface {
	Kind() string
	IsBasic() bool
	isGenericResource()
}

// BasicResource is one unit of a basic resource
type BasicResource struct {
	kind BasicResourceType
}

// NewBasicResource creates one unit of the given basic resource
func NewBasicResource(kind BasicResourceType) BasicResource {
	return BasicResource{kind: kind}
}

// Type returns the resource type
func (r BasicResource) Type() BasicResourceType { return r.kind }

// Kind returns the resource type name
func (r BasicResource) Kind() string { return string(r.kind) }

// IsBasic always returns true
func (r BasicResource) IsBasic() bool { return true }

func (r BasicResource) isGenericResource() {}

func (r BasicResource) String() string { return string(r.kind) }

// ComplexResource is one unit of a combined resource
type ComplexResource struct {
	kind ComplexResourceType
}

// NewComplexResource creates one unit of the given complex resource
func NewComplexResource(kind ComplexResourceType) ComplexResource {
	return ComplexResource{kind: kind}
}

// Type returns the resource type
func (r ComplexResource) Type() ComplexResourceType { return r.kind }

// Kind returns the resource type name
func (r ComplexResource) Kind() string { return string(r.kind) }

// IsBasic always returns false
func (r ComplexResource) IsBasic() bool { return false }

func (r ComplexResource) isGenericResource() {}

func (r ComplexResource) String() string { return string(r.kind) }
