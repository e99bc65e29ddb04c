package resource

import "fmt"

// complexRecipes maps each complex resource to the kinds of its two operands, in order
var complexRecipes = map[ComplexResourceType][2]string{
	Water:     {string(Hydrogen), string(Oxygen)},
	Diamond:   {string(Carbon), string(Carbon)},
	Life:      {string(Water), string(Carbon)},
	Robot:     {string(Silicon), string(Life)},
	Dolphin:   {string(Water), string(Life)},
	AIPartner: {string(Robot), string(Diamond)},
}

// RecipeOperands returns the operand kinds required to build target
func RecipeOperands(target ComplexResourceType) (left, right string, ok bool) {
	operands, ok := complexRecipes[target]
	if !ok {
		return "", "", false
	}
	return operands[0], operands[1], true
}

// ComplexResourceRequest asks a planet to combine two resources into target.
// The operands are owned by the request and handed back on rejection.
type ComplexResourceRequest struct {
	target ComplexResourceType
	left   GenericResource
	right  GenericResource
}

// NewComplexResourceRequest builds a request after checking that the operand kinds
// match the recipe for target
func NewComplexResourceRequest(target ComplexResourceType, left, right GenericResource) (ComplexResourceRequest, error) {
	wantLeft, wantRight, ok := RecipeOperands(target)
	if !ok {
		return ComplexResourceRequest{}, fmt.Errorf("unknown complex resource: %s", target)
	}
	if left == nil || right == nil {
		return ComplexResourceRequest{}, fmt.Errorf("%s request requires two operands", target)
	}
	if left.Kind() != wantLeft || right.Kind() != wantRight {
		return ComplexResourceRequest{}, fmt.Errorf(
			"%s requires (%s, %s), got (%s, %s)",
			target, wantLeft, wantRight, left.Kind(), right.Kind(),
		)
	}
	return ComplexResourceRequest{target: target, left: left, right: right}, nil
}

func NewWaterRequest(h, o BasicResource) ComplexResourceRequest {
	return ComplexResourceRequest{target: Water, left: h, right: o}
}

func NewDiamondRequest(c1, c2 BasicResource) ComplexResourceRequest {
	return ComplexResourceRequest{target: Diamond, left: c1, right: c2}
}

func NewLifeRequest(w ComplexResource, c BasicResource) ComplexResourceRequest {
	return ComplexResourceRequest{target: Life, left: w, right: c}
}

func NewRobotRequest(s BasicResource, l ComplexResource) ComplexResourceRequest {
	return ComplexResourceRequest{target: Robot, left: s, right: l}
}

func NewDolphinRequest(w, l ComplexResource) ComplexResourceRequest {
	return ComplexResourceRequest{target: Dolphin, left: w, right: l}
}

func NewAIPartnerRequest(r, d ComplexResource) ComplexResourceRequest {
	return ComplexResourceRequest{target: AIPartner, left: r, right: d}
}

// Target returns the resource the request wants to produce
func (r ComplexResourceRequest) Target() ComplexResourceType {
	return r.target
}

// Operands decomposes the request into its two logical inputs.
// It never validates whether the combination is possible.
func (r ComplexResourceRequest) Operands() (GenericResource, GenericResource) {
	return r.left, r.right
}

func (r ComplexResourceRequest) String() string {
	left, right := "<nil>", "<nil>"
	if r.left != nil {
		left = r.left.Kind()
	}
	if r.right != nil {
		right = r.right.Kind()
	}
	return fmt.Sprintf("%s(%s, %s)", r.target, left, right)
}

// ParseResource converts a resource name into a BasicResource or ComplexResource
func ParseResource(name string) (GenericResource, error) {
	if basic, err := ParseBasicResourceType(name); err == nil {
		return NewBasicResource(basic), nil
	}
	if complexKind, err := ParseComplexResourceType(name); err == nil {
		return NewComplexResource(complexKind), nil
	}
	return nil, fmt.Errorf("unknown resource: %q", name)
}

// NewRecipeRequest builds a request for target holding one unit of each operand the recipe needs
func NewRecipeRequest(target ComplexResourceType) (ComplexResourceRequest, error) {
	leftKind, rightKind, ok := RecipeOperands(target)
	if !ok {
		return ComplexResourceRequest{}, fmt.Errorf("unknown complex resource: %s", target)
	}
	left, err := ParseResource(leftKind)
	if err != nil {
		return ComplexResourceRequest{}, err
	}
	right, err := ParseResource(rightKind)
	if err != nil {
		return ComplexResourceRequest{}, err
	}
	return NewComplexResourceRequest(target, left, right)
}
