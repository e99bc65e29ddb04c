package resource_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/trip-go/internal/domain/energy"
	"github.com/andrescamacho/trip-go/internal/domain/resource"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

func chargedCell() *energy.EnergyCell {
	cell := energy.NewEnergyCell()
	cell.Charge(energy.NewSunray())
	return cell
}

func TestParseResourceTypes(t *testing.T) {
	basic, err := resource.ParseBasicResourceType(" oxygen ")
	require.NoError(t, err)
	assert.Equal(t, resource.Oxygen, basic)

	complexKind, err := resource.ParseComplexResourceType("aipartner")
	require.NoError(t, err)
	assert.Equal(t, resource.AIPartner, complexKind)

	_, err = resource.ParseBasicResourceType("plutonium")
	assert.Error(t, err)
	_, err = resource.ParseComplexResourceType("unobtainium")
	assert.Error(t, err)
}

func TestGenerator_MakeOxygenConsumesCharge(t *testing.T) {
	// Arrange
	gen := resource.NewGenerator(resource.Oxygen)
	cell := chargedCell()

	// Act
	oxygen, err := gen.MakeOxygen(cell)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, resource.Oxygen, oxygen.Type())
	assert.False(t, cell.IsCharged())
}

func TestGenerator_MakeFailsWithoutTouchingCell(t *testing.T) {
	t.Run("unsupported recipe", func(t *testing.T) {
		gen := resource.NewGenerator(resource.Oxygen)
		cell := chargedCell()

		_, err := gen.Make(resource.Carbon, cell)

		var unsupported *shared.UnsupportedRecipeError
		require.True(t, errors.As(err, &unsupported))
		assert.Equal(t, "CARBON", unsupported.Recipe)
		assert.True(t, cell.IsCharged())
	})

	t.Run("empty cell", func(t *testing.T) {
		gen := resource.NewGenerator(resource.Oxygen)

		_, err := gen.MakeOxygen(energy.NewEnergyCell())

		var notCharged *shared.CellNotChargedError
		assert.True(t, errors.As(err, &notCharged))
	})

	t.Run("nil cell", func(t *testing.T) {
		_, err := resource.NewGenerator(resource.Oxygen).MakeOxygen(nil)
		assert.Error(t, err)
	})
}

func TestGenerator_AllAvailableRecipesSorted(t *testing.T) {
	gen := resource.NewGenerator(resource.Silicon, resource.Carbon)
	require.NoError(t, gen.AddRecipe(resource.Oxygen))

	assert.Equal(t,
		[]resource.BasicResourceType{resource.Carbon, resource.Oxygen, resource.Silicon},
		gen.AllAvailableRecipes())
	assert.Error(t, gen.AddRecipe("PLUTONIUM"))
}

func TestCombinator_AllAvailableRecipes(t *testing.T) {
	comb := resource.NewCombinator(resource.Water)
	require.NoError(t, comb.AddRecipe(resource.Diamond))

	assert.Equal(t, []resource.ComplexResourceType{resource.Diamond, resource.Water}, comb.AllAvailableRecipes())
	assert.True(t, comb.Contains(resource.Water))
	assert.False(t, comb.Contains(resource.Life))
	assert.Empty(t, resource.NewCombinator().AllAvailableRecipes())
}

func TestComplexResourceRequest_Operands(t *testing.T) {
	h := resource.NewBasicResource(resource.Hydrogen)
	o := resource.NewBasicResource(resource.Oxygen)
	c := resource.NewBasicResource(resource.Carbon)
	s := resource.NewBasicResource(resource.Silicon)
	w := resource.NewComplexResource(resource.Water)
	l := resource.NewComplexResource(resource.Life)
	r := resource.NewComplexResource(resource.Robot)
	d := resource.NewComplexResource(resource.Diamond)

	tests := []struct {
		name      string
		request   resource.ComplexResourceRequest
		wantLeft  string
		wantRight string
	}{
		{"water", resource.NewWaterRequest(h, o), "HYDROGEN", "OXYGEN"},
		{"diamond", resource.NewDiamondRequest(c, c), "CARBON", "CARBON"},
		{"life", resource.NewLifeRequest(w, c), "WATER", "CARBON"},
		{"robot", resource.NewRobotRequest(s, l), "SILICON", "LIFE"},
		{"dolphin", resource.NewDolphinRequest(w, l), "WATER", "LIFE"},
		{"ai partner", resource.NewAIPartnerRequest(r, d), "ROBOT", "DIAMOND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := tt.request.Operands()
			assert.Equal(t, tt.wantLeft, left.Kind())
			assert.Equal(t, tt.wantRight, right.Kind())

			wantLeft, wantRight, ok := resource.RecipeOperands(tt.request.Target())
			require.True(t, ok)
			assert.Equal(t, wantLeft, left.Kind())
			assert.Equal(t, wantRight, right.Kind())
		})
	}
}

func TestNewComplexResourceRequest_Validation(t *testing.T) {
	h := resource.NewBasicResource(resource.Hydrogen)
	o := resource.NewBasicResource(resource.Oxygen)

	req, err := resource.NewComplexResourceRequest(resource.Water, h, o)
	require.NoError(t, err)
	assert.Equal(t, "WATER(HYDROGEN, OXYGEN)", req.String())

	_, err = resource.NewComplexResourceRequest(resource.Water, o, h)
	assert.Error(t, err)

	_, err = resource.NewComplexResourceRequest(resource.Water, h, nil)
	assert.Error(t, err)

	_, err = resource.NewComplexResourceRequest("PLASMA", h, o)
	assert.Error(t, err)
}

func TestLoadCatalogs(t *testing.T) {
	input := `
generation: [oxygen, Hydrogen]
combination: [water, ai_partner]
`
	gen, comb, err := resource.LoadCatalogs(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []resource.BasicResourceType{resource.Hydrogen, resource.Oxygen}, gen.AllAvailableRecipes())
	assert.Equal(t, []resource.ComplexResourceType{resource.AIPartner, resource.Water}, comb.AllAvailableRecipes())
}

func TestLoadCatalogs_Errors(t *testing.T) {
	_, _, err := resource.LoadCatalogs(strings.NewReader("generation: [plutonium]"))
	assert.Error(t, err)

	_, _, err = resource.LoadCatalogs(strings.NewReader("unknown_key: true"))
	assert.Error(t, err)

	gen, comb, err := resource.LoadCatalogs(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, gen.Len())
	assert.Zero(t, comb.Len())
}

func TestNilCatalogsBehaveAsEmpty(t *testing.T) {
	var gen *resource.Generator
	var comb *resource.Combinator

	assert.Empty(t, gen.AllAvailableRecipes())
	assert.False(t, gen.Contains(resource.Oxygen))
	assert.Zero(t, comb.Len())
	assert.Empty(t, comb.AllAvailableRecipes())

	_, err := gen.MakeOxygen(chargedCell())
	assert.Error(t, err)
}

func TestNewRecipeRequest_EveryComplexResource(t *testing.T) {
	for _, target := range resource.ComplexResourceTypes {
		t.Run(string(target), func(t *testing.T) {
			req, err := resource.NewRecipeRequest(target)
			require.NoError(t, err)

			wantLeft, wantRight, ok := resource.RecipeOperands(target)
			require.True(t, ok)
			left, right := req.Operands()
			assert.Equal(t, target, req.Target())
			assert.Equal(t, wantLeft, left.Kind())
			assert.Equal(t, wantRight, right.Kind())
		})
	}
}

func TestParseResource(t *testing.T) {
	basic, err := resource.ParseResource("oxygen")
	require.NoError(t, err)
	assert.True(t, basic.IsBasic())

	complexRes, err := resource.ParseResource("ai_partner")
	require.NoError(t, err)
	assert.False(t, complexRes.IsBasic())

	_, err = resource.ParseResource("plutonium")
	assert.Error(t, err)
}
