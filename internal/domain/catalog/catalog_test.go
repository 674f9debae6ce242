package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
)

func TestRecipes_FitTheirBuildingLayout(t *testing.T) {
	for _, kind := range catalog.AllKinds {
		spec := catalog.MustBuilding(kind)
		recipes := catalog.RecipesFor(kind)
		if !spec.UsesRecipe {
			assert.Empty(t, recipes, "%s should not have recipes", kind)
			continue
		}
		require.NotEmpty(t, recipes, "%s should have recipes", kind)

		for _, r := range recipes {
			assert.Greater(t, r.Duration, 0.0, r.ID)
			assert.LessOrEqual(t, len(r.MaterialInputs), spec.Layout.MaterialInputs, r.ID)
			assert.LessOrEqual(t, len(r.FluidInputs), spec.Layout.FluidInputs, r.ID)
			assert.LessOrEqual(t, len(r.MaterialOutputs), spec.Layout.MaterialOutputs, r.ID)
			assert.LessOrEqual(t, len(r.FluidOutputs), spec.Layout.FluidOutputs, r.ID)

			for _, ing := range append(r.MaterialInputs, r.MaterialOutputs...) {
				assert.True(t, ing.Resource.Material.Valid(), "%s uses unknown material %s", r.ID, ing.Resource)
				assert.False(t, ing.Resource.IsFluid(), r.ID)
			}
			for _, ing := range append(r.FluidInputs, r.FluidOutputs...) {
				assert.True(t, ing.Resource.Fluid.Valid(), "%s uses unknown fluid %s", r.ID, ing.Resource)
			}
		}
	}
}

func TestRecipe_PerMinuteRates(t *testing.T) {
	// Arrange
	ironIngot := catalog.MustRecipe(catalog.SmelterIronIngot)
	aiLimiter := catalog.MustRecipe(catalog.AssemblerAILimiter)

	// Assert
	assert.Equal(t, 30.0, ironIngot.InputPerMinute(0))
	assert.Equal(t, 30.0, ironIngot.OutputPerMinute(0))
	assert.Equal(t, 25.0, aiLimiter.InputPerMinute(0))
	assert.Equal(t, 100.0, aiLimiter.InputPerMinute(1))
	assert.Equal(t, 5.0, aiLimiter.OutputPerMinute(0))
}

func TestRecipe_PortNumberingPutsFluidsAfterMaterials(t *testing.T) {
	// Arrange
	packaged := catalog.MustRecipe(catalog.PackagerPackagedWater)

	// Act
	material, materialOK := packaged.InputResource(0)
	fluid, fluidOK := packaged.InputResource(1)
	out, outOK := packaged.OutputResource(0)
	_, fluidOutOK := packaged.OutputResource(1)

	// Assert
	require.True(t, materialOK)
	require.True(t, fluidOK)
	require.True(t, outOK)
	assert.Equal(t, catalog.MaterialResource(catalog.EmptyCanister), material)
	assert.Equal(t, catalog.FluidResource(catalog.Water), fluid)
	assert.Equal(t, catalog.MaterialResource(catalog.PackagedWater), out)
	assert.False(t, fluidOutOK, "packaged water leaves the fluid output unused")
}

func TestRecipe_OutOfRangePortPanics(t *testing.T) {
	ironIngot := catalog.MustRecipe(catalog.SmelterIronIngot)

	assert.PanicsWithError(t, "input port 1 out of range for Iron Ingot (has 1)", func() {
		ironIngot.InputResource(1)
	})
}

func TestParseRecipe(t *testing.T) {
	tests := []struct {
		name    string
		kind    catalog.BuildingKind
		input   string
		want    catalog.RecipeID
		wantErr string
	}{
		{"constant form", catalog.KindSmelter, "IRON_INGOT", catalog.SmelterIronIngot, ""},
		{"lower case", catalog.KindAssembler, "ai_limiter", catalog.AssemblerAILimiter, ""},
		{"unknown", catalog.KindSmelter, "unobtainium", "", "unknown recipe: unobtainium"},
		{"wrong building", catalog.KindConstructor, "iron_ingot", "", "recipe IRON_INGOT is made in SMELTER, not CONSTRUCTOR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := catalog.ParseRecipe(tt.kind, tt.input)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.ID)
		})
	}
}

func TestParseBuildingKind(t *testing.T) {
	kind, err := catalog.ParseBuildingKind("water-extractor")
	require.NoError(t, err)
	assert.Equal(t, catalog.KindWaterExtractor, kind)

	_, err = catalog.ParseBuildingKind("space elevator")
	var unknown *catalog.ErrUnknownBuildingKind
	assert.ErrorAs(t, err, &unknown)
}

func TestParseResource(t *testing.T) {
	r, ok := catalog.ParseResource("WATER")
	require.True(t, ok)
	assert.True(t, r.IsFluid())
	assert.Equal(t, "Water", r.Name())

	r, ok = catalog.ParseResource("IRON_ORE")
	require.True(t, ok)
	assert.False(t, r.IsFluid())

	_, ok = catalog.ParseResource("NOPE")
	assert.False(t, ok)
}

func TestTransportTiers(t *testing.T) {
	assert.Equal(t, 780.0, catalog.BeltMk5.Capacity())
	assert.Equal(t, 600.0, catalog.PipeMk2.Capacity())
	assert.Equal(t, 240.0, catalog.MinerMk3.BaseRate())
	assert.Equal(t, 0.5, catalog.PurityImpure.Multiplier())

	_, ok := catalog.ParseBeltTier("mk7")
	assert.False(t, ok)
}
