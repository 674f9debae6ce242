package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/flow"
)

func ptr(v float64) *float64 { return &v }

func TestThroughputFactor_StarvationGate(t *testing.T) {
	// A required port at exactly zero starves the recipe even when the other is oversupplied
	factor := flow.ThroughputFactor(12, []float64{5, 20}, []float64{0, 1000})

	assert.Equal(t, 0.0, factor)
}

func TestThroughputFactor_UnusedPortsAreIgnored(t *testing.T) {
	factor := flow.ThroughputFactor(2, []float64{1, 0}, []float64{30, 0})

	assert.Equal(t, 1.0, factor)
}

func TestThroughputFactor_LimitedByScarcestInput(t *testing.T) {
	// AI limiter needs 25/min and 100/min; the second port only gets half
	factor := flow.ThroughputFactor(12, []float64{5, 20}, []float64{25, 50})

	assert.InDelta(t, 0.5, factor, 1e-9)
}

func TestRecipeOutputs(t *testing.T) {
	ironIngot := catalog.MustRecipe(catalog.SmelterIronIngot)
	aiLimiter := catalog.MustRecipe(catalog.AssemblerAILimiter)

	tests := []struct {
		name      string
		recipe    *catalog.Recipe
		inputs    []float64
		speed     float64
		amplifier float64
		want      float64
	}{
		{"nominal supply", &ironIngot, []float64{30}, 100, 1, 30},
		{"saturated at max", &ironIngot, []float64{60}, 100, 1, 30},
		{"half supply", &ironIngot, []float64{15}, 100, 1, 15},
		{"starved", &aiLimiter, []float64{0, 0}, 100, 1, 0},
		{"fully supplied two inputs", &aiLimiter, []float64{25, 100}, 100, 1, 5},
		{"overclocked", &ironIngot, []float64{75}, 250, 1, 75},
		{"amplified", &ironIngot, []float64{30}, 100, 2, 60},
		{"no recipe", nil, []float64{30}, 100, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputs := flow.RecipeOutputs(tt.recipe, 1, tt.inputs, tt.speed, tt.amplifier)
			assert.Equal(t, []float64{tt.want}, outputs)
		})
	}
}

func TestRecipeOutputs_FluidOutputUnusedStaysZero(t *testing.T) {
	packaged := catalog.MustRecipe(catalog.PackagerPackagedWater)

	outputs := flow.RecipeOutputs(&packaged, 2, []float64{60, 60}, 100, 1)

	assert.Equal(t, []float64{60, 0}, outputs)
}

func TestMaxOutputs_MatchesFullySuppliedRecipeOutputs(t *testing.T) {
	for _, kind := range catalog.AllKinds {
		for _, r := range catalog.RecipesFor(kind) {
			r := r
			layout := r.Layout()
			oversupplied := make([]float64, layout.Inputs())
			for port := range oversupplied {
				oversupplied[port] = 2 * r.InputPerMinute(port)
			}
			outputs := flow.RecipeOutputs(&r, layout.Outputs(), oversupplied, 100, 1)
			assert.Equal(t, flow.MaxOutputs(&r, layout.Outputs(), 100, 1), outputs, r.ID)
		}
	}
}

func TestAmplifierFactor(t *testing.T) {
	assert.Equal(t, 1.0, flow.AmplifierFactor(0, 4))
	assert.Equal(t, 1.5, flow.AmplifierFactor(2, 4))
	assert.Equal(t, 2.0, flow.AmplifierFactor(4, 4))
	assert.Equal(t, 2.0, flow.AmplifierFactor(9, 4))
	assert.Equal(t, 1.0, flow.AmplifierFactor(3, 0))
}

func TestAmplifierFactor_IsMonotonic(t *testing.T) {
	ironIngot := catalog.MustRecipe(catalog.SmelterIronIngot)
	previous := 0.0
	for occupied := 0; occupied <= 4; occupied++ {
		out := flow.MaxOutputs(&ironIngot, 1, 100, flow.AmplifierFactor(occupied, 4))[0]
		assert.GreaterOrEqual(t, out, previous)
		previous = out
	}
}

func TestExtractorOutput(t *testing.T) {
	assert.Equal(t, 0.0, flow.ExtractorOutput(60, catalog.PurityNormal, 100, nil), "no belt means no output")
	assert.Equal(t, 60.0, flow.ExtractorOutput(60, catalog.PurityNormal, 100, ptr(780)))
	assert.Equal(t, 30.0, flow.ExtractorOutput(60, catalog.PurityImpure, 100, ptr(780)))
	assert.Equal(t, 60.0, flow.ExtractorOutput(240, catalog.PurityPure, 250, ptr(60)), "clamped to belt capacity")
}

func TestSplit(t *testing.T) {
	assert.Equal(t, 30.0, flow.Split(90, 3))
	assert.Equal(t, 45.0, flow.Split(90, 2))
	assert.Equal(t, 33.0, flow.Split(100, 3))
	assert.Equal(t, 0.0, flow.Split(90, 0))
}

func TestMerge(t *testing.T) {
	iron := catalog.MaterialResource(catalog.IronOre)
	copper := catalog.MaterialResource(catalog.CopperOre)

	t.Run("same resource sums", func(t *testing.T) {
		result := flow.Merge([]*catalog.Input{
			{Speed: 30, Resource: iron}, nil, {Speed: 15, Resource: iron},
		})
		assert.Equal(t, flow.MergeResult{Resource: iron, Speed: 45, Valid: true}, result)
	})

	t.Run("mismatch flagged and excluded", func(t *testing.T) {
		result := flow.Merge([]*catalog.Input{
			{Speed: 30, Resource: iron}, {Speed: 20, Resource: copper},
		})
		assert.False(t, result.Valid)
		assert.Equal(t, 30.0, result.Speed)
		assert.Equal(t, iron, result.Resource)
	})

	t.Run("nothing connected", func(t *testing.T) {
		result := flow.Merge([]*catalog.Input{nil, nil})
		assert.True(t, result.Empty)
		assert.True(t, result.Valid)
	})
}

func TestMaxInputs(t *testing.T) {
	aiLimiter := catalog.MustRecipe(catalog.AssemblerAILimiter)

	assert.Equal(t, []float64{25, 100}, flow.MaxInputs(&aiLimiter, 2, 100))
	assert.Equal(t, []float64{50, 200}, flow.MaxInputs(&aiLimiter, 2, 200))
}

func TestRound_HalfUp(t *testing.T) {
	assert.Equal(t, 3.0, flow.Round(2.5))
	assert.Equal(t, 2.0, flow.Round(2.49))
	assert.Equal(t, 0.0, flow.Round(0))
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 0.0, flow.ClampSpeed(-10))
	assert.Equal(t, 250.0, flow.ClampSpeed(300))
	assert.Equal(t, 150.0, flow.ClampSpeed(150))
}

func TestPowerDraw(t *testing.T) {
	assert.InDelta(t, 4.0, flow.PowerDraw(4, 100, 1), 1e-9)
	assert.InDelta(t, 13.43, flow.PowerDraw(4, 250, 1), 0.01)
	assert.InDelta(t, 16.0, flow.PowerDraw(4, 100, 2), 1e-9)
	assert.Equal(t, 0.0, flow.PowerDraw(4, 0, 1))
}
