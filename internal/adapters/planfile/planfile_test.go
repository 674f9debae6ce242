package planfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplan-go/internal/adapters/planfile"
	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
)

const ironPlates = `
variable "speed" {
  default = 150
}

variable "belt" {
  default = "mk2"
}

description = "one miner feeding a smelter"

building "miner" {
  kind     = "miner"
  resource = "iron_ore"
  purity   = "pure"
  belt     = var.belt
  speed    = var.speed
}

building "smelter" {
  kind       = "smelter"
  recipe     = "iron_ingot"
  amplifiers = 1
}

connection {
  from = "miner"
  to   = "smelter"
}
`

func float(v float64) *float64 { return &v }

func TestParse_ResolvesVariables(t *testing.T) {
	// Act
	doc, err := planfile.Parse([]byte(ironPlates), "iron-plates.hcl", nil)

	// Assert
	require.NoError(t, err)
	want := &plan.Document{
		Name:        "iron-plates",
		Description: "one miner feeding a smelter",
		Buildings: []plan.BuildingSpec{
			{ID: "miner", Kind: "miner", Resource: "iron_ore", Purity: "pure", Belt: "mk2", Speed: float(150)},
			{ID: "smelter", Kind: "smelter", Recipe: "iron_ingot", Amplifiers: 1},
		},
		Connections: []plan.ConnectionSpec{{From: "miner", Output: 0, To: "smelter", Input: 0}},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, doc.Validate())
}

func TestParse_OverridesConvertToDefaultType(t *testing.T) {
	doc, err := planfile.Parse([]byte(ironPlates), "iron.hcl", map[string]string{"speed": "80", "belt": "mk1"})

	require.NoError(t, err)
	assert.Equal(t, 80.0, *doc.Buildings[0].Speed)
	assert.Equal(t, "mk1", doc.Buildings[0].Belt)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		overrides map[string]string
		contains  string
	}{
		{
			name:     "syntax",
			src:      `building "a" {`,
			contains: "failed to parse",
		},
		{
			name:     "missing kind",
			src:      `building "a" {}`,
			contains: "kind",
		},
		{
			name:      "undeclared override",
			src:       ironPlates,
			overrides: map[string]string{"tier": "mk3"},
			contains:  "undeclared variables: tier",
		},
		{
			name:      "override of wrong type",
			src:       ironPlates,
			overrides: map[string]string{"speed": "fast"},
			contains:  `variable "speed"`,
		},
		{
			name:     "variable without value",
			src:      `variable "x" {}`,
			contains: `variable "x" has no default`,
		},
		{
			name:     "unknown variable reference",
			src:      "building \"a\" {\n  kind = var.kind\n}\n",
			contains: "failed to decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := planfile.Parse([]byte(tt.src), "broken.hcl", tt.overrides)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestEncode_RoundTrips(t *testing.T) {
	// Arrange
	original, err := planfile.Parse([]byte(ironPlates), "iron.hcl", nil)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "exported.hcl")

	// Act
	require.NoError(t, planfile.Write(path, original))
	reloaded, err := planfile.Load(path, nil)

	// Assert
	require.NoError(t, err)
	if diff := cmp.Diff(original, reloaded, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `building "miner"`)
	assert.NotContains(t, string(data), "var.")
}

func TestParseOverrides(t *testing.T) {
	overrides, err := planfile.ParseOverrides([]string{"speed=200", "name = iron=plates"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"speed": "200", "name": " iron=plates"}, overrides)

	_, err = planfile.ParseOverrides([]string{"speed"})
	assert.Error(t, err)
}
