package plan_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplan-go/internal/domain/building"
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/graph"
	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
	"github.com/andrescamacho/factoryplan-go/internal/domain/shared"
)

func speed(v float64) *float64 { return &v }

func TestNewDocument_UsesClock(t *testing.T) {
	// Arrange
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := shared.NewMockClock(start)

	// Act
	doc := plan.NewDocument("iron-1a2b3c4d", "iron", clock)
	clock.Advance(time.Hour)
	doc.Touch(clock)

	// Assert
	assert.Equal(t, start, doc.CreatedAt)
	assert.Equal(t, start.Add(time.Hour), doc.UpdatedAt)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		doc      plan.Document
		problems int
	}{
		{
			name: "valid",
			doc: plan.Document{
				Name:        "ok",
				Buildings:   []plan.BuildingSpec{{ID: "a", Kind: "miner"}, {ID: "b", Kind: "smelter"}},
				Connections: []plan.ConnectionSpec{{From: "a", To: "b"}},
			},
		},
		{
			name:     "missing name",
			doc:      plan.Document{},
			problems: 1,
		},
		{
			name: "duplicate building",
			doc: plan.Document{
				Name:      "dup",
				Buildings: []plan.BuildingSpec{{ID: "a", Kind: "miner"}, {ID: "a", Kind: "miner"}},
			},
			problems: 1,
		},
		{
			name: "speed out of range",
			doc: plan.Document{
				Name:      "fast",
				Buildings: []plan.BuildingSpec{{ID: "a", Kind: "smelter", Speed: speed(300)}},
			},
			problems: 1,
		},
		{
			name: "dangling connection",
			doc: plan.Document{
				Name:        "dangling",
				Buildings:   []plan.BuildingSpec{{ID: "a", Kind: "miner"}},
				Connections: []plan.ConnectionSpec{{From: "x", To: "y", Input: -1}},
			},
			problems: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()

			if tt.problems == 0 {
				assert.NoError(t, err)
				return
			}
			var invalid *plan.ErrInvalidDocument
			require.ErrorAs(t, err, &invalid)
			assert.Len(t, invalid.Problems, tt.problems, invalid.Problems)
		})
	}
}

func TestNewBuilding_Configures(t *testing.T) {
	// Act
	b, err := plan.NewBuilding(plan.BuildingSpec{
		ID: "c", Kind: "constructor", Recipe: "iron-plate", Speed: speed(150), Amplifiers: 1,
	})

	// Assert
	require.NoError(t, err)
	c := b.(building.Configurable)
	assert.Equal(t, catalog.ConstructorIronPlate, c.Recipe().ID)
	assert.Equal(t, 150.0, c.Speed())
	assert.Equal(t, 1, c.Amplifiers())
}

func TestNewBuilding_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec plan.BuildingSpec
	}{
		{"unknown kind", plan.BuildingSpec{ID: "x", Kind: "space_elevator"}},
		{"recipe of another building", plan.BuildingSpec{ID: "x", Kind: "smelter", Recipe: "iron_plate"}},
		{"too many amplifiers", plan.BuildingSpec{ID: "x", Kind: "smelter", Amplifiers: 2}},
		{"miner on water", plan.BuildingSpec{ID: "x", Kind: "miner", Resource: "water"}},
		{"unknown purity", plan.BuildingSpec{ID: "x", Kind: "miner", Purity: "shiny"}},
		{"unknown belt", plan.BuildingSpec{ID: "x", Kind: "storage_container", Belt: "mk9"}},
		{"fluid in storage", plan.BuildingSpec{ID: "x", Kind: "storage_container", Resource: "water"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := plan.NewBuilding(tt.spec)

			var specErr *plan.ErrBuildingSpec
			require.ErrorAs(t, err, &specErr)
			assert.Equal(t, "x", specErr.ID)
		})
	}
}

func TestDescribe_RoundTrips(t *testing.T) {
	specs := []plan.BuildingSpec{
		{ID: "m", Kind: "miner", Resource: "iron_ore", Purity: "pure", Tier: "mk2", Belt: "mk3", Speed: speed(100)},
		{ID: "w", Kind: "water_extractor", Resource: "water", Purity: "normal", Pipe: "mk1", Speed: speed(80)},
		{ID: "s", Kind: "smelter", Recipe: "iron_ingot", Speed: speed(120), Amplifiers: 1},
		{ID: "box", Kind: "storage_container", Resource: "iron_plate", Belt: "mk2"},
		{ID: "split", Kind: "splitter"},
	}

	for _, spec := range specs {
		t.Run(spec.ID, func(t *testing.T) {
			b, err := plan.NewBuilding(spec)
			require.NoError(t, err)

			described := plan.Describe(spec.ID, b)

			rebuilt, err := plan.NewBuilding(described)
			require.NoError(t, err)
			assert.Equal(t, described, plan.Describe(spec.ID, rebuilt))
			assert.Equal(t, spec.Kind, described.Kind)
		})
	}
}

func TestFillTransport(t *testing.T) {
	doc := plan.Document{Buildings: []plan.BuildingSpec{
		{ID: "m", Kind: "miner"},
		{ID: "m2", Kind: "miner", Belt: "mk5"},
		{ID: "w", Kind: "water_extractor"},
		{ID: "s", Kind: "smelter"},
		{ID: "?", Kind: "space_elevator"},
	}}

	doc.FillTransport("mk2", "mk1")

	assert.Equal(t, "mk2", doc.Buildings[0].Belt)
	assert.Equal(t, "mk5", doc.Buildings[1].Belt)
	assert.Equal(t, "mk1", doc.Buildings[2].Pipe)
	assert.Empty(t, doc.Buildings[3].Belt)
	assert.Empty(t, doc.Buildings[4].Belt)
}

type recordingTarget struct {
	buildings []string
	wires     int
}

func (r *recordingTarget) AddBuilding(editorID string, _ building.Building) (graph.NodeID, error) {
	r.buildings = append(r.buildings, editorID)
	return graph.NodeID(len(r.buildings)), nil
}

func (r *recordingTarget) Connect(string, int, string, int) (graph.EdgeID, error) {
	r.wires++
	return graph.EdgeID(r.wires), nil
}

func TestApply_BadPortLeavesTargetUntouched(t *testing.T) {
	// Arrange - the second connection names a smelter input that does not exist
	doc := &plan.Document{
		Name: "iron",
		Buildings: []plan.BuildingSpec{
			{ID: "miner", Kind: "miner", Resource: "iron_ore", Belt: "mk1"},
			{ID: "smelter", Kind: "smelter", Recipe: "iron_ingot"},
		},
		Connections: []plan.ConnectionSpec{
			{From: "miner", To: "smelter"},
			{From: "miner", To: "smelter", Input: 2},
		},
	}
	target := &recordingTarget{}

	// Act
	err := plan.Apply(doc, target)

	// Assert
	var outOfRange *catalog.PortOutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, catalog.PortInput, outOfRange.Direction)
	assert.Equal(t, 2, outOfRange.Port)
	assert.Empty(t, target.buildings)
	assert.Zero(t, target.wires)
}

func TestApply_AddsBuildingsThenConnections(t *testing.T) {
	doc := &plan.Document{
		Name: "iron",
		Buildings: []plan.BuildingSpec{
			{ID: "miner", Kind: "miner", Resource: "iron_ore", Belt: "mk1"},
			{ID: "smelter", Kind: "smelter", Recipe: "iron_ingot"},
		},
		Connections: []plan.ConnectionSpec{{From: "miner", To: "smelter"}},
	}
	target := &recordingTarget{}

	require.NoError(t, plan.Apply(doc, target))

	assert.Equal(t, []string{"miner", "smelter"}, target.buildings)
	assert.Equal(t, 1, target.wires)
}
