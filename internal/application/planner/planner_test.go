package planner_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplan-go/internal/application/mediator"
	"github.com/andrescamacho/factoryplan-go/internal/application/planner"
	"github.com/andrescamacho/factoryplan-go/internal/domain/building"
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/graph"
	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
)

type recordingObserver struct {
	mu      sync.Mutex
	results []graph.PropagationResult
}

func (o *recordingObserver) ObservePropagation(result graph.PropagationResult) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.results = append(o.results, result)
}

func newPlanner(observers ...graph.Observer) *planner.Planner {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return planner.NewPlanner(logger, 0, observers...)
}

func ironMiner(t *testing.T) building.Building {
	t.Helper()
	m := building.NewMiner()
	require.NoError(t, m.Configure(building.ExtractorSettings{
		Resource: catalog.MaterialResource(catalog.IronOre),
		Belt:     catalog.BeltMk1,
	}))
	return m
}

func machine(t *testing.T, kind catalog.BuildingKind, recipe catalog.RecipeID) building.Building {
	t.Helper()
	b, err := building.New(kind)
	require.NoError(t, err)
	require.NoError(t, b.(building.Configurable).SetRecipe(recipe))
	return b
}

// ironPlateLine places miner -> smelter -> constructor
func ironPlateLine(t *testing.T, p *planner.Planner) {
	t.Helper()
	_, err := p.AddBuilding("miner", ironMiner(t))
	require.NoError(t, err)
	_, err = p.AddBuilding("smelter", machine(t, catalog.KindSmelter, catalog.SmelterIronIngot))
	require.NoError(t, err)
	_, err = p.AddBuilding("constructor", machine(t, catalog.KindConstructor, catalog.ConstructorIronPlate))
	require.NoError(t, err)

	_, err = p.Connect("miner", 0, "smelter", 0)
	require.NoError(t, err)
	_, err = p.Connect("smelter", 0, "constructor", 0)
	require.NoError(t, err)
}

func TestPlanner_ChainPropagatesThroughEditorIDs(t *testing.T) {
	// Arrange
	p := newPlanner()

	// Act
	ironPlateLine(t, p)

	// Assert
	smelter, ok := p.Building("smelter")
	require.True(t, ok)
	assert.Equal(t, 60.0, smelter.CurrentInput(0).Speed)
	assert.Equal(t, 30.0, smelter.CurrentOutput(0).Speed)

	constructor, _ := p.Building("constructor")
	assert.Equal(t, 30.0, constructor.CurrentInput(0).Speed)
	assert.Equal(t, 20.0, constructor.CurrentOutput(0).Speed)
	assert.Equal(t, []string{"miner", "smelter", "constructor"}, p.BuildingIDs())
}

func TestPlanner_DuplicateEditorID(t *testing.T) {
	p := newPlanner()
	_, err := p.AddBuilding("a", building.NewSplitter())
	require.NoError(t, err)

	_, err = p.AddBuilding("a", building.NewMerger())

	var dup *planner.ErrDuplicateEditorNode
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.ID)
}

func TestPlanner_UnknownEditorID(t *testing.T) {
	p := newPlanner()

	_, err := p.Connect("ghost", 0, "other", 0)

	var unknown *planner.ErrUnknownEditorNode
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ghost", unknown.ID)
	assert.ErrorAs(t, p.RemoveBuilding("ghost"), &unknown)
	assert.ErrorAs(t, p.SetSpeed("ghost", 50), &unknown)
}

func TestPlanner_RemoveBuildingStarvesDownstream(t *testing.T) {
	// Arrange
	p := newPlanner()
	ironPlateLine(t, p)

	// Act
	require.NoError(t, p.RemoveBuilding("smelter"))

	// Assert
	constructor, _ := p.Building("constructor")
	assert.Nil(t, constructor.CurrentInput(0))
	assert.Equal(t, 0.0, constructor.CurrentOutput(0).Speed)
	_, ok := p.NodeID("smelter")
	assert.False(t, ok)
	assert.Empty(t, p.Connections())
}

func TestPlanner_SetSpeedPropagates(t *testing.T) {
	p := newPlanner()
	ironPlateLine(t, p)

	require.NoError(t, p.SetSpeed("smelter", 50))

	constructor, _ := p.Building("constructor")
	assert.Equal(t, 15.0, constructor.CurrentInput(0).Speed)
	assert.Equal(t, 10.0, constructor.CurrentOutput(0).Speed)
}

func TestPlanner_SetRecipeAndAmplifiers(t *testing.T) {
	// Arrange
	p := newPlanner()
	ironPlateLine(t, p)

	// Act
	require.NoError(t, p.SetRecipe("constructor", catalog.ConstructorIronRod))
	require.NoError(t, p.SetAmplifiers("smelter", 1))

	// Assert - a doubled smelter is capped by the 60/min miner
	smelter, _ := p.Building("smelter")
	assert.Equal(t, 60.0, smelter.CurrentOutput(0).Speed)
	constructor, _ := p.Building("constructor")
	assert.Equal(t, catalog.ConstructorIronRod, constructor.(building.Configurable).Recipe().ID)
}

func TestPlanner_UnsupportedSettings(t *testing.T) {
	p := newPlanner()
	_, err := p.AddBuilding("split", building.NewSplitter())
	require.NoError(t, err)
	_, err = p.AddBuilding("packager", building.NewPackager())
	require.NoError(t, err)

	var unsupported *planner.ErrUnsupportedSetting
	assert.ErrorAs(t, p.SetSpeed("split", 100), &unsupported)
	assert.ErrorAs(t, p.SetRecipe("split", catalog.SmelterIronIngot), &unsupported)
	assert.ErrorAs(t, p.SetExtractor("split", building.ExtractorSettings{}), &unsupported)
	assert.ErrorAs(t, p.SetStorage("split", catalog.IronOre, catalog.BeltMk1), &unsupported)
	// packagers have no amplifier slots
	assert.ErrorAs(t, p.SetAmplifiers("packager", 1), &unsupported)
}

func TestPlanner_SetExtractor(t *testing.T) {
	p := newPlanner()
	ironPlateLine(t, p)

	err := p.SetExtractor("miner", building.ExtractorSettings{
		Resource: catalog.MaterialResource(catalog.IronOre),
		Purity:   catalog.PurityImpure,
		Belt:     catalog.BeltMk1,
	})

	require.NoError(t, err)
	smelter, _ := p.Building("smelter")
	assert.Equal(t, 30.0, smelter.CurrentInput(0).Speed)
}

func TestPlanner_SetStorageRejectedLeavesFlowIntact(t *testing.T) {
	// Arrange
	p := newPlanner()
	box := building.NewStorageContainer()
	require.NoError(t, box.Configure(catalog.IronPlate, catalog.BeltMk1))
	_, err := p.AddBuilding("box", box)
	require.NoError(t, err)
	_, err = p.AddBuilding("sink", building.NewAwesomeSink())
	require.NoError(t, err)
	_, err = p.Connect("box", 0, "sink", 0)
	require.NoError(t, err)

	// Act
	err = p.SetStorage("box", catalog.CopperSheet, "BOGUS")

	// Assert
	require.Error(t, err)
	assert.Equal(t, catalog.IronPlate, box.Stored())
	sink, _ := p.Building("sink")
	require.NotNil(t, sink.CurrentInput(0))
	assert.Equal(t, catalog.MaterialResource(catalog.IronPlate), sink.CurrentInput(0).Resource)
	assert.Equal(t, box.CurrentOutput(0).Resource, sink.CurrentInput(0).Resource)
	assert.Equal(t, 60.0, sink.CurrentInput(0).Speed)
}

func TestPlanner_ConfigurePropagatesPartialEdit(t *testing.T) {
	// Arrange
	p := newPlanner()
	ironPlateLine(t, p)

	// Act - the edit changes the speed and then fails
	err := p.Configure("smelter", func(b building.Building) error {
		b.(building.Overclockable).SetSpeed(50)
		return assert.AnError
	})

	// Assert
	assert.ErrorIs(t, err, assert.AnError)
	constructor, _ := p.Building("constructor")
	assert.Equal(t, 15.0, constructor.CurrentInput(0).Speed)
}

func TestPlanner_ConnectReplacesExclusiveInput(t *testing.T) {
	// Arrange
	p := newPlanner()
	ironPlateLine(t, p)
	_, err := p.AddBuilding("miner2", ironMiner(t))
	require.NoError(t, err)
	first, ok := p.EdgeID("smelter", 0)
	require.True(t, ok)

	// Act
	second, err := p.Connect("miner2", 0, "smelter", 0)

	// Assert
	require.NoError(t, err)
	current, _ := p.EdgeID("smelter", 0)
	assert.Equal(t, second, current)
	assert.NotEqual(t, first, current)
	assert.Len(t, p.Connections(), 2)
}

func TestPlanner_DisconnectPort(t *testing.T) {
	p := newPlanner()
	ironPlateLine(t, p)

	require.NoError(t, p.DisconnectPort("smelter", 0))

	smelter, _ := p.Building("smelter")
	assert.Nil(t, smelter.CurrentInput(0))
	_, ok := p.EdgeID("smelter", 0)
	assert.False(t, ok)

	var outOfRange *catalog.PortOutOfRangeError
	assert.ErrorAs(t, p.DisconnectPort("smelter", 3), &outOfRange)
}

func TestPlanner_DuplicateIsUnwiredCopy(t *testing.T) {
	// Arrange
	p := newPlanner()
	ironPlateLine(t, p)
	require.NoError(t, p.SetSpeed("smelter", 150))

	// Act
	_, err := p.Duplicate("smelter", "smelter-2")

	// Assert
	require.NoError(t, err)
	clone, ok := p.Building("smelter-2")
	require.True(t, ok)
	assert.Nil(t, clone.CurrentInput(0))
	assert.Equal(t, 150.0, clone.(building.Overclockable).Speed())
	assert.Equal(t, catalog.SmelterIronIngot, clone.(building.Configurable).Recipe().ID)

	_, err = p.Duplicate("smelter", "smelter-2")
	var dup *planner.ErrDuplicateEditorNode
	assert.ErrorAs(t, err, &dup)
}

func TestPlanner_ObserversSeeEveryPass(t *testing.T) {
	observer := &recordingObserver{}
	p := newPlanner(observer)

	ironPlateLine(t, p)

	// each connect propagates at least once
	assert.GreaterOrEqual(t, len(observer.results), 2)
}

func TestPlanner_LoadAndCapture(t *testing.T) {
	// Arrange
	doc := &plan.Document{
		Name: "iron",
		Buildings: []plan.BuildingSpec{
			{ID: "miner", Kind: "miner", Resource: "iron_ore", Belt: "mk2", Tier: "mk1"},
			{ID: "smelter", Kind: "smelter", Recipe: "iron_ingot"},
		},
		Connections: []plan.ConnectionSpec{{From: "miner", Output: 0, To: "smelter", Input: 0}},
	}
	p := newPlanner()

	// Act
	require.NoError(t, p.Load(doc))
	captured := &plan.Document{Name: "copy"}
	p.Capture(captured)

	// Assert
	smelter, _ := p.Building("smelter")
	assert.Equal(t, 30.0, smelter.CurrentOutput(0).Speed)

	require.Len(t, captured.Buildings, 2)
	miner, ok := captured.Building("miner")
	require.True(t, ok)
	assert.Equal(t, "iron_ore", miner.Resource)
	assert.Equal(t, "mk2", miner.Belt)
	assert.Equal(t, "iron_ingot", captured.Buildings[1].Recipe)
	assert.Equal(t, doc.Connections, captured.Connections)

	reloaded := newPlanner()
	require.NoError(t, reloaded.Load(captured))
	assert.Equal(t, p.Report().TotalPowerMW, reloaded.Report().TotalPowerMW)
}

func TestPlanner_LoadRejectsInvalidDocument(t *testing.T) {
	doc := &plan.Document{
		Name:        "broken",
		Buildings:   []plan.BuildingSpec{{ID: "a", Kind: "smelter"}},
		Connections: []plan.ConnectionSpec{{From: "a", To: "missing"}},
	}

	err := newPlanner().Load(doc)

	var invalid *plan.ErrInvalidDocument
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, invalid.Problems, 1)
}

func TestPlanner_Report(t *testing.T) {
	// Arrange
	p := newPlanner()
	ironPlateLine(t, p)
	_, err := p.AddBuilding("idle", machine(t, catalog.KindSmelter, catalog.SmelterIronIngot))
	require.NoError(t, err)

	// Act
	report := p.Report()

	// Assert
	require.Len(t, report.Buildings, 4)
	assert.InDelta(t, 5+4+4+4, report.TotalPowerMW, 1e-9)
	assert.Equal(t, []string{"constructor", "idle"}, report.Sinks)
	assert.Equal(t, []string{"idle"}, report.Starved)
	assert.Empty(t, report.Invalid)

	smelter, ok := report.Building("smelter")
	require.True(t, ok)
	assert.Equal(t, "Iron Ingot", smelter.Recipe)
	assert.Equal(t, 1.0, smelter.Utilization)
	assert.Equal(t, 60.0, smelter.Inputs[0].Speed)
	assert.True(t, smelter.Inputs[0].Connected)
	assert.Equal(t, 30.0, smelter.Outputs[0].Max)
	assert.True(t, smelter.Outputs[0].Connected)
	assert.False(t, smelter.Sink)

	idle, _ := report.Building("idle")
	assert.False(t, idle.Inputs[0].Present)
	assert.Equal(t, catalog.MaterialResource(catalog.IronOre), idle.Inputs[0].Resource)
}

func TestPlanner_ReportFlagsMixedMerger(t *testing.T) {
	p := newPlanner()
	_, err := p.AddBuilding("iron", ironMiner(t))
	require.NoError(t, err)
	copper := building.NewMiner()
	require.NoError(t, copper.Configure(building.ExtractorSettings{
		Resource: catalog.MaterialResource(catalog.CopperOre),
		Belt:     catalog.BeltMk1,
	}))
	_, err = p.AddBuilding("copper", copper)
	require.NoError(t, err)
	_, err = p.AddBuilding("merge", building.NewMerger())
	require.NoError(t, err)

	_, err = p.Connect("iron", 0, "merge", 0)
	require.NoError(t, err)
	_, err = p.Connect("copper", 0, "merge", 1)
	require.NoError(t, err)

	report := p.Report()
	assert.Equal(t, []string{"merge"}, report.Invalid)
}

func TestPlanner_Refresh(t *testing.T) {
	p := newPlanner()
	ironPlateLine(t, p)
	before := p.Report()

	p.Refresh()

	assert.Equal(t, before, p.Report())
}

func TestCommands_ThroughMediator(t *testing.T) {
	// Arrange
	p := newPlanner()
	m := mediator.NewMediator()
	require.NoError(t, planner.RegisterHandlers(m, p))
	ctx := context.Background()
	speed := 50.0

	// Act
	_, err := m.Send(ctx, &planner.AddBuildingCommand{Spec: plan.BuildingSpec{
		ID: "miner", Kind: "miner", Resource: "iron_ore", Belt: "mk1",
	}})
	require.NoError(t, err)
	_, err = m.Send(ctx, &planner.AddBuildingCommand{Spec: plan.BuildingSpec{ID: "smelter", Kind: "smelter"}})
	require.NoError(t, err)
	resp, err := m.Send(ctx, &planner.ConnectCommand{From: "miner", To: "smelter"})
	require.NoError(t, err)
	recipe := "iron_ingot"
	_, err = m.Send(ctx, &planner.ConfigureBuildingCommand{ID: "smelter", Recipe: &recipe, Speed: &speed})
	require.NoError(t, err)
	_, err = m.Send(ctx, &planner.DuplicateBuildingCommand{ID: "smelter", NewID: "smelter-2"})
	require.NoError(t, err)

	// Assert
	out, err := m.Send(ctx, &planner.FlowReportQuery{})
	require.NoError(t, err)
	report := out.(*planner.FlowReport)
	smelter, _ := report.Building("smelter")
	assert.Equal(t, 15.0, smelter.Outputs[0].Speed)
	assert.Len(t, report.Buildings, 3)

	edge := resp.(*planner.ConnectResponse).EdgeID
	_, err = m.Send(ctx, &planner.DisconnectCommand{EdgeID: &edge})
	require.NoError(t, err)
	_, err = m.Send(ctx, &planner.RemoveBuildingCommand{ID: "smelter-2"})
	require.NoError(t, err)
	assert.Len(t, p.BuildingIDs(), 2)
	assert.Empty(t, p.Connections())
}

func TestCommands_ConfigureRejectsWrongRecipe(t *testing.T) {
	p := newPlanner()
	m := mediator.NewMediator()
	require.NoError(t, planner.RegisterHandlers(m, p))
	_, err := p.AddBuilding("smelter", building.NewSmelter())
	require.NoError(t, err)
	recipe := "iron_plate"

	_, err = m.Send(context.Background(), &planner.ConfigureBuildingCommand{ID: "smelter", Recipe: &recipe})

	var mismatch *catalog.ErrRecipeBuildingMismatch
	assert.ErrorAs(t, err, &mismatch)
}
