package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplan-go/internal/domain/building"
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/graph"
)

// ironMiner returns a miner producing the given rate of iron ore on a fast belt
func ironMiner(t *testing.T, tier catalog.MinerTier, purity catalog.Purity) *building.Miner {
	t.Helper()
	m := building.NewMiner()
	require.NoError(t, m.Configure(building.ExtractorSettings{
		Resource: catalog.MaterialResource(catalog.IronOre),
		Purity:   purity,
		Tier:     tier,
		Belt:     catalog.BeltMk6,
	}))
	return m
}

func ironSmelter(t *testing.T) *building.Smelter {
	t.Helper()
	s := building.NewSmelter()
	require.NoError(t, s.SetRecipe(catalog.SmelterIronIngot))
	return s
}

func connect(t *testing.T, g *graph.ProductionGraph, from, to graph.NodeID, out, in int) graph.EdgeID {
	t.Helper()
	id, err := g.AddEdge(from, to, graph.EdgeDetails{Output: out, Input: in})
	require.NoError(t, err)
	return id
}

func TestAddEdge_PropagatesImmediately(t *testing.T) {
	// Arrange
	g := graph.New()
	miner := g.AddNode(ironMiner(t, catalog.MinerMk1, catalog.PurityImpure))
	smelter := ironSmelter(t)
	smelterID := g.AddNode(smelter)

	// Act
	connect(t, g, miner, smelterID, 0, 0)

	// Assert
	require.NotNil(t, smelter.CurrentInput(0))
	assert.Equal(t, 30.0, smelter.CurrentInput(0).Speed)
	assert.Equal(t, 30.0, smelter.CurrentOutput(0).Speed)
}

func TestAddEdge_ValidatesNodesAndPorts(t *testing.T) {
	g := graph.New()
	a := g.AddNode(ironSmelter(t))
	b := g.AddNode(ironSmelter(t))

	_, err := g.AddEdge(a, 99, graph.EdgeDetails{})
	var notFound *graph.ErrNodeNotFound
	assert.ErrorAs(t, err, &notFound)

	_, err = g.AddEdge(a, b, graph.EdgeDetails{Output: 0, Input: 3})
	var outOfRange *catalog.PortOutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, catalog.PortInput, outOfRange.Direction)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_ExclusiveInputDisconnectsPriorWire(t *testing.T) {
	// Arrange - splitter feeds one smelter, a second miner then takes over the port
	g := graph.New()
	minerA := g.AddNode(ironMiner(t, catalog.MinerMk1, catalog.PurityNormal))
	splitter := building.NewSplitter()
	splitterID := g.AddNode(splitter)
	smelter := ironSmelter(t)
	smelterID := g.AddNode(smelter)
	minerB := g.AddNode(ironMiner(t, catalog.MinerMk1, catalog.PurityImpure))

	connect(t, g, minerA, splitterID, 0, 0)
	old := connect(t, g, splitterID, smelterID, 1, 0)
	require.Equal(t, 60.0, smelter.CurrentInput(0).Speed)

	// Act
	replacement := connect(t, g, minerB, smelterID, 0, 0)

	// Assert
	_, stillThere := g.Edge(old)
	assert.False(t, stillThere)
	assert.Len(t, g.IncomingEdges(smelterID, 0), 1)
	assert.Equal(t, replacement, g.IncomingEdges(smelterID, 0)[0].ID)
	assert.Equal(t, 30.0, smelter.CurrentInput(0).Speed)
	assert.False(t, splitter.OutputConnected(1))
	assert.Nil(t, splitter.CurrentOutput(1))
}

func TestAddEdge_OutputPortFansOut(t *testing.T) {
	// Arrange
	g := graph.New()
	miner := g.AddNode(ironMiner(t, catalog.MinerMk1, catalog.PurityNormal))
	first := ironSmelter(t)
	firstID := g.AddNode(first)
	second := ironSmelter(t)
	secondID := g.AddNode(second)

	// Act
	firstEdge := connect(t, g, miner, firstID, 0, 0)
	secondEdge := connect(t, g, miner, secondID, 0, 0)

	// Assert
	assert.Equal(t, 2, g.EdgeCount())
	_, ok := g.Edge(firstEdge)
	assert.True(t, ok)
	_, ok = g.Edge(secondEdge)
	assert.True(t, ok)
	require.NotNil(t, first.CurrentInput(0))
	require.NotNil(t, second.CurrentInput(0))
	assert.Equal(t, 60.0, first.CurrentInput(0).Speed)
	assert.Equal(t, 60.0, second.CurrentInput(0).Speed)
	assert.Len(t, g.OutgoingEdges(miner), 2)
}

func TestRemoveEdge_SharedOutputStaysConnected(t *testing.T) {
	// Arrange - splitter output 0 feeds two smelters, output 1 feeds a third
	g := graph.New()
	miner := g.AddNode(ironMiner(t, catalog.MinerMk1, catalog.PurityNormal))
	splitter := building.NewSplitter()
	splitterID := g.AddNode(splitter)
	a := g.AddNode(ironSmelter(t))
	b := ironSmelter(t)
	bID := g.AddNode(b)
	c := g.AddNode(ironSmelter(t))

	connect(t, g, miner, splitterID, 0, 0)
	toA := connect(t, g, splitterID, a, 0, 0)
	connect(t, g, splitterID, bID, 0, 0)
	connect(t, g, splitterID, c, 1, 0)
	require.Equal(t, 30.0, b.CurrentInput(0).Speed)

	// Act
	require.NoError(t, g.RemoveEdge(toA))

	// Assert
	assert.True(t, splitter.OutputConnected(0), "another edge still leaves output 0")
	assert.True(t, splitter.OutputConnected(1))
	assert.Equal(t, 30.0, b.CurrentInput(0).Speed)
}

func TestRemoveEdge_ClearsDownstream(t *testing.T) {
	// Arrange
	g := graph.New()
	miner := g.AddNode(ironMiner(t, catalog.MinerMk1, catalog.PurityNormal))
	smelter := ironSmelter(t)
	smelterID := g.AddNode(smelter)
	constructor := building.NewConstructor()
	require.NoError(t, constructor.SetRecipe(catalog.ConstructorIronPlate))
	constructorID := g.AddNode(constructor)

	feed := connect(t, g, miner, smelterID, 0, 0)
	connect(t, g, smelterID, constructorID, 0, 0)
	require.Equal(t, 30.0, constructor.CurrentInput(0).Speed)

	// Act
	require.NoError(t, g.RemoveEdge(feed))

	// Assert
	assert.Nil(t, smelter.CurrentInput(0))
	assert.Equal(t, 0.0, constructor.CurrentInput(0).Speed, "starvation propagates as zero")
	assert.Equal(t, 0.0, constructor.CurrentOutput(0).Speed)

	var notFound *graph.ErrEdgeNotFound
	assert.ErrorAs(t, g.RemoveEdge(feed), &notFound)
}

func TestRemoveNode_RemovesIncidentEdges(t *testing.T) {
	// Arrange
	g := graph.New()
	miner := g.AddNode(ironMiner(t, catalog.MinerMk1, catalog.PurityNormal))
	splitter := building.NewSplitter()
	splitterID := g.AddNode(splitter)
	left := ironSmelter(t)
	leftID := g.AddNode(left)
	rightID := g.AddNode(ironSmelter(t))
	connect(t, g, miner, splitterID, 0, 0)
	connect(t, g, splitterID, leftID, 0, 0)
	connect(t, g, splitterID, rightID, 1, 0)
	require.Equal(t, 30.0, left.CurrentInput(0).Speed)

	// Act
	_, err := g.RemoveNode(rightID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, splitter.OutputConnected(1))
	assert.Equal(t, 60.0, left.CurrentInput(0).Speed, "the remaining output takes the whole belt")
	_, ok := g.Node(rightID)
	assert.False(t, ok)

	_, err = g.RemoveNode(rightID)
	assert.Error(t, err)
}

func TestNodeIDsAreNeverReused(t *testing.T) {
	g := graph.New()
	a := g.AddNode(building.NewMerger())
	_, err := g.RemoveNode(a)
	require.NoError(t, err)

	b := g.AddNode(building.NewMerger())

	assert.NotEqual(t, a, b)
}

func TestConnectivityQueries(t *testing.T) {
	g := graph.New()
	miner := g.AddNode(ironMiner(t, catalog.MinerMk1, catalog.PurityNormal))
	splitter := g.AddNode(building.NewSplitter())
	a := g.AddNode(ironSmelter(t))
	b := g.AddNode(building.NewMerger())
	connect(t, g, miner, splitter, 0, 0)
	connect(t, g, splitter, a, 0, 0)
	e1 := connect(t, g, splitter, b, 1, 0)
	e2 := connect(t, g, splitter, b, 2, 1)

	assert.Equal(t, []graph.NodeID{a, b}, g.Neighbors(splitter))
	assert.Equal(t, []graph.NodeID{a, b}, g.Externals())
	assert.Equal(t, []graph.NodeID{miner}, g.Sources())

	connecting := g.EdgesConnecting(splitter, b)
	require.Len(t, connecting, 2)
	assert.Equal(t, e1, connecting[0].ID)
	assert.Equal(t, e2, connecting[1].ID)
	assert.Len(t, g.OutgoingEdges(splitter), 3)
}
