// Package graph holds the production graph of buildings wired port to port,
// and the propagation pass that pushes every building's output into the
// cached inputs of the buildings downstream of it.
//
// The graph is single-owner and not safe for concurrent use. Every mutation
// runs propagation to completion before it returns.
package graph

import (
	"slices"

	"github.com/andrescamacho/factoryplan-go/internal/domain/building"
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
)

// DefaultMaxVisits bounds how often one node may appear on a single path
const DefaultMaxVisits = 2

// NodeID identifies a node. IDs are never reused within one graph.
type NodeID int

// EdgeID identifies an edge. IDs are never reused within one graph.
type EdgeID int

// EdgeDetails names the ports an edge joins
type EdgeDetails struct {
	Output int // output port on the source node
	Input  int // input port on the destination node
}

// Edge is a directed connection from an output port to an input port
type Edge struct {
	ID      EdgeID
	From    NodeID
	To      NodeID
	Details EdgeDetails
}

// Option configures a ProductionGraph
type Option func(*ProductionGraph)

// WithMaxVisits sets the per-path revisit cap. Values below 1 are ignored.
func WithMaxVisits(n int) Option {
	return func(g *ProductionGraph) {
		if n >= 1 {
			g.maxVisits = n
		}
	}
}

// WithObserver registers an observer notified after every propagation pass
func WithObserver(o Observer) Option {
	return func(g *ProductionGraph) {
		g.observer = o
	}
}

// ProductionGraph is a directed multigraph of buildings
type ProductionGraph struct {
	nodes     map[NodeID]building.Building
	edges     map[EdgeID]Edge
	nextNode  NodeID
	nextEdge  EdgeID
	maxVisits int
	observer  Observer
}

// New creates an empty production graph
func New(opts ...Option) *ProductionGraph {
	g := &ProductionGraph{
		nodes:     make(map[NodeID]building.Building),
		edges:     make(map[EdgeID]Edge),
		maxVisits: DefaultMaxVisits,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxVisits returns the per-path revisit cap
func (g *ProductionGraph) MaxVisits() int { return g.maxVisits }

// AddNode places a building in the graph. The graph keeps the pointer; later
// edits through it must be followed by Touch.
func (g *ProductionGraph) AddNode(b building.Building) NodeID {
	id := g.nextNode
	g.nextNode++
	g.nodes[id] = b
	return id
}

// RemoveNode deletes a node and every edge touching it. Buildings that were
// fed by it lose those inputs and propagate the loss downstream.
func (g *ProductionGraph) RemoveNode(id NodeID) (building.Building, error) {
	b, ok := g.nodes[id]
	if !ok {
		return nil, &ErrNodeNotFound{ID: id}
	}

	var affected []NodeID
	for _, e := range g.sortedEdges() {
		if e.From != id && e.To != id {
			continue
		}
		g.detach(e)
		if e.From == id && e.To != id {
			affected = append(affected, e.To)
		}
		if e.To == id && e.From != id {
			affected = append(affected, e.From)
		}
	}
	delete(g.nodes, id)

	for _, n := range dedupe(affected) {
		g.Propagate(n)
	}
	return b, nil
}

// AddEdge wires an output port to an input port and propagates the new flow.
//
// Several edges may leave one output port. An input port that does not
// accept fan-in holds a single edge, so the edge already feeding it is
// disconnected first. Self-loops and cycles are allowed.
func (g *ProductionGraph) AddEdge(from, to NodeID, details EdgeDetails) (EdgeID, error) {
	src, ok := g.nodes[from]
	if !ok {
		return 0, &ErrNodeNotFound{ID: from}
	}
	dst, ok := g.nodes[to]
	if !ok {
		return 0, &ErrNodeNotFound{ID: to}
	}
	if err := checkPort(src, catalog.PortOutput, details.Output, src.NumOutputs()); err != nil {
		return 0, err
	}
	if err := checkPort(dst, catalog.PortInput, details.Input, dst.NumInputs()); err != nil {
		return 0, err
	}

	var affected []NodeID
	for _, e := range g.sortedEdges() {
		if e.To != to || e.Details.Input != details.Input || dst.AcceptsFanIn(details.Input) {
			continue
		}
		g.detach(e)
		affected = append(affected, e.From, e.To)
	}

	id := g.nextEdge
	g.nextEdge++
	g.edges[id] = Edge{ID: id, From: from, To: to, Details: details}
	if tracker, ok := src.(building.OutputTracker); ok {
		tracker.SetOutputConnected(details.Output, true)
	}

	for _, n := range dedupe(affected) {
		if n != from {
			g.Propagate(n)
		}
	}
	g.Propagate(from)
	return id, nil
}

// RemoveEdge disconnects an edge and propagates the change from both ends
func (g *ProductionGraph) RemoveEdge(id EdgeID) error {
	e, ok := g.edges[id]
	if !ok {
		return &ErrEdgeNotFound{ID: id}
	}
	g.detach(e)
	g.Propagate(e.To)
	if e.From != e.To {
		g.Propagate(e.From)
	}
	return nil
}

// detach removes an edge and resets the port state on both ends without
// propagating
func (g *ProductionGraph) detach(e Edge) {
	delete(g.edges, e.ID)
	if src, ok := g.nodes[e.From]; ok && !g.outputInUse(e.From, e.Details.Output) {
		if tracker, ok := src.(building.OutputTracker); ok {
			tracker.SetOutputConnected(e.Details.Output, false)
		}
	}
	if _, ok := g.nodes[e.To]; ok {
		g.refreshInput(e.To, e.Details.Input)
	}
}

// outputInUse reports whether any edge still leaves an output port
func (g *ProductionGraph) outputInUse(id NodeID, port int) bool {
	for _, e := range g.edges {
		if e.From == id && e.Details.Output == port {
			return true
		}
	}
	return false
}

// Node returns the building on a node
func (g *ProductionGraph) Node(id NodeID) (building.Building, bool) {
	b, ok := g.nodes[id]
	return b, ok
}

// Edge returns an edge by ID
func (g *ProductionGraph) Edge(id EdgeID) (Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Nodes returns every node ID in ascending order
func (g *ProductionGraph) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Edges returns every edge in ascending ID order
func (g *ProductionGraph) Edges() []Edge {
	return g.sortedEdges()
}

// NodeCount returns the number of nodes
func (g *ProductionGraph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges
func (g *ProductionGraph) EdgeCount() int { return len(g.edges) }

// OutgoingEdges returns the edges leaving a node, in ID order
func (g *ProductionGraph) OutgoingEdges(id NodeID) []Edge {
	var out []Edge
	for _, e := range g.sortedEdges() {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}

// IncomingEdges returns the edges feeding one input port of a node, in ID order
func (g *ProductionGraph) IncomingEdges(id NodeID, port int) []Edge {
	var in []Edge
	for _, e := range g.sortedEdges() {
		if e.To == id && e.Details.Input == port {
			in = append(in, e)
		}
	}
	return in
}

// Neighbors returns the distinct nodes a node feeds, in ID order
func (g *ProductionGraph) Neighbors(id NodeID) []NodeID {
	var ids []NodeID
	for _, e := range g.OutgoingEdges(id) {
		ids = append(ids, e.To)
	}
	return dedupe(ids)
}

// EdgesConnecting returns every edge from a to b
func (g *ProductionGraph) EdgesConnecting(a, b NodeID) []Edge {
	var out []Edge
	for _, e := range g.OutgoingEdges(a) {
		if e.To == b {
			out = append(out, e)
		}
	}
	return out
}

// Externals returns the sinks of the graph: nodes without outgoing edges
func (g *ProductionGraph) Externals() []NodeID {
	hasOut := make(map[NodeID]bool, len(g.nodes))
	for _, e := range g.edges {
		hasOut[e.From] = true
	}
	var sinks []NodeID
	for _, id := range g.Nodes() {
		if !hasOut[id] {
			sinks = append(sinks, id)
		}
	}
	return sinks
}

// Sources returns the nodes without incoming edges
func (g *ProductionGraph) Sources() []NodeID {
	hasIn := make(map[NodeID]bool, len(g.nodes))
	for _, e := range g.edges {
		hasIn[e.To] = true
	}
	var sources []NodeID
	for _, id := range g.Nodes() {
		if !hasIn[id] {
			sources = append(sources, id)
		}
	}
	return sources
}

func (g *ProductionGraph) sortedEdges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b Edge) int { return int(a.ID - b.ID) })
	return edges
}

func checkPort(b building.Building, direction catalog.PortDirection, port, count int) error {
	if port < 0 || port >= count {
		return &catalog.PortOutOfRangeError{Building: b.Name(), Direction: direction, Port: port, Count: count}
	}
	return nil
}

func dedupe(ids []NodeID) []NodeID {
	slices.Sort(ids)
	return slices.Compact(ids)
}
