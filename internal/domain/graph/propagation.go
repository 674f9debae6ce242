package graph

import (
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/flow"
)

// PropagationResult summarizes one propagation pass
type PropagationResult struct {
	Origin NodeID
	// Paths is the number of origin-to-sink paths walked
	Paths int
	// Truncated counts paths cut short by the revisit cap
	Truncated int
	// Transfers counts edge-by-edge writes into input caches
	Transfers int
	// Conflicts counts fan-in ports that saw mixed resources
	Conflicts int
	// Reached lists every node written to during the pass
	Reached []NodeID
}

// Observer is notified after every propagation pass
type Observer interface {
	ObservePropagation(result PropagationResult)
}

// Touch re-runs propagation after a building on the node was edited in place
func (g *ProductionGraph) Touch(id NodeID) (PropagationResult, error) {
	if _, ok := g.nodes[id]; !ok {
		return PropagationResult{}, &ErrNodeNotFound{ID: id}
	}
	return g.Propagate(id), nil
}

// Propagate pushes flow from a node to every sink it can reach.
//
// Every directed path from the node to a sink is enumerated depth first and
// walked edge by edge, reading the source's current output and writing it into
// the destination's input cache. A node may appear at most MaxVisits times on
// one path; a path that would exceed the cap is walked up to and including
// the edge that closes the loop, then abandoned. This bounds feedback loops
// at the cost of not solving them to a fixpoint.
func (g *ProductionGraph) Propagate(from NodeID) PropagationResult {
	result := PropagationResult{Origin: from}
	if _, ok := g.nodes[from]; !ok {
		return result
	}

	w := walker{
		graph:   g,
		visits:  map[NodeID]int{from: 1},
		reached: map[NodeID]bool{},
		result:  &result,
	}
	w.walk(from)

	for _, id := range g.Nodes() {
		if w.reached[id] {
			result.Reached = append(result.Reached, id)
		}
	}
	if g.observer != nil {
		g.observer.ObservePropagation(result)
	}
	return result
}

// PropagateAll refreshes the whole graph: first from every source, then from
// any node left unreached because it sits on a loop without an entry point
func (g *ProductionGraph) PropagateAll() []PropagationResult {
	var results []PropagationResult
	seen := map[NodeID]bool{}
	run := func(id NodeID) {
		r := g.Propagate(id)
		seen[id] = true
		for _, n := range r.Reached {
			seen[n] = true
		}
		results = append(results, r)
	}
	for _, id := range g.Sources() {
		run(id)
	}
	for _, id := range g.Nodes() {
		if !seen[id] {
			run(id)
		}
	}
	return results
}

type walker struct {
	graph   *ProductionGraph
	visits  map[NodeID]int
	path    []Edge
	reached map[NodeID]bool
	result  *PropagationResult
}

func (w *walker) walk(node NodeID) {
	out := w.graph.OutgoingEdges(node)
	if len(out) == 0 {
		w.apply(w.path)
		w.result.Paths++
		return
	}

	for _, e := range out {
		w.path = append(w.path, e)
		if w.visits[e.To] >= w.graph.maxVisits {
			w.apply(w.path)
			w.result.Paths++
			w.result.Truncated++
		} else {
			w.visits[e.To]++
			w.walk(e.To)
			w.visits[e.To]--
		}
		w.path = w.path[:len(w.path)-1]
	}
}

// apply walks one path in order, moving each source's output into the next
// node's input cache
func (w *walker) apply(path []Edge) {
	for _, e := range path {
		if !w.graph.refreshInput(e.To, e.Details.Input) {
			w.result.Conflicts++
		}
		w.result.Transfers++
		w.reached[e.To] = true
	}
}

// refreshInput recomputes the cached input of one port from every edge that
// feeds it. Exclusive ports have at most one such edge; fan-in ports receive
// the merged total. It returns false when mixed resources met at the port.
func (g *ProductionGraph) refreshInput(id NodeID, port int) bool {
	dst := g.nodes[id]
	var incoming []*catalog.Input
	for _, e := range g.IncomingEdges(id, port) {
		src, ok := g.nodes[e.From]
		if !ok {
			continue
		}
		if out := src.CurrentOutput(e.Details.Output); out != nil {
			in := out.AsInput()
			incoming = append(incoming, &in)
		}
	}

	merged := flow.Merge(incoming)
	if merged.Empty {
		dst.ClearCurrentInput(port)
		return true
	}
	dst.SetCurrentInput(catalog.Input{Speed: merged.Speed, Resource: merged.Resource}, port)
	return merged.Valid
}
