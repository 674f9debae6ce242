// Package planner is the application service around a production graph. It
// maps the editor's string IDs onto graph node IDs and turns the graph's
// cached state into flow reports.
package planner

import (
	"log/slog"
	"sync"

	"github.com/andrescamacho/factoryplan-go/internal/domain/building"
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/graph"
	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
)

// Planner owns one production graph. Every public method holds the planner
// lock for its whole duration, including the propagation pass it triggers,
// so concurrent readers only ever observe completed passes.
type Planner struct {
	mu        sync.Mutex
	graph     *graph.ProductionGraph
	nodes     map[string]graph.NodeID
	editors   map[graph.NodeID]string
	logger    *slog.Logger
	observers []graph.Observer
}

// NewPlanner creates a planner with an empty graph. maxVisits bounds how often
// a node may repeat on one propagation path; zero keeps the graph default.
// Observers are notified after every propagation pass.
func NewPlanner(logger *slog.Logger, maxVisits int, observers ...graph.Observer) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Planner{
		nodes:     make(map[string]graph.NodeID),
		editors:   make(map[graph.NodeID]string),
		logger:    logger,
		observers: observers,
	}
	p.graph = graph.New(graph.WithMaxVisits(maxVisits), graph.WithObserver(p))
	return p
}

// ObservePropagation logs a finished pass and forwards it to the observers
func (p *Planner) ObservePropagation(result graph.PropagationResult) {
	p.logger.Debug("propagation finished",
		"origin", p.editors[result.Origin],
		"paths", result.Paths,
		"truncated", result.Truncated,
		"transfers", result.Transfers,
	)
	if result.Conflicts > 0 {
		p.logger.Warn("mixed resources merged into one port",
			"origin", p.editors[result.Origin],
			"conflicts", result.Conflicts,
		)
	}
	for _, o := range p.observers {
		o.ObservePropagation(result)
	}
}

// AddBuilding places a building under a new editor ID
func (p *Planner) AddBuilding(editorID string, b building.Building) (graph.NodeID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.addBuilding(editorID, b)
}

func (p *Planner) addBuilding(editorID string, b building.Building) (graph.NodeID, error) {
	if _, exists := p.nodes[editorID]; exists {
		return 0, &ErrDuplicateEditorNode{ID: editorID}
	}
	id := p.graph.AddNode(b)
	p.nodes[editorID] = id
	p.editors[id] = editorID
	p.logger.Debug("building added", "id", editorID, "kind", b.Kind(), "node", id)
	return id, nil
}

// RemoveBuilding deletes a building and every wire touching it
func (p *Planner) RemoveBuilding(editorID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.lookup(editorID)
	if err != nil {
		return err
	}
	if _, err := p.graph.RemoveNode(id); err != nil {
		return err
	}
	delete(p.nodes, editorID)
	delete(p.editors, id)
	p.logger.Debug("building removed", "id", editorID)
	return nil
}

// Connect wires an output port to an input port
func (p *Planner) Connect(from string, output int, to string, input int) (graph.EdgeID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	src, err := p.lookup(from)
	if err != nil {
		return 0, err
	}
	dst, err := p.lookup(to)
	if err != nil {
		return 0, err
	}
	edge, err := p.graph.AddEdge(src, dst, graph.EdgeDetails{Output: output, Input: input})
	if err != nil {
		return 0, err
	}
	p.logger.Debug("connected", "from", from, "output", output, "to", to, "input", input, "edge", edge)
	return edge, nil
}

// Disconnect removes one wire
func (p *Planner) Disconnect(edge graph.EdgeID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.graph.RemoveEdge(edge); err != nil {
		return err
	}
	p.logger.Debug("disconnected", "edge", edge)
	return nil
}

// DisconnectPort removes every wire feeding one input port of a building
func (p *Planner) DisconnectPort(editorID string, input int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.lookup(editorID)
	if err != nil {
		return err
	}
	b, _ := p.graph.Node(id)
	if input < 0 || input >= b.NumInputs() {
		return &catalog.PortOutOfRangeError{Building: b.Name(), Direction: catalog.PortInput, Port: input, Count: b.NumInputs()}
	}
	for _, e := range p.graph.IncomingEdges(id, input) {
		if err := p.graph.RemoveEdge(e.ID); err != nil {
			return err
		}
	}
	return nil
}

// Configure applies an in-place edit to a building and propagates the result.
// The building is propagated even when fn fails, so a partial edit never
// leaves downstream caches stale.
func (p *Planner) Configure(editorID string, fn func(b building.Building) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.lookup(editorID)
	if err != nil {
		return err
	}
	b, _ := p.graph.Node(id)
	editErr := fn(b)
	if _, err := p.graph.Touch(id); err != nil {
		return err
	}
	return editErr
}

// SetRecipe selects the recipe of a recipe building
func (p *Planner) SetRecipe(editorID string, recipe catalog.RecipeID) error {
	return p.Configure(editorID, func(b building.Building) error {
		c, ok := b.(building.Configurable)
		if !ok {
			return unsupported(editorID, b, "recipe")
		}
		return c.SetRecipe(recipe)
	})
}

// SetSpeed changes the overclock of a machine or extractor
func (p *Planner) SetSpeed(editorID string, speed float64) error {
	return p.Configure(editorID, func(b building.Building) error {
		o, ok := b.(building.Overclockable)
		if !ok {
			return unsupported(editorID, b, "speed")
		}
		o.SetSpeed(speed)
		return nil
	})
}

// SetAmplifiers changes the number of occupied amplifier slots
func (p *Planner) SetAmplifiers(editorID string, occupied int) error {
	return p.Configure(editorID, func(b building.Building) error {
		c, ok := b.(building.Configurable)
		if !ok || c.AmplifierSlots() == 0 {
			return unsupported(editorID, b, "amplifier")
		}
		c.SetAmplifiers(occupied)
		return nil
	})
}

// SetExtractor reconfigures a miner or fluid extractor
func (p *Planner) SetExtractor(editorID string, settings building.ExtractorSettings) error {
	return p.Configure(editorID, func(b building.Building) error {
		e, ok := b.(building.Extractor)
		if !ok {
			return unsupported(editorID, b, "extractor")
		}
		return e.Configure(settings)
	})
}

// SetStorage changes what a storage container holds and the belt it unloads on
func (p *Planner) SetStorage(editorID string, stored catalog.Material, belt catalog.BeltTier) error {
	return p.Configure(editorID, func(b building.Building) error {
		s, ok := b.(*building.StorageContainer)
		if !ok {
			return unsupported(editorID, b, "storage")
		}
		return s.Configure(stored, belt)
	})
}

// Duplicate places a configuration-only copy of a building under a new ID.
// The copy starts unwired.
func (p *Planner) Duplicate(editorID, newEditorID string) (graph.NodeID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.lookup(editorID)
	if err != nil {
		return 0, err
	}
	b, _ := p.graph.Node(id)
	return p.addBuilding(newEditorID, b.ClearClone())
}

// Building returns the building behind an editor ID. Edits made through the
// returned value must go through Configure to be propagated.
func (p *Planner) Building(editorID string) (building.Building, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, ok := p.nodes[editorID]
	if !ok {
		return nil, false
	}
	return p.graph.Node(id)
}

// NodeID returns the graph node behind an editor ID
func (p *Planner) NodeID(editorID string) (graph.NodeID, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, ok := p.nodes[editorID]
	return id, ok
}

// EditorID returns the editor ID of a graph node
func (p *Planner) EditorID(id graph.NodeID) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	editorID, ok := p.editors[id]
	return editorID, ok
}

// BuildingIDs returns every editor ID in placement order
func (p *Planner) BuildingIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	ids := make([]string, 0, len(p.nodes))
	for _, node := range p.graph.Nodes() {
		ids = append(ids, p.editors[node])
	}
	return ids
}

// Connections returns every wire in creation order
func (p *Planner) Connections() []plan.ConnectionSpec {
	p.mu.Lock()
	defer p.mu.Unlock()

	edges := p.graph.Edges()
	specs := make([]plan.ConnectionSpec, 0, len(edges))
	for _, e := range edges {
		specs = append(specs, plan.ConnectionSpec{
			From:   p.editors[e.From],
			Output: e.Details.Output,
			To:     p.editors[e.To],
			Input:  e.Details.Input,
		})
	}
	return specs
}

// EdgeID returns the wire feeding an exclusive input port, if any
func (p *Planner) EdgeID(to string, input int) (graph.EdgeID, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, ok := p.nodes[to]
	if !ok {
		return 0, false
	}
	edges := p.graph.IncomingEdges(id, input)
	if len(edges) == 0 {
		return 0, false
	}
	return edges[0].ID, true
}

// Load materializes a plan document into the planner
func (p *Planner) Load(doc *plan.Document) error {
	return plan.Apply(doc, p)
}

// Capture writes the planner's current state into doc
func (p *Planner) Capture(doc *plan.Document) {
	plan.Capture(doc, p)
}

// Refresh re-runs propagation over the whole graph
func (p *Planner) Refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.graph.PropagateAll()
}

func (p *Planner) lookup(editorID string) (graph.NodeID, error) {
	id, ok := p.nodes[editorID]
	if !ok {
		return 0, &ErrUnknownEditorNode{ID: editorID}
	}
	return id, nil
}

func unsupported(editorID string, b building.Building, setting string) error {
	return &ErrUnsupportedSetting{ID: editorID, Kind: string(b.Kind()), Setting: setting}
}
