package planner

import (
	"github.com/andrescamacho/factoryplan-go/internal/domain/building"
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/graph"
)

// PortFlow is the flow observed on one port
type PortFlow struct {
	Port      int
	Resource  catalog.Resource
	Speed     float64
	Max       float64 // nominal rate with every input satisfied, recipe buildings only
	Connected bool
	Present   bool // false when nothing is cached or offered on the port
}

// BuildingReport is the state of one building after the last propagation pass
type BuildingReport struct {
	ID          string
	Kind        catalog.BuildingKind
	Name        string
	Recipe      string
	Speed       float64
	Amplifiers  int
	Inputs      []PortFlow
	Outputs     []PortFlow
	Utilization float64
	Valid       bool
	PowerMW     float64
	Sink        bool
}

// FlowReport is the state of the whole plan
type FlowReport struct {
	Buildings    []BuildingReport
	TotalPowerMW float64
	// Sinks lists buildings without outgoing wires
	Sinks []string
	// Invalid lists merge points receiving mixed resources
	Invalid []string
	// Starved lists configured recipe buildings producing nothing
	Starved []string
}

// Building returns the report for one editor ID
func (r *FlowReport) Building(id string) (BuildingReport, bool) {
	for _, b := range r.Buildings {
		if b.ID == id {
			return b, true
		}
	}
	return BuildingReport{}, false
}

// Report snapshots every building in placement order
func (p *Planner) Report() *FlowReport {
	p.mu.Lock()
	defer p.mu.Unlock()

	report := &FlowReport{}
	sinks := make(map[graph.NodeID]bool)
	for _, id := range p.graph.Externals() {
		sinks[id] = true
		report.Sinks = append(report.Sinks, p.editors[id])
	}

	for _, node := range p.graph.Nodes() {
		b, _ := p.graph.Node(node)
		br := p.describe(node, b)
		br.Sink = sinks[node]

		report.TotalPowerMW += br.PowerMW
		if !br.Valid {
			report.Invalid = append(report.Invalid, br.ID)
		}
		if br.Recipe != "" && br.Utilization == 0 {
			report.Starved = append(report.Starved, br.ID)
		}
		report.Buildings = append(report.Buildings, br)
	}
	return report
}

func (p *Planner) describe(node graph.NodeID, b building.Building) BuildingReport {
	br := BuildingReport{
		ID:    p.editors[node],
		Kind:  b.Kind(),
		Name:  b.Name(),
		Valid: true,
	}

	connectedOut := make(map[int]bool)
	for _, e := range p.graph.OutgoingEdges(node) {
		connectedOut[e.Details.Output] = true
	}

	for port := 0; port < b.NumInputs(); port++ {
		flow := PortFlow{Port: port, Connected: len(p.graph.IncomingEdges(node, port)) > 0}
		if in := b.CurrentInput(port); in != nil {
			flow.Resource, flow.Speed, flow.Present = in.Resource, in.Speed, true
		} else if res, ok := b.InputResource(port); ok {
			flow.Resource = res
		}
		br.Inputs = append(br.Inputs, flow)
	}

	configurable, isMachine := b.(building.Configurable)
	for port := 0; port < b.NumOutputs(); port++ {
		flow := PortFlow{Port: port, Connected: connectedOut[port]}
		if out := b.CurrentOutput(port); out != nil {
			flow.Resource, flow.Speed, flow.Present = out.Resource, out.Speed, true
		}
		if isMachine {
			flow.Max = configurable.MaxOutput(port)
		}
		br.Outputs = append(br.Outputs, flow)
	}

	if o, ok := b.(building.Overclockable); ok {
		br.Speed = o.Speed()
	}
	if isMachine {
		if r := configurable.Recipe(); r != nil {
			br.Recipe = r.Name
		}
		br.Amplifiers = configurable.Amplifiers()
		br.Utilization = configurable.Utilization()
	}
	if v, ok := b.(building.Validity); ok {
		br.Valid = v.Valid()
	}
	if pc, ok := b.(building.PowerConsumer); ok {
		br.PowerMW = pc.PowerDraw()
	}
	return br
}
