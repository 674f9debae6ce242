package building

import (
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/flow"
)

// outputs tracks which output ports have an edge attached
type outputs []bool

func (o outputs) count() int {
	n := 0
	for _, c := range o {
		if c {
			n++
		}
	}
	return n
}

// Splitter divides its belt input evenly across its wired outputs
type Splitter struct {
	base
	connected outputs
}

func NewSplitter() *Splitter {
	b := newBase(catalog.KindSplitter)
	return &Splitter{base: b, connected: make(outputs, b.NumOutputs())}
}

func (s *Splitter) InputResource(port int) (catalog.Resource, bool) {
	s.checkInput(port)
	return catalog.Resource{}, false
}

func (s *Splitter) OutputResource(port int) (catalog.Resource, bool) {
	s.checkOutput(port)
	if s.inputs[0] == nil {
		return catalog.Resource{}, false
	}
	return s.inputs[0].Resource, true
}

func (s *Splitter) SetOutputConnected(port int, connected bool) {
	s.checkOutput(port)
	s.connected[port] = connected
}

func (s *Splitter) OutputConnected(port int) bool {
	s.checkOutput(port)
	return s.connected[port]
}

func (s *Splitter) CurrentOutput(port int) *catalog.Output {
	s.checkOutput(port)
	in := s.inputs[0]
	if in == nil || !s.connected[port] {
		return nil
	}
	return &catalog.Output{Speed: flow.Split(in.Speed, s.connected.count()), Resource: in.Resource}
}

// ClearClone drops wiring state along with the input cache
func (s *Splitter) ClearClone() Building { return NewSplitter() }

// merge combines every cached input of a merge point
func (b *base) merge() flow.MergeResult {
	return flow.Merge(b.inputs)
}

// Merger joins up to three belts into one
type Merger struct {
	base
}

func NewMerger() *Merger {
	return &Merger{base: newBase(catalog.KindMerger)}
}

func (m *Merger) InputResource(port int) (catalog.Resource, bool) {
	m.checkInput(port)
	return catalog.Resource{}, false
}

func (m *Merger) OutputResource(port int) (catalog.Resource, bool) {
	m.checkOutput(port)
	r := m.merge()
	return r.Resource, !r.Empty
}

func (m *Merger) AcceptsFanIn(port int) bool {
	m.checkInput(port)
	return true
}

func (m *Merger) CurrentOutput(port int) *catalog.Output {
	m.checkOutput(port)
	r := m.merge()
	if r.Empty {
		return nil
	}
	return &catalog.Output{Speed: flow.Round(r.Speed), Resource: r.Resource}
}

// Valid is false while belts carrying different resources meet here
func (m *Merger) Valid() bool { return m.merge().Valid }

func (m *Merger) ClearClone() Building { return NewMerger() }

// PipelineJunction is both a fan-in and a fan-out point for fluids: every
// input is summed and the total is divided across the wired outputs
type PipelineJunction struct {
	base
	connected outputs
}

func NewPipelineJunction() *PipelineJunction {
	b := newBase(catalog.KindPipelineJunction)
	return &PipelineJunction{base: b, connected: make(outputs, b.NumOutputs())}
}

func (j *PipelineJunction) InputResource(port int) (catalog.Resource, bool) {
	j.checkInput(port)
	return catalog.Resource{}, false
}

func (j *PipelineJunction) OutputResource(port int) (catalog.Resource, bool) {
	j.checkOutput(port)
	r := j.merge()
	return r.Resource, !r.Empty
}

func (j *PipelineJunction) AcceptsFanIn(port int) bool {
	j.checkInput(port)
	return true
}

func (j *PipelineJunction) SetOutputConnected(port int, connected bool) {
	j.checkOutput(port)
	j.connected[port] = connected
}

func (j *PipelineJunction) OutputConnected(port int) bool {
	j.checkOutput(port)
	return j.connected[port]
}

func (j *PipelineJunction) CurrentOutput(port int) *catalog.Output {
	j.checkOutput(port)
	r := j.merge()
	if r.Empty || !j.connected[port] {
		return nil
	}
	return &catalog.Output{Speed: flow.Split(r.Speed, j.connected.count()), Resource: r.Resource}
}

func (j *PipelineJunction) Valid() bool { return j.merge().Valid }

func (j *PipelineJunction) ClearClone() Building { return NewPipelineJunction() }
