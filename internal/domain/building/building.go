// Package building models the machines that sit on the nodes of a production
// graph. Every kind is its own struct behind the Building interface; the graph
// only talks to that interface, and configuration surfaces are discovered by
// type assertion against the optional capability interfaces below.
package building

import (
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
)

// Building is the capability surface shared by every building kind.
//
// Port indices outside [0, NumInputs) or [0, NumOutputs) are caller bugs and
// panic with *catalog.PortOutOfRangeError.
type Building interface {
	Kind() catalog.BuildingKind
	Name() string
	HeaderImage() string

	NumInputs() int
	NumOutputs() int

	// InputResource returns the resource an input port expects. The boolean is
	// false when the port accepts anything or nothing is configured.
	InputResource(port int) (catalog.Resource, bool)
	// OutputResource returns the resource an output port emits, if known
	OutputResource(port int) (catalog.Resource, bool)

	CurrentInput(port int) *catalog.Input
	SetCurrentInput(input catalog.Input, port int)
	ClearCurrentInput(port int)

	// CurrentOutput returns the flow leaving an output port given the cached
	// inputs, or nil when the building has nothing configured for that port
	CurrentOutput(port int) *catalog.Output

	// AcceptsFanIn reports whether several edges may feed the input port at once
	AcceptsFanIn(port int) bool

	// ClearClone copies the configuration of the building without any cached
	// input state
	ClearClone() Building
}

// Overclockable buildings accept a speed percentage in [0, 250]
type Overclockable interface {
	SetSpeed(speed float64)
	Speed() float64
}

// Configurable is implemented by buildings that run recipes
type Configurable interface {
	Building
	Overclockable

	SetRecipe(id catalog.RecipeID) error
	ClearRecipe()
	Recipe() *catalog.Recipe

	SetAmplifiers(occupied int)
	Amplifiers() int
	AmplifierSlots() int

	// MaxOutput is the nominal rate of an output port with every input satisfied
	MaxOutput(port int) float64
	// Utilization is the throughput factor of the cached inputs (0..1)
	Utilization() float64
}

// OutputTracker is implemented by buildings whose outputs depend on which
// ports are wired
type OutputTracker interface {
	SetOutputConnected(port int, connected bool)
	OutputConnected(port int) bool
}

// Validity is implemented by merge points that can receive mixed resources
type Validity interface {
	Valid() bool
}

// PowerConsumer is implemented by buildings that draw power
type PowerConsumer interface {
	PowerDraw() float64
}

// New returns a building of the given kind in its default, unconfigured state
func New(kind catalog.BuildingKind) (Building, error) {
	switch kind {
	case catalog.KindConstructor:
		return NewConstructor(), nil
	case catalog.KindSmelter:
		return NewSmelter(), nil
	case catalog.KindFoundry:
		return NewFoundry(), nil
	case catalog.KindAssembler:
		return NewAssembler(), nil
	case catalog.KindManufacturer:
		return NewManufacturer(), nil
	case catalog.KindRefinery:
		return NewRefinery(), nil
	case catalog.KindPackager:
		return NewPackager(), nil
	case catalog.KindBlender:
		return NewBlender(), nil
	case catalog.KindParticleAccelerator:
		return NewParticleAccelerator(), nil
	case catalog.KindConverter:
		return NewConverter(), nil
	case catalog.KindQuantumEncoder:
		return NewQuantumEncoder(), nil
	case catalog.KindMiner:
		return NewMiner(), nil
	case catalog.KindWaterExtractor:
		return NewWaterExtractor(), nil
	case catalog.KindOilExtractor:
		return NewOilExtractor(), nil
	case catalog.KindResourceWellExtractor:
		return NewResourceWellExtractor(), nil
	case catalog.KindSplitter:
		return NewSplitter(), nil
	case catalog.KindMerger:
		return NewMerger(), nil
	case catalog.KindPipelineJunction:
		return NewPipelineJunction(), nil
	case catalog.KindStorageContainer:
		return NewStorageContainer(), nil
	case catalog.KindAwesomeSink:
		return NewAwesomeSink(), nil
	default:
		return nil, &catalog.ErrUnknownBuildingKind{Kind: string(kind)}
	}
}

// base carries the static description and the input cache every kind shares
type base struct {
	spec   catalog.BuildingSpec
	inputs []*catalog.Input
}

func newBase(kind catalog.BuildingKind) base {
	spec := catalog.MustBuilding(kind)
	return base{spec: spec, inputs: make([]*catalog.Input, spec.Layout.Inputs())}
}

func (b *base) Kind() catalog.BuildingKind { return b.spec.Kind }
func (b *base) Name() string               { return b.spec.Name }
func (b *base) HeaderImage() string        { return b.spec.HeaderImage }
func (b *base) NumInputs() int             { return b.spec.Layout.Inputs() }
func (b *base) NumOutputs() int            { return b.spec.Layout.Outputs() }

func (b *base) checkInput(port int) {
	catalog.CheckPort(b.spec.Name, catalog.PortInput, port, b.NumInputs())
}

func (b *base) checkOutput(port int) {
	catalog.CheckPort(b.spec.Name, catalog.PortOutput, port, b.NumOutputs())
}

// isFluidInput reports whether an input port carries fluids
func (b *base) isFluidInput(port int) bool {
	return port >= b.spec.Layout.MaterialInputs
}

// isFluidOutput reports whether an output port carries fluids
func (b *base) isFluidOutput(port int) bool {
	return port >= b.spec.Layout.MaterialOutputs
}

func (b *base) CurrentInput(port int) *catalog.Input {
	b.checkInput(port)
	if b.inputs[port] == nil {
		return nil
	}
	in := *b.inputs[port]
	return &in
}

func (b *base) SetCurrentInput(input catalog.Input, port int) {
	b.checkInput(port)
	b.inputs[port] = &input
}

func (b *base) ClearCurrentInput(port int) {
	b.checkInput(port)
	b.inputs[port] = nil
}

func (b *base) AcceptsFanIn(port int) bool {
	b.checkInput(port)
	return false
}

// inputSpeed returns the cached rate on a port, zero when nothing is cached
func (b *base) inputSpeed(port int) float64 {
	if b.inputs[port] == nil {
		return 0
	}
	return b.inputs[port].Speed
}

// clear returns a copy of the static part with an empty input cache
func (b *base) clear() base {
	return base{spec: b.spec, inputs: make([]*catalog.Input, len(b.inputs))}
}
