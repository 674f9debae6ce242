package building

import (
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/flow"
	"github.com/andrescamacho/factoryplan-go/pkg/utils"
)

// Machine is the shared state of every recipe-driven building
type Machine struct {
	base
	recipe     *catalog.Recipe
	speed      float64
	amplifiers int
}

func newMachine(kind catalog.BuildingKind) Machine {
	return Machine{base: newBase(kind), speed: flow.DefaultSpeed}
}

// SetRecipe selects a recipe from the catalog. Cached inputs are kept; ports
// whose resource no longer matches simply read as zero.
func (m *Machine) SetRecipe(id catalog.RecipeID) error {
	r, ok := catalog.LookupRecipe(id)
	if !ok {
		return &catalog.ErrUnknownRecipe{Recipe: string(id)}
	}
	if r.Building != m.Kind() {
		return &catalog.ErrRecipeBuildingMismatch{Recipe: r.ID, Expected: r.Building, Actual: m.Kind()}
	}
	m.recipe = &r
	return nil
}

func (m *Machine) ClearRecipe()             { m.recipe = nil }
func (m *Machine) Recipe() *catalog.Recipe  { return m.recipe }
func (m *Machine) Speed() float64           { return m.speed }
func (m *Machine) Amplifiers() int          { return m.amplifiers }
func (m *Machine) AmplifierSlots() int      { return m.spec.AmplifierSlots }
func (m *Machine) SetSpeed(speed float64)   { m.speed = flow.ClampSpeed(speed) }
func (m *Machine) amplifierFactor() float64 { return flow.AmplifierFactor(m.amplifiers, m.AmplifierSlots()) }

// SetAmplifiers sets the number of occupied amplifier slots, clamped to the
// slots the building has
func (m *Machine) SetAmplifiers(occupied int) {
	m.amplifiers = utils.Clamp(occupied, 0, m.AmplifierSlots())
}

func (m *Machine) InputResource(port int) (catalog.Resource, bool) {
	m.checkInput(port)
	if m.recipe == nil {
		return catalog.Resource{}, false
	}
	return m.recipe.InputResource(port)
}

func (m *Machine) OutputResource(port int) (catalog.Resource, bool) {
	m.checkOutput(port)
	if m.recipe == nil {
		return catalog.Resource{}, false
	}
	return m.recipe.OutputResource(port)
}

// actualInputs returns the cached rate per input port. A cached input carrying
// a different resource than the recipe wants on that port reads as zero.
func (m *Machine) actualInputs() []float64 {
	actual := make([]float64, m.NumInputs())
	for port, in := range m.inputs {
		if in == nil {
			continue
		}
		want, ok := m.recipe.InputResource(port)
		if ok && want == in.Resource {
			actual[port] = in.Speed
		}
	}
	return actual
}

func (m *Machine) CurrentOutput(port int) *catalog.Output {
	m.checkOutput(port)
	if m.recipe == nil {
		return nil
	}
	res, ok := m.recipe.OutputResource(port)
	if !ok {
		return nil
	}
	rates := flow.RecipeOutputs(m.recipe, m.NumOutputs(), m.actualInputs(), m.speed, m.amplifierFactor())
	return &catalog.Output{Speed: rates[port], Resource: res}
}

func (m *Machine) MaxOutput(port int) float64 {
	m.checkOutput(port)
	return flow.MaxOutputs(m.recipe, m.NumOutputs(), m.speed, m.amplifierFactor())[port]
}

// MaxInput is the rate an input port consumes at full throughput
func (m *Machine) MaxInput(port int) float64 {
	m.checkInput(port)
	return flow.MaxInputs(m.recipe, m.NumInputs(), m.speed)[port]
}

func (m *Machine) Utilization() float64 {
	if m.recipe == nil {
		return 0
	}
	return flow.ThroughputFactor(m.recipe.Duration, m.recipe.InputAmounts(), m.actualInputs())
}

func (m *Machine) PowerDraw() float64 {
	if m.recipe == nil {
		return 0
	}
	return flow.PowerDraw(m.spec.BasePowerMW, m.speed, m.amplifierFactor())
}

func (m *Machine) clearClone() Machine {
	return Machine{base: m.clear(), recipe: m.recipe, speed: m.speed, amplifiers: m.amplifiers}
}

// Recipe-driven building kinds

type Constructor struct{ Machine }
type Smelter struct{ Machine }
type Foundry struct{ Machine }
type Assembler struct{ Machine }
type Manufacturer struct{ Machine }
type Refinery struct{ Machine }
type Packager struct{ Machine }
type Blender struct{ Machine }
type ParticleAccelerator struct{ Machine }
type Converter struct{ Machine }
type QuantumEncoder struct{ Machine }

func NewConstructor() *Constructor { return &Constructor{newMachine(catalog.KindConstructor)} }
func NewSmelter() *Smelter         { return &Smelter{newMachine(catalog.KindSmelter)} }
func NewFoundry() *Foundry         { return &Foundry{newMachine(catalog.KindFoundry)} }
func NewAssembler() *Assembler     { return &Assembler{newMachine(catalog.KindAssembler)} }
func NewManufacturer() *Manufacturer {
	return &Manufacturer{newMachine(catalog.KindManufacturer)}
}
func NewRefinery() *Refinery { return &Refinery{newMachine(catalog.KindRefinery)} }
func NewPackager() *Packager { return &Packager{newMachine(catalog.KindPackager)} }
func NewBlender() *Blender   { return &Blender{newMachine(catalog.KindBlender)} }
func NewParticleAccelerator() *ParticleAccelerator {
	return &ParticleAccelerator{newMachine(catalog.KindParticleAccelerator)}
}
func NewConverter() *Converter { return &Converter{newMachine(catalog.KindConverter)} }
func NewQuantumEncoder() *QuantumEncoder {
	return &QuantumEncoder{newMachine(catalog.KindQuantumEncoder)}
}

func (b *Constructor) ClearClone() Building         { return &Constructor{b.clearClone()} }
func (b *Smelter) ClearClone() Building             { return &Smelter{b.clearClone()} }
func (b *Foundry) ClearClone() Building             { return &Foundry{b.clearClone()} }
func (b *Assembler) ClearClone() Building           { return &Assembler{b.clearClone()} }
func (b *Manufacturer) ClearClone() Building        { return &Manufacturer{b.clearClone()} }
func (b *Refinery) ClearClone() Building            { return &Refinery{b.clearClone()} }
func (b *Packager) ClearClone() Building            { return &Packager{b.clearClone()} }
func (b *Blender) ClearClone() Building             { return &Blender{b.clearClone()} }
func (b *ParticleAccelerator) ClearClone() Building { return &ParticleAccelerator{b.clearClone()} }
func (b *Converter) ClearClone() Building           { return &Converter{b.clearClone()} }
func (b *QuantumEncoder) ClearClone() Building      { return &QuantumEncoder{b.clearClone()} }
