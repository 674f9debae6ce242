package building

import (
	"fmt"

	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/flow"
)

// ExtractorSettings configures a building that pulls resources out of a node.
// Zero values mean "not chosen": an extractor without a resource has no
// output, and one without a belt or pipe tier outputs zero.
type ExtractorSettings struct {
	Resource catalog.Resource
	Purity   catalog.Purity
	Tier     catalog.MinerTier
	Belt     catalog.BeltTier
	Pipe     catalog.PipeTier
}

// Extractor is implemented by miners and fluid extractors
type Extractor interface {
	Building
	Overclockable

	Configure(settings ExtractorSettings) error
	Settings() ExtractorSettings
}

// ErrInvalidExtractorResource indicates a resource the extractor cannot pull
type ErrInvalidExtractorResource struct {
	Building string
	Resource catalog.Resource
}

func (e *ErrInvalidExtractorResource) Error() string {
	return fmt.Sprintf("%s cannot extract %s", e.Building, e.Resource)
}

type extractor struct {
	base
	settings ExtractorSettings
	speed    float64
}

func newExtractor(kind catalog.BuildingKind, settings ExtractorSettings) extractor {
	if settings.Purity == "" {
		settings.Purity = catalog.PurityNormal
	}
	return extractor{base: newBase(kind), settings: settings, speed: flow.DefaultSpeed}
}

func (e *extractor) Speed() float64              { return e.speed }
func (e *extractor) SetSpeed(speed float64)      { e.speed = flow.ClampSpeed(speed) }
func (e *extractor) Settings() ExtractorSettings { return e.settings }

func (e *extractor) InputResource(port int) (catalog.Resource, bool) {
	e.checkInput(port)
	return catalog.Resource{}, false
}

func (e *extractor) OutputResource(port int) (catalog.Resource, bool) {
	e.checkOutput(port)
	if e.settings.Resource.IsZero() {
		return catalog.Resource{}, false
	}
	return e.settings.Resource, true
}

// validate fills in defaults shared by every extractor kind and rejects
// unknown tiers
func (e *extractor) validate(s ExtractorSettings) (ExtractorSettings, error) {
	if s.Purity == "" {
		s.Purity = catalog.PurityNormal
	}
	if s.Purity.Multiplier() == 0 {
		return s, fmt.Errorf("unknown purity %q", s.Purity)
	}
	if s.Belt != "" && s.Belt.Capacity() == 0 {
		return s, fmt.Errorf("unknown belt tier %q", s.Belt)
	}
	if s.Pipe != "" && s.Pipe.Capacity() == 0 {
		return s, fmt.Errorf("unknown pipe tier %q", s.Pipe)
	}
	return s, nil
}

// output computes the extraction rate for the configured transport
func (e *extractor) output(port int, baseRate float64, capacity *float64) *catalog.Output {
	e.checkOutput(port)
	if e.settings.Resource.IsZero() {
		return nil
	}
	return &catalog.Output{
		Speed:    flow.ExtractorOutput(baseRate, e.settings.Purity, e.speed, capacity),
		Resource: e.settings.Resource,
	}
}

func (e *extractor) beltCapacity() *float64 {
	if e.settings.Belt == "" {
		return nil
	}
	c := e.settings.Belt.Capacity()
	return &c
}

func (e *extractor) pipeCapacity() *float64 {
	if e.settings.Pipe == "" {
		return nil
	}
	c := e.settings.Pipe.Capacity()
	return &c
}

func (e *extractor) clearClone() extractor {
	return extractor{base: e.clear(), settings: e.settings, speed: e.speed}
}

// Miner extracts an ore onto a belt
type Miner struct{ extractor }

func NewMiner() *Miner {
	return &Miner{newExtractor(catalog.KindMiner, ExtractorSettings{Tier: catalog.MinerMk1})}
}

func (m *Miner) Configure(s ExtractorSettings) error {
	s, err := m.validate(s)
	if err != nil {
		return err
	}
	if !s.Resource.IsZero() && !catalog.IsOre(s.Resource.Material) {
		return &ErrInvalidExtractorResource{Building: m.Name(), Resource: s.Resource}
	}
	if s.Tier == "" {
		s.Tier = catalog.MinerMk1
	}
	if s.Tier.BaseRate() == 0 {
		return fmt.Errorf("unknown miner tier %q", s.Tier)
	}
	m.settings = s
	return nil
}

func (m *Miner) CurrentOutput(port int) *catalog.Output {
	return m.output(port, m.settings.Tier.BaseRate(), m.beltCapacity())
}

func (m *Miner) PowerDraw() float64 {
	return flow.PowerDraw(m.settings.Tier.PowerMW(), m.speed, 1)
}

func (m *Miner) ClearClone() Building { return &Miner{m.clearClone()} }

// WaterExtractor pumps water anywhere; it has no node purity
type WaterExtractor struct{ extractor }

func NewWaterExtractor() *WaterExtractor {
	return &WaterExtractor{newExtractor(catalog.KindWaterExtractor, ExtractorSettings{
		Resource: catalog.FluidResource(catalog.Water),
	})}
}

func (w *WaterExtractor) Configure(s ExtractorSettings) error {
	s, err := w.validate(s)
	if err != nil {
		return err
	}
	water := catalog.FluidResource(catalog.Water)
	if !s.Resource.IsZero() && s.Resource != water {
		return &ErrInvalidExtractorResource{Building: w.Name(), Resource: s.Resource}
	}
	s.Resource = water
	s.Purity = catalog.PurityNormal
	w.settings = s
	return nil
}

func (w *WaterExtractor) CurrentOutput(port int) *catalog.Output {
	return w.output(port, catalog.WaterExtractorRate, w.pipeCapacity())
}

func (w *WaterExtractor) PowerDraw() float64 {
	return flow.PowerDraw(w.spec.BasePowerMW, w.speed, 1)
}

func (w *WaterExtractor) ClearClone() Building { return &WaterExtractor{w.clearClone()} }

// OilExtractor pumps crude oil from an oil node
type OilExtractor struct{ extractor }

func NewOilExtractor() *OilExtractor {
	return &OilExtractor{newExtractor(catalog.KindOilExtractor, ExtractorSettings{
		Resource: catalog.FluidResource(catalog.CrudeOil),
	})}
}

func (o *OilExtractor) Configure(s ExtractorSettings) error {
	s, err := o.validate(s)
	if err != nil {
		return err
	}
	oil := catalog.FluidResource(catalog.CrudeOil)
	if !s.Resource.IsZero() && s.Resource != oil {
		return &ErrInvalidExtractorResource{Building: o.Name(), Resource: s.Resource}
	}
	s.Resource = oil
	o.settings = s
	return nil
}

func (o *OilExtractor) CurrentOutput(port int) *catalog.Output {
	return o.output(port, catalog.OilExtractorRate, o.pipeCapacity())
}

func (o *OilExtractor) PowerDraw() float64 {
	return flow.PowerDraw(o.spec.BasePowerMW, o.speed, 1)
}

func (o *OilExtractor) ClearClone() Building { return &OilExtractor{o.clearClone()} }

// ResourceWellExtractor models one satellite node of a resource well. It is
// powered by the pressurizer, so it draws nothing itself.
type ResourceWellExtractor struct{ extractor }

func NewResourceWellExtractor() *ResourceWellExtractor {
	return &ResourceWellExtractor{newExtractor(catalog.KindResourceWellExtractor, ExtractorSettings{})}
}

func (r *ResourceWellExtractor) Configure(s ExtractorSettings) error {
	s, err := r.validate(s)
	if err != nil {
		return err
	}
	if !s.Resource.IsZero() && !isWellFluid(s.Resource) {
		return &ErrInvalidExtractorResource{Building: r.Name(), Resource: s.Resource}
	}
	r.settings = s
	return nil
}

func (r *ResourceWellExtractor) CurrentOutput(port int) *catalog.Output {
	return r.output(port, catalog.ResourceWellSatelliteRate, r.pipeCapacity())
}

func (r *ResourceWellExtractor) ClearClone() Building { return &ResourceWellExtractor{r.clearClone()} }

func isWellFluid(res catalog.Resource) bool {
	for _, f := range catalog.WellFluids {
		if res == catalog.FluidResource(f) {
			return true
		}
	}
	return false
}
