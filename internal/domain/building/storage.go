package building

import (
	"fmt"
	"math"

	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/flow"
)

// StorageContainer buffers a belt. Incoming flow passes straight through,
// limited by the outgoing belt. With nothing arriving, a container holding a
// stored material unloads it at the full belt rate.
type StorageContainer struct {
	base
	stored catalog.Material
	belt   catalog.BeltTier
}

func NewStorageContainer() *StorageContainer {
	return &StorageContainer{base: newBase(catalog.KindStorageContainer)}
}

func (s *StorageContainer) Stored() catalog.Material { return s.stored }
func (s *StorageContainer) Belt() catalog.BeltTier   { return s.belt }

// SetStored chooses the material held in the container; the empty material
// empties it
func (s *StorageContainer) SetStored(m catalog.Material) error {
	if err := checkStored(m); err != nil {
		return err
	}
	s.stored = m
	return nil
}

// SetBelt chooses the outgoing belt; the empty tier removes it
func (s *StorageContainer) SetBelt(t catalog.BeltTier) error {
	if err := checkBelt(t); err != nil {
		return err
	}
	s.belt = t
	return nil
}

// Configure sets the stored material and the belt together. Both are checked
// before either changes.
func (s *StorageContainer) Configure(m catalog.Material, t catalog.BeltTier) error {
	if err := checkStored(m); err != nil {
		return err
	}
	if err := checkBelt(t); err != nil {
		return err
	}
	s.stored = m
	s.belt = t
	return nil
}

func checkStored(m catalog.Material) error {
	if m != "" && !m.Valid() {
		return &catalog.ErrUnknownResource{Resource: string(m)}
	}
	return nil
}

func checkBelt(t catalog.BeltTier) error {
	if t != "" && t.Capacity() == 0 {
		return fmt.Errorf("unknown belt tier %q", t)
	}
	return nil
}

func (s *StorageContainer) InputResource(port int) (catalog.Resource, bool) {
	s.checkInput(port)
	if s.stored == "" {
		return catalog.Resource{}, false
	}
	return catalog.MaterialResource(s.stored), true
}

func (s *StorageContainer) OutputResource(port int) (catalog.Resource, bool) {
	s.checkOutput(port)
	if in := s.inputs[0]; in != nil {
		return in.Resource, true
	}
	if s.stored == "" {
		return catalog.Resource{}, false
	}
	return catalog.MaterialResource(s.stored), true
}

func (s *StorageContainer) CurrentOutput(port int) *catalog.Output {
	s.checkOutput(port)
	if in := s.inputs[0]; in != nil {
		speed := in.Speed
		if s.belt != "" {
			speed = math.Min(speed, s.belt.Capacity())
		}
		return &catalog.Output{Speed: flow.Round(speed), Resource: in.Resource}
	}
	if s.stored == "" || s.belt == "" {
		return nil
	}
	return &catalog.Output{Speed: s.belt.Capacity(), Resource: catalog.MaterialResource(s.stored)}
}

func (s *StorageContainer) ClearClone() Building {
	return &StorageContainer{base: s.clear(), stored: s.stored, belt: s.belt}
}

// AwesomeSink destroys whatever reaches it
type AwesomeSink struct {
	base
}

func NewAwesomeSink() *AwesomeSink {
	return &AwesomeSink{base: newBase(catalog.KindAwesomeSink)}
}

func (a *AwesomeSink) InputResource(port int) (catalog.Resource, bool) {
	a.checkInput(port)
	return catalog.Resource{}, false
}

func (a *AwesomeSink) OutputResource(port int) (catalog.Resource, bool) {
	a.checkOutput(port)
	return catalog.Resource{}, false
}

func (a *AwesomeSink) CurrentOutput(port int) *catalog.Output {
	a.checkOutput(port)
	return nil
}

// Consumed is the rate the sink is currently destroying
func (a *AwesomeSink) Consumed() float64 { return a.inputSpeed(0) }

func (a *AwesomeSink) PowerDraw() float64 { return a.spec.BasePowerMW }

func (a *AwesomeSink) ClearClone() Building { return NewAwesomeSink() }
