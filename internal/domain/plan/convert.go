package plan

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/factoryplan-go/internal/domain/building"
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/graph"
)

// Target receives the buildings and connections of a document
type Target interface {
	AddBuilding(editorID string, b building.Building) (graph.NodeID, error)
	Connect(from string, output int, to string, input int) (graph.EdgeID, error)
}

// Source exposes a live graph by editor IDs
type Source interface {
	BuildingIDs() []string
	Building(editorID string) (building.Building, bool)
	Connections() []ConnectionSpec
}

// Apply validates a document and materializes it into target, buildings
// first and then connections in document order. Every building is built and
// every connection's ports are checked before target is touched. Target is
// expected to be empty: an editor ID it already holds fails midway.
func Apply(doc *Document, target Target) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	built := make(map[string]building.Building, len(doc.Buildings))
	for _, spec := range doc.Buildings {
		b, err := NewBuilding(spec)
		if err != nil {
			return err
		}
		built[spec.ID] = b
	}
	for i, c := range doc.Connections {
		if err := checkConnection(built, c); err != nil {
			return fmt.Errorf("connection %d (%s:%d -> %s:%d): %w", i, c.From, c.Output, c.To, c.Input, err)
		}
	}

	for _, spec := range doc.Buildings {
		if _, err := target.AddBuilding(spec.ID, built[spec.ID]); err != nil {
			return fmt.Errorf("failed to add building %q: %w", spec.ID, err)
		}
	}
	for i, c := range doc.Connections {
		if _, err := target.Connect(c.From, c.Output, c.To, c.Input); err != nil {
			return fmt.Errorf("failed to apply connection %d (%s:%d -> %s:%d): %w", i, c.From, c.Output, c.To, c.Input, err)
		}
	}
	return nil
}

func checkConnection(built map[string]building.Building, c ConnectionSpec) error {
	src, dst := built[c.From], built[c.To]
	if c.Output >= src.NumOutputs() {
		return &catalog.PortOutOfRangeError{Building: src.Name(), Direction: catalog.PortOutput, Port: c.Output, Count: src.NumOutputs()}
	}
	if c.Input >= dst.NumInputs() {
		return &catalog.PortOutOfRangeError{Building: dst.Name(), Direction: catalog.PortInput, Port: c.Input, Count: dst.NumInputs()}
	}
	return nil
}

// Capture describes the current state of source as a document
func Capture(doc *Document, source Source) {
	doc.Buildings = doc.Buildings[:0]
	for _, id := range source.BuildingIDs() {
		b, ok := source.Building(id)
		if !ok {
			continue
		}
		doc.Buildings = append(doc.Buildings, Describe(id, b))
	}
	doc.Connections = source.Connections()
}

// NewBuilding builds and configures a building from its spec
func NewBuilding(spec BuildingSpec) (building.Building, error) {
	kind, err := catalog.ParseBuildingKind(spec.Kind)
	if err != nil {
		return nil, &ErrBuildingSpec{ID: spec.ID, Err: err}
	}
	b, err := building.New(kind)
	if err != nil {
		return nil, &ErrBuildingSpec{ID: spec.ID, Err: err}
	}
	if err := configure(b, spec); err != nil {
		return nil, &ErrBuildingSpec{ID: spec.ID, Err: err}
	}
	return b, nil
}

func configure(b building.Building, spec BuildingSpec) error {
	if o, ok := b.(building.Overclockable); ok && spec.Speed != nil {
		o.SetSpeed(*spec.Speed)
	}

	switch v := b.(type) {
	case building.Configurable:
		if spec.Recipe != "" {
			r, err := catalog.ParseRecipe(v.Kind(), spec.Recipe)
			if err != nil {
				return err
			}
			if err := v.SetRecipe(r.ID); err != nil {
				return err
			}
		}
		if spec.Amplifiers > v.AmplifierSlots() {
			return fmt.Errorf("%d amplifiers requested but %s has %d slots", spec.Amplifiers, v.Name(), v.AmplifierSlots())
		}
		v.SetAmplifiers(spec.Amplifiers)

	case building.Extractor:
		settings, err := extractorSettings(spec)
		if err != nil {
			return err
		}
		return v.Configure(settings)

	case *building.StorageContainer:
		stored, belt := v.Stored(), v.Belt()
		if spec.Resource != "" {
			res, ok := catalog.ParseResource(normalize(spec.Resource))
			if !ok || res.IsFluid() {
				return &catalog.ErrUnknownResource{Resource: spec.Resource}
			}
			stored = res.Material
		}
		if spec.Belt != "" {
			tier, ok := catalog.ParseBeltTier(spec.Belt)
			if !ok {
				return fmt.Errorf("unknown belt tier %q", spec.Belt)
			}
			belt = tier
		}
		return v.Configure(stored, belt)
	}
	return nil
}

func extractorSettings(spec BuildingSpec) (building.ExtractorSettings, error) {
	var s building.ExtractorSettings
	if spec.Resource != "" {
		res, ok := catalog.ParseResource(normalize(spec.Resource))
		if !ok {
			return s, &catalog.ErrUnknownResource{Resource: spec.Resource}
		}
		s.Resource = res
	}
	if spec.Purity != "" {
		p, ok := catalog.ParsePurity(spec.Purity)
		if !ok {
			return s, fmt.Errorf("unknown purity %q", spec.Purity)
		}
		s.Purity = p
	}
	if spec.Tier != "" {
		t, ok := catalog.ParseMinerTier(spec.Tier)
		if !ok {
			return s, fmt.Errorf("unknown miner tier %q", spec.Tier)
		}
		s.Tier = t
	}
	if spec.Belt != "" {
		t, ok := catalog.ParseBeltTier(spec.Belt)
		if !ok {
			return s, fmt.Errorf("unknown belt tier %q", spec.Belt)
		}
		s.Belt = t
	}
	if spec.Pipe != "" {
		t, ok := catalog.ParsePipeTier(spec.Pipe)
		if !ok {
			return s, fmt.Errorf("unknown pipe tier %q", spec.Pipe)
		}
		s.Pipe = t
	}
	return s, nil
}

// Describe produces the spec of a live building
func Describe(id string, b building.Building) BuildingSpec {
	spec := BuildingSpec{ID: id, Kind: strings.ToLower(string(b.Kind()))}

	if o, ok := b.(building.Overclockable); ok {
		speed := o.Speed()
		spec.Speed = &speed
	}

	switch v := b.(type) {
	case building.Configurable:
		if r := v.Recipe(); r != nil {
			spec.Recipe = strings.ToLower(string(r.ID))
		}
		spec.Amplifiers = v.Amplifiers()

	case building.Extractor:
		s := v.Settings()
		spec.Resource = strings.ToLower(s.Resource.ID())
		spec.Purity = strings.ToLower(string(s.Purity))
		spec.Tier = strings.ToLower(string(s.Tier))
		spec.Belt = strings.ToLower(string(s.Belt))
		spec.Pipe = strings.ToLower(string(s.Pipe))

	case *building.StorageContainer:
		spec.Resource = strings.ToLower(string(v.Stored()))
		spec.Belt = strings.ToLower(string(v.Belt()))
	}
	return spec
}

// normalize turns "iron_ore" or "iron-ore" into the catalog identity "IRON_ORE"
func normalize(id string) string {
	return strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToUpper(strings.TrimSpace(id)))
}
