package plan

import "github.com/andrescamacho/factoryplan-go/internal/domain/catalog"

// FillTransport applies a default belt to miners and storage containers and a
// default pipe to fluid extractors whose specs name none. Empty defaults and
// specs of unknown kinds are left alone.
func (d *Document) FillTransport(belt, pipe string) {
	for i := range d.Buildings {
		spec := &d.Buildings[i]
		kind, err := catalog.ParseBuildingKind(spec.Kind)
		if err != nil {
			continue
		}
		switch kind {
		case catalog.KindMiner, catalog.KindStorageContainer:
			if spec.Belt == "" {
				spec.Belt = belt
			}
		case catalog.KindWaterExtractor, catalog.KindOilExtractor, catalog.KindResourceWellExtractor:
			if spec.Pipe == "" {
				spec.Pipe = pipe
			}
		}
	}
}
