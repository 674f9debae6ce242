package catalog

// BuildingKind names a machine type that can be placed in a production graph
type BuildingKind string

const (
	KindConstructor           BuildingKind = "CONSTRUCTOR"
	KindSmelter               BuildingKind = "SMELTER"
	KindFoundry               BuildingKind = "FOUNDRY"
	KindAssembler             BuildingKind = "ASSEMBLER"
	KindManufacturer          BuildingKind = "MANUFACTURER"
	KindRefinery              BuildingKind = "REFINERY"
	KindPackager              BuildingKind = "PACKAGER"
	KindBlender               BuildingKind = "BLENDER"
	KindParticleAccelerator   BuildingKind = "PARTICLE_ACCELERATOR"
	KindConverter             BuildingKind = "CONVERTER"
	KindQuantumEncoder        BuildingKind = "QUANTUM_ENCODER"
	KindMiner                 BuildingKind = "MINER"
	KindWaterExtractor        BuildingKind = "WATER_EXTRACTOR"
	KindOilExtractor          BuildingKind = "OIL_EXTRACTOR"
	KindResourceWellExtractor BuildingKind = "RESOURCE_WELL_EXTRACTOR"
	KindSplitter              BuildingKind = "SPLITTER"
	KindMerger                BuildingKind = "MERGER"
	KindPipelineJunction      BuildingKind = "PIPELINE_JUNCTION"
	KindStorageContainer      BuildingKind = "STORAGE_CONTAINER"
	KindAwesomeSink           BuildingKind = "AWESOME_SINK"
)

// PortLayout fixes how many material and fluid ports a building kind exposes.
// Material ports are numbered first on each side, fluid ports after them.
type PortLayout struct {
	MaterialInputs  int
	FluidInputs     int
	MaterialOutputs int
	FluidOutputs    int
}

// Inputs returns the total number of input ports
func (l PortLayout) Inputs() int { return l.MaterialInputs + l.FluidInputs }

// Outputs returns the total number of output ports
func (l PortLayout) Outputs() int { return l.MaterialOutputs + l.FluidOutputs }

// BuildingSpec is the static description of a building kind
type BuildingSpec struct {
	Kind           BuildingKind
	Name           string
	HeaderImage    string
	Layout         PortLayout
	AmplifierSlots int
	BasePowerMW    float64
	UsesRecipe     bool
}

var buildingSpecs = map[BuildingKind]BuildingSpec{
	KindConstructor: {
		Kind: KindConstructor, Name: "Constructor", HeaderImage: "constructor.png",
		Layout: PortLayout{MaterialInputs: 1, MaterialOutputs: 1}, AmplifierSlots: 1, BasePowerMW: 4, UsesRecipe: true,
	},
	KindSmelter: {
		Kind: KindSmelter, Name: "Smelter", HeaderImage: "smelter.png",
		Layout: PortLayout{MaterialInputs: 1, MaterialOutputs: 1}, AmplifierSlots: 1, BasePowerMW: 4, UsesRecipe: true,
	},
	KindFoundry: {
		Kind: KindFoundry, Name: "Foundry", HeaderImage: "foundry.png",
		Layout: PortLayout{MaterialInputs: 2, MaterialOutputs: 1}, AmplifierSlots: 2, BasePowerMW: 16, UsesRecipe: true,
	},
	KindAssembler: {
		Kind: KindAssembler, Name: "Assembler", HeaderImage: "assembler.png",
		Layout: PortLayout{MaterialInputs: 2, MaterialOutputs: 1}, AmplifierSlots: 2, BasePowerMW: 15, UsesRecipe: true,
	},
	KindManufacturer: {
		Kind: KindManufacturer, Name: "Manufacturer", HeaderImage: "manufacturer.png",
		Layout: PortLayout{MaterialInputs: 4, MaterialOutputs: 1}, AmplifierSlots: 4, BasePowerMW: 55, UsesRecipe: true,
	},
	KindRefinery: {
		Kind: KindRefinery, Name: "Refinery", HeaderImage: "refinery.png",
		Layout:         PortLayout{MaterialInputs: 1, FluidInputs: 1, MaterialOutputs: 1, FluidOutputs: 1},
		AmplifierSlots: 2, BasePowerMW: 30, UsesRecipe: true,
	},
	KindPackager: {
		Kind: KindPackager, Name: "Packager", HeaderImage: "packager.png",
		Layout:         PortLayout{MaterialInputs: 1, FluidInputs: 1, MaterialOutputs: 1, FluidOutputs: 1},
		AmplifierSlots: 0, BasePowerMW: 10, UsesRecipe: true,
	},
	KindBlender: {
		Kind: KindBlender, Name: "Blender", HeaderImage: "blender.png",
		Layout:         PortLayout{MaterialInputs: 2, FluidInputs: 2, MaterialOutputs: 1, FluidOutputs: 1},
		AmplifierSlots: 4, BasePowerMW: 75, UsesRecipe: true,
	},
	KindParticleAccelerator: {
		Kind: KindParticleAccelerator, Name: "Particle Accelerator", HeaderImage: "particle_accelerator.png",
		Layout:         PortLayout{MaterialInputs: 2, FluidInputs: 1, MaterialOutputs: 1},
		AmplifierSlots: 4, BasePowerMW: 500, UsesRecipe: true,
	},
	KindConverter: {
		Kind: KindConverter, Name: "Converter", HeaderImage: "converter.png",
		Layout:         PortLayout{MaterialInputs: 2, MaterialOutputs: 1, FluidOutputs: 1},
		AmplifierSlots: 2, BasePowerMW: 250, UsesRecipe: true,
	},
	KindQuantumEncoder: {
		Kind: KindQuantumEncoder, Name: "Quantum Encoder", HeaderImage: "quantum_encoder.png",
		Layout:         PortLayout{MaterialInputs: 3, FluidInputs: 1, MaterialOutputs: 1, FluidOutputs: 1},
		AmplifierSlots: 4, BasePowerMW: 1000, UsesRecipe: true,
	},
	KindMiner: {
		Kind: KindMiner, Name: "Miner", HeaderImage: "miner.png",
		Layout: PortLayout{MaterialOutputs: 1},
	},
	KindWaterExtractor: {
		Kind: KindWaterExtractor, Name: "Water Extractor", HeaderImage: "water_extractor.png",
		Layout: PortLayout{FluidOutputs: 1}, BasePowerMW: 20,
	},
	KindOilExtractor: {
		Kind: KindOilExtractor, Name: "Oil Extractor", HeaderImage: "oil_extractor.png",
		Layout: PortLayout{FluidOutputs: 1}, BasePowerMW: 40,
	},
	KindResourceWellExtractor: {
		Kind: KindResourceWellExtractor, Name: "Resource Well Extractor", HeaderImage: "resource_well_extractor.png",
		Layout: PortLayout{FluidOutputs: 1},
	},
	KindSplitter: {
		Kind: KindSplitter, Name: "Conveyor Splitter", HeaderImage: "splitter.png",
		Layout: PortLayout{MaterialInputs: 1, MaterialOutputs: 3},
	},
	KindMerger: {
		Kind: KindMerger, Name: "Conveyor Merger", HeaderImage: "merger.png",
		Layout: PortLayout{MaterialInputs: 3, MaterialOutputs: 1},
	},
	KindPipelineJunction: {
		Kind: KindPipelineJunction, Name: "Pipeline Junction", HeaderImage: "pipeline_junction.png",
		Layout: PortLayout{FluidInputs: 4, FluidOutputs: 4},
	},
	KindStorageContainer: {
		Kind: KindStorageContainer, Name: "Storage Container", HeaderImage: "storage_container.png",
		Layout: PortLayout{MaterialInputs: 1, MaterialOutputs: 1},
	},
	KindAwesomeSink: {
		Kind: KindAwesomeSink, Name: "AWESOME Sink", HeaderImage: "awesome_sink.png",
		Layout: PortLayout{MaterialInputs: 1}, BasePowerMW: 30,
	},
}

// AllKinds lists every building kind in menu order
var AllKinds = []BuildingKind{
	KindMiner, KindWaterExtractor, KindOilExtractor, KindResourceWellExtractor,
	KindSmelter, KindFoundry, KindConstructor, KindAssembler, KindManufacturer,
	KindRefinery, KindPackager, KindBlender, KindParticleAccelerator, KindConverter, KindQuantumEncoder,
	KindSplitter, KindMerger, KindPipelineJunction, KindStorageContainer, KindAwesomeSink,
}

// LookupBuilding returns the static description of a building kind
func LookupBuilding(kind BuildingKind) (BuildingSpec, bool) {
	spec, ok := buildingSpecs[kind]
	return spec, ok
}

// MustBuilding returns the static description of a building kind and panics
// for kinds outside the catalog
func MustBuilding(kind BuildingKind) BuildingSpec {
	spec, ok := buildingSpecs[kind]
	if !ok {
		panic(&ErrUnknownBuildingKind{Kind: string(kind)})
	}
	return spec
}

// ParseBuildingKind resolves a kind name, accepting either the constant value
// or the lower-case form used in plan files ("smelter", "water_extractor")
func ParseBuildingKind(name string) (BuildingKind, error) {
	kind := BuildingKind(upper(name))
	if _, ok := buildingSpecs[kind]; !ok {
		return "", &ErrUnknownBuildingKind{Kind: name}
	}
	return kind, nil
}
