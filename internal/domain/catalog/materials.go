package catalog

// Material is a solid item carried on conveyor belts
type Material string

const (
	// Raw resources
	IronOre     Material = "IRON_ORE"
	CopperOre   Material = "COPPER_ORE"
	Limestone   Material = "LIMESTONE"
	Coal        Material = "COAL"
	CateriumOre Material = "CATERIUM_ORE"
	RawQuartz   Material = "RAW_QUARTZ"
	Sulfur      Material = "SULFUR"
	Bauxite     Material = "BAUXITE"
	Uranium     Material = "URANIUM"
	SAM         Material = "SAM"
	Leaves      Material = "LEAVES"

	// Ingots
	IronIngot     Material = "IRON_INGOT"
	CopperIngot   Material = "COPPER_INGOT"
	CateriumIngot Material = "CATERIUM_INGOT"
	SteelIngot    Material = "STEEL_INGOT"
	AluminumIngot Material = "ALUMINUM_INGOT"
	FicsiteIngot  Material = "FICSITE_INGOT"

	// Standard parts
	IronPlate             Material = "IRON_PLATE"
	IronRod               Material = "IRON_ROD"
	Screw                 Material = "SCREW"
	Wire                  Material = "WIRE"
	Cable                 Material = "CABLE"
	Concrete              Material = "CONCRETE"
	CopperSheet           Material = "COPPER_SHEET"
	SteelBeam             Material = "STEEL_BEAM"
	SteelPipe             Material = "STEEL_PIPE"
	Quickwire             Material = "QUICKWIRE"
	QuartzCrystal         Material = "QUARTZ_CRYSTAL"
	Silica                Material = "SILICA"
	AluminumCasing        Material = "ALUMINUM_CASING"
	AluminumScrap         Material = "ALUMINUM_SCRAP"
	AlcladAluminumSheet   Material = "ALCLAD_ALUMINUM_SHEET"
	CopperPowder          Material = "COPPER_POWDER"
	FicsiteTrigon         Material = "FICSITE_TRIGON"
	ReinforcedIronPlate   Material = "REINFORCED_IRON_PLATE"
	Rotor                 Material = "ROTOR"
	ModularFrame          Material = "MODULAR_FRAME"
	SmartPlating          Material = "SMART_PLATING"
	EncasedIndustrialBeam Material = "ENCASED_INDUSTRIAL_BEAM"
	Stator                Material = "STATOR"
	Motor                 Material = "MOTOR"
	VersatileFramework    Material = "VERSATILE_FRAMEWORK"
	AutomatedWiring       Material = "AUTOMATED_WIRING"
	HeavyModularFrame     Material = "HEAVY_MODULAR_FRAME"
	FusedModularFrame     Material = "FUSED_MODULAR_FRAME"
	ModularEngine         Material = "MODULAR_ENGINE"
	AdaptiveControlUnit   Material = "ADAPTIVE_CONTROL_UNIT"

	// Electronics
	CircuitBoard              Material = "CIRCUIT_BOARD"
	AILimiter                 Material = "AI_LIMITER"
	HighSpeedConnector        Material = "HIGH_SPEED_CONNECTOR"
	Computer                  Material = "COMPUTER"
	Supercomputer             Material = "SUPERCOMPUTER"
	CrystalOscillator         Material = "CRYSTAL_OSCILLATOR"
	RadioControlUnit          Material = "RADIO_CONTROL_UNIT"
	HeatSink                  Material = "HEAT_SINK"
	CoolingSystem             Material = "COOLING_SYSTEM"
	TurboMotor                Material = "TURBO_MOTOR"
	Battery                   Material = "BATTERY"
	ElectromagneticControlRod Material = "ELECTROMAGNETIC_CONTROL_ROD"
	MagneticFieldGenerator    Material = "MAGNETIC_FIELD_GENERATOR"

	// Oil products
	Plastic         Material = "PLASTIC"
	Rubber          Material = "RUBBER"
	PolymerResin    Material = "POLYMER_RESIN"
	PetroleumCoke   Material = "PETROLEUM_COKE"
	BlackPowder     Material = "BLACK_POWDER"
	SmokelessPowder Material = "SMOKELESS_POWDER"
	CompactedCoal   Material = "COMPACTED_COAL"

	// Biomass
	Biomass      Material = "BIOMASS"
	SolidBiofuel Material = "SOLID_BIOFUEL"

	// Containers
	EmptyCanister       Material = "EMPTY_CANISTER"
	EmptyFluidTank      Material = "EMPTY_FLUID_TANK"
	PackagedWater       Material = "PACKAGED_WATER"
	PackagedOil         Material = "PACKAGED_OIL"
	PackagedFuel        Material = "PACKAGED_FUEL"
	PackagedNitrogenGas Material = "PACKAGED_NITROGEN_GAS"

	// Nuclear
	NonfissileUranium      Material = "NONFISSILE_URANIUM"
	UraniumWaste           Material = "URANIUM_WASTE"
	PlutoniumPellet        Material = "PLUTONIUM_PELLET"
	PlutoniumWaste         Material = "PLUTONIUM_WASTE"
	PressureConversionCube Material = "PRESSURE_CONVERSION_CUBE"
	NuclearPasta           Material = "NUCLEAR_PASTA"

	// Exotic
	PowerShard              Material = "POWER_SHARD"
	BluePowerSlug           Material = "BLUE_POWER_SLUG"
	ReanimatedSAM           Material = "REANIMATED_SAM"
	Diamonds                Material = "DIAMONDS"
	DarkMatterCrystal       Material = "DARK_MATTER_CRYSTAL"
	TimeCrystal             Material = "TIME_CRYSTAL"
	SingularityCell         Material = "SINGULARITY_CELL"
	Ficsonium               Material = "FICSONIUM"
	FicsoniumFuelRod        Material = "FICSONIUM_FUEL_ROD"
	SuperpositionOscillator Material = "SUPERPOSITION_OSCILLATOR"
	NeuralQuantumProcessor  Material = "NEURAL_QUANTUM_PROCESSOR"
	AIExpansionServer       Material = "AI_EXPANSION_SERVER"
)

type resourceInfo struct {
	name  string
	color Color
}

var materialInfo = map[Material]resourceInfo{
	IronOre:     {"Iron Ore", Color{161, 98, 83}},
	CopperOre:   {"Copper Ore", Color{187, 110, 75}},
	Limestone:   {"Limestone", Color{199, 187, 164}},
	Coal:        {"Coal", Color{48, 48, 52}},
	CateriumOre: {"Caterium Ore", Color{212, 175, 84}},
	RawQuartz:   {"Raw Quartz", Color{224, 130, 188}},
	Sulfur:      {"Sulfur", Color{228, 212, 58}},
	Bauxite:     {"Bauxite", Color{196, 114, 84}},
	Uranium:     {"Uranium", Color{100, 224, 87}},
	SAM:         {"SAM", Color{154, 72, 205}},
	Leaves:      {"Leaves", Color{96, 150, 64}},

	IronIngot:     {"Iron Ingot", Color{168, 170, 180}},
	CopperIngot:   {"Copper Ingot", Color{200, 120, 80}},
	CateriumIngot: {"Caterium Ingot", Color{230, 190, 90}},
	SteelIngot:    {"Steel Ingot", Color{110, 112, 120}},
	AluminumIngot: {"Aluminum Ingot", Color{206, 210, 214}},
	FicsiteIngot:  {"Ficsite Ingot", Color{214, 160, 58}},

	IronPlate:             {"Iron Plate", Color{150, 152, 160}},
	IronRod:               {"Iron Rod", Color{140, 142, 150}},
	Screw:                 {"Screw", Color{130, 130, 138}},
	Wire:                  {"Wire", Color{210, 130, 70}},
	Cable:                 {"Cable", Color{60, 60, 64}},
	Concrete:              {"Concrete", Color{180, 180, 176}},
	CopperSheet:           {"Copper Sheet", Color{205, 125, 85}},
	SteelBeam:             {"Steel Beam", Color{90, 92, 100}},
	SteelPipe:             {"Steel Pipe", Color{100, 102, 110}},
	Quickwire:             {"Quickwire", Color{235, 195, 95}},
	QuartzCrystal:         {"Quartz Crystal", Color{240, 160, 210}},
	Silica:                {"Silica", Color{236, 230, 236}},
	AluminumCasing:        {"Aluminum Casing", Color{190, 196, 204}},
	AluminumScrap:         {"Aluminum Scrap", Color{170, 176, 184}},
	AlcladAluminumSheet:   {"Alclad Aluminum Sheet", Color{200, 204, 212}},
	CopperPowder:          {"Copper Powder", Color{190, 105, 70}},
	FicsiteTrigon:         {"Ficsite Trigon", Color{220, 170, 60}},
	ReinforcedIronPlate:   {"Reinforced Iron Plate", Color{120, 124, 134}},
	Rotor:                 {"Rotor", Color{130, 134, 140}},
	ModularFrame:          {"Modular Frame", Color{110, 116, 124}},
	SmartPlating:          {"Smart Plating", Color{80, 120, 180}},
	EncasedIndustrialBeam: {"Encased Industrial Beam", Color{150, 150, 140}},
	Stator:                {"Stator", Color{140, 110, 80}},
	Motor:                 {"Motor", Color{120, 100, 80}},
	VersatileFramework:    {"Versatile Framework", Color{90, 150, 190}},
	AutomatedWiring:       {"Automated Wiring", Color{70, 160, 120}},
	HeavyModularFrame:     {"Heavy Modular Frame", Color{80, 84, 92}},
	FusedModularFrame:     {"Fused Modular Frame", Color{160, 200, 230}},
	ModularEngine:         {"Modular Engine", Color{180, 150, 80}},
	AdaptiveControlUnit:   {"Adaptive Control Unit", Color{80, 180, 160}},

	CircuitBoard:              {"Circuit Board", Color{60, 140, 70}},
	AILimiter:                 {"AI Limiter", Color{200, 160, 80}},
	HighSpeedConnector:        {"High-Speed Connector", Color{70, 110, 200}},
	Computer:                  {"Computer", Color{90, 100, 120}},
	Supercomputer:             {"Supercomputer", Color{60, 70, 150}},
	CrystalOscillator:         {"Crystal Oscillator", Color{230, 150, 200}},
	RadioControlUnit:          {"Radio Control Unit", Color{170, 90, 90}},
	HeatSink:                  {"Heat Sink", Color{180, 190, 200}},
	CoolingSystem:             {"Cooling System", Color{110, 170, 220}},
	TurboMotor:                {"Turbo Motor", Color{200, 110, 60}},
	Battery:                   {"Battery", Color{110, 200, 80}},
	ElectromagneticControlRod: {"Electromagnetic Control Rod", Color{150, 150, 200}},
	MagneticFieldGenerator:    {"Magnetic Field Generator", Color{120, 90, 200}},

	Plastic:         {"Plastic", Color{80, 150, 220}},
	Rubber:          {"Rubber", Color{40, 40, 40}},
	PolymerResin:    {"Polymer Resin", Color{60, 60, 90}},
	PetroleumCoke:   {"Petroleum Coke", Color{50, 46, 44}},
	BlackPowder:     {"Black Powder", Color{30, 30, 30}},
	SmokelessPowder: {"Smokeless Powder", Color{170, 60, 60}},
	CompactedCoal:   {"Compacted Coal", Color{36, 34, 40}},

	Biomass:      {"Biomass", Color{130, 170, 80}},
	SolidBiofuel: {"Solid Biofuel", Color{90, 140, 60}},

	EmptyCanister:       {"Empty Canister", Color{180, 180, 190}},
	EmptyFluidTank:      {"Empty Fluid Tank", Color{190, 190, 200}},
	PackagedWater:       {"Packaged Water", Color{80, 140, 230}},
	PackagedOil:         {"Packaged Oil", Color{60, 40, 60}},
	PackagedFuel:        {"Packaged Fuel", Color{220, 140, 50}},
	PackagedNitrogenGas: {"Packaged Nitrogen Gas", Color{160, 170, 180}},

	NonfissileUranium:      {"Non-fissile Uranium", Color{90, 190, 80}},
	UraniumWaste:           {"Uranium Waste", Color{70, 160, 60}},
	PlutoniumPellet:        {"Plutonium Pellet", Color{200, 80, 60}},
	PlutoniumWaste:         {"Plutonium Waste", Color{170, 60, 40}},
	PressureConversionCube: {"Pressure Conversion Cube", Color{120, 180, 200}},
	NuclearPasta:           {"Nuclear Pasta", Color{220, 100, 160}},

	PowerShard:              {"Power Shard", Color{80, 140, 255}},
	BluePowerSlug:           {"Blue Power Slug", Color{60, 120, 240}},
	ReanimatedSAM:           {"Reanimated SAM", Color{170, 90, 220}},
	Diamonds:                {"Diamonds", Color{210, 240, 250}},
	DarkMatterCrystal:       {"Dark Matter Crystal", Color{120, 40, 160}},
	TimeCrystal:             {"Time Crystal", Color{140, 220, 240}},
	SingularityCell:         {"Singularity Cell", Color{40, 20, 60}},
	Ficsonium:               {"Ficsonium", Color{230, 60, 90}},
	FicsoniumFuelRod:        {"Ficsonium Fuel Rod", Color{210, 50, 80}},
	SuperpositionOscillator: {"Superposition Oscillator", Color{170, 120, 230}},
	NeuralQuantumProcessor:  {"Neural-Quantum Processor", Color{150, 90, 220}},
	AIExpansionServer:       {"AI Expansion Server", Color{110, 70, 200}},
}

// DisplayName returns the in-game name of the material
func (m Material) DisplayName() string {
	if info, ok := materialInfo[m]; ok {
		return info.name
	}
	return string(m)
}

// Color returns the display color of the material
func (m Material) Color() Color {
	return materialInfo[m].color
}

// Valid returns true if the material is part of the catalog
func (m Material) Valid() bool {
	_, ok := materialInfo[m]
	return ok
}

// Ores lists the materials a miner can extract
var Ores = []Material{IronOre, CopperOre, Limestone, Coal, CateriumOre, RawQuartz, Sulfur, Bauxite, Uranium, SAM}

// IsOre returns true if the material can be mined from a resource node
func IsOre(m Material) bool {
	for _, ore := range Ores {
		if ore == m {
			return true
		}
	}
	return false
}
