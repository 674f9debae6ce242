package catalog

// Smelter, foundry, constructor, assembler and manufacturer recipes.
// Amounts are per cycle; Duration is the cycle length in seconds.

const (
	SmelterIronIngot     RecipeID = "IRON_INGOT"
	SmelterCopperIngot   RecipeID = "COPPER_INGOT"
	SmelterCateriumIngot RecipeID = "CATERIUM_INGOT"
	SmelterPureAluminum  RecipeID = "PURE_ALUMINUM_INGOT"

	FoundrySteelIngot       RecipeID = "STEEL_INGOT"
	FoundryAluminumIngot    RecipeID = "ALUMINUM_INGOT"
	FoundryCokeSteelIngot   RecipeID = "COKE_STEEL_INGOT"
	FoundryIronAlloyIngot   RecipeID = "IRON_ALLOY_INGOT"
	FoundryCopperAlloyIngot RecipeID = "COPPER_ALLOY_INGOT"

	ConstructorIronPlate      RecipeID = "IRON_PLATE"
	ConstructorIronRod        RecipeID = "IRON_ROD"
	ConstructorScrew          RecipeID = "SCREW"
	ConstructorWire           RecipeID = "WIRE"
	ConstructorCable          RecipeID = "CABLE"
	ConstructorConcrete       RecipeID = "CONCRETE"
	ConstructorCopperSheet    RecipeID = "COPPER_SHEET"
	ConstructorSteelBeam      RecipeID = "STEEL_BEAM"
	ConstructorSteelPipe      RecipeID = "STEEL_PIPE"
	ConstructorQuickwire      RecipeID = "QUICKWIRE"
	ConstructorQuartzCrystal  RecipeID = "QUARTZ_CRYSTAL"
	ConstructorSilica         RecipeID = "SILICA"
	ConstructorAluminumCasing RecipeID = "ALUMINUM_CASING"
	ConstructorBiomassLeaves  RecipeID = "BIOMASS_LEAVES"
	ConstructorSolidBiofuel   RecipeID = "SOLID_BIOFUEL"
	ConstructorEmptyCanister  RecipeID = "EMPTY_CANISTER"
	ConstructorEmptyFluidTank RecipeID = "EMPTY_FLUID_TANK"
	ConstructorPowerShard     RecipeID = "POWER_SHARD"
	ConstructorCopperPowder   RecipeID = "COPPER_POWDER"
	ConstructorReanimatedSAM  RecipeID = "REANIMATED_SAM"
	ConstructorFicsiteTrigon  RecipeID = "FICSITE_TRIGON"
	ConstructorCastScrew      RecipeID = "CAST_SCREW"

	AssemblerReinforcedIronPlate       RecipeID = "REINFORCED_IRON_PLATE"
	AssemblerRotor                     RecipeID = "ROTOR"
	AssemblerModularFrame              RecipeID = "MODULAR_FRAME"
	AssemblerSmartPlating              RecipeID = "SMART_PLATING"
	AssemblerEncasedIndustrialBeam     RecipeID = "ENCASED_INDUSTRIAL_BEAM"
	AssemblerStator                    RecipeID = "STATOR"
	AssemblerMotor                     RecipeID = "MOTOR"
	AssemblerCircuitBoard              RecipeID = "CIRCUIT_BOARD"
	AssemblerAILimiter                 RecipeID = "AI_LIMITER"
	AssemblerAlcladAluminumSheet       RecipeID = "ALCLAD_ALUMINUM_SHEET"
	AssemblerBlackPowder               RecipeID = "BLACK_POWDER"
	AssemblerVersatileFramework        RecipeID = "VERSATILE_FRAMEWORK"
	AssemblerAutomatedWiring           RecipeID = "AUTOMATED_WIRING"
	AssemblerHeatSink                  RecipeID = "HEAT_SINK"
	AssemblerElectromagneticControlRod RecipeID = "ELECTROMAGNETIC_CONTROL_ROD"
	AssemblerMagneticFieldGenerator    RecipeID = "MAGNETIC_FIELD_GENERATOR"
	AssemblerStitchedIronPlate         RecipeID = "STITCHED_IRON_PLATE"
	AssemblerCompactedCoal             RecipeID = "COMPACTED_COAL"

	ManufacturerComputer            RecipeID = "COMPUTER"
	ManufacturerHeavyModularFrame   RecipeID = "HEAVY_MODULAR_FRAME"
	ManufacturerSupercomputer       RecipeID = "SUPERCOMPUTER"
	ManufacturerHighSpeedConnector  RecipeID = "HIGH_SPEED_CONNECTOR"
	ManufacturerCrystalOscillator   RecipeID = "CRYSTAL_OSCILLATOR"
	ManufacturerModularEngine       RecipeID = "MODULAR_ENGINE"
	ManufacturerAdaptiveControlUnit RecipeID = "ADAPTIVE_CONTROL_UNIT"
	ManufacturerRadioControlUnit    RecipeID = "RADIO_CONTROL_UNIT"
	ManufacturerTurboMotor          RecipeID = "TURBO_MOTOR"
)

var smelterRecipes = []Recipe{
	{ID: SmelterIronIngot, Name: "Iron Ingot", Building: KindSmelter, Duration: 2,
		MaterialInputs: []Ingredient{mat(IronOre, 1)}, MaterialOutputs: []Ingredient{mat(IronIngot, 1)}},
	{ID: SmelterCopperIngot, Name: "Copper Ingot", Building: KindSmelter, Duration: 2,
		MaterialInputs: []Ingredient{mat(CopperOre, 1)}, MaterialOutputs: []Ingredient{mat(CopperIngot, 1)}},
	{ID: SmelterCateriumIngot, Name: "Caterium Ingot", Building: KindSmelter, Duration: 4,
		MaterialInputs: []Ingredient{mat(CateriumOre, 3)}, MaterialOutputs: []Ingredient{mat(CateriumIngot, 1)}},
	{ID: SmelterPureAluminum, Name: "Pure Aluminum Ingot", Building: KindSmelter, Duration: 2, Alternate: true,
		MaterialInputs: []Ingredient{mat(AluminumScrap, 2)}, MaterialOutputs: []Ingredient{mat(AluminumIngot, 1)}},
}

var foundryRecipes = []Recipe{
	{ID: FoundrySteelIngot, Name: "Steel Ingot", Building: KindFoundry, Duration: 4,
		MaterialInputs:  []Ingredient{mat(IronOre, 3), mat(Coal, 3)},
		MaterialOutputs: []Ingredient{mat(SteelIngot, 3)}},
	{ID: FoundryAluminumIngot, Name: "Aluminum Ingot", Building: KindFoundry, Duration: 4,
		MaterialInputs:  []Ingredient{mat(AluminumScrap, 6), mat(Silica, 5)},
		MaterialOutputs: []Ingredient{mat(AluminumIngot, 4)}},
	{ID: FoundryCokeSteelIngot, Name: "Coke Steel Ingot", Building: KindFoundry, Duration: 12, Alternate: true,
		MaterialInputs:  []Ingredient{mat(IronOre, 15), mat(PetroleumCoke, 15)},
		MaterialOutputs: []Ingredient{mat(SteelIngot, 20)}},
	{ID: FoundryIronAlloyIngot, Name: "Iron Alloy Ingot", Building: KindFoundry, Duration: 12, Alternate: true,
		MaterialInputs:  []Ingredient{mat(IronOre, 8), mat(CopperOre, 2)},
		MaterialOutputs: []Ingredient{mat(IronIngot, 15)}},
	{ID: FoundryCopperAlloyIngot, Name: "Copper Alloy Ingot", Building: KindFoundry, Duration: 12, Alternate: true,
		MaterialInputs:  []Ingredient{mat(CopperOre, 10), mat(IronOre, 5)},
		MaterialOutputs: []Ingredient{mat(CopperIngot, 20)}},
}

var constructorRecipes = []Recipe{
	{ID: ConstructorIronPlate, Name: "Iron Plate", Building: KindConstructor, Duration: 6,
		MaterialInputs: []Ingredient{mat(IronIngot, 3)}, MaterialOutputs: []Ingredient{mat(IronPlate, 2)}},
	{ID: ConstructorIronRod, Name: "Iron Rod", Building: KindConstructor, Duration: 4,
		MaterialInputs: []Ingredient{mat(IronIngot, 1)}, MaterialOutputs: []Ingredient{mat(IronRod, 1)}},
	{ID: ConstructorScrew, Name: "Screw", Building: KindConstructor, Duration: 6,
		MaterialInputs: []Ingredient{mat(IronRod, 1)}, MaterialOutputs: []Ingredient{mat(Screw, 4)}},
	{ID: ConstructorWire, Name: "Wire", Building: KindConstructor, Duration: 4,
		MaterialInputs: []Ingredient{mat(CopperIngot, 1)}, MaterialOutputs: []Ingredient{mat(Wire, 2)}},
	{ID: ConstructorCable, Name: "Cable", Building: KindConstructor, Duration: 2,
		MaterialInputs: []Ingredient{mat(Wire, 2)}, MaterialOutputs: []Ingredient{mat(Cable, 1)}},
	{ID: ConstructorConcrete, Name: "Concrete", Building: KindConstructor, Duration: 4,
		MaterialInputs: []Ingredient{mat(Limestone, 3)}, MaterialOutputs: []Ingredient{mat(Concrete, 1)}},
	{ID: ConstructorCopperSheet, Name: "Copper Sheet", Building: KindConstructor, Duration: 6,
		MaterialInputs: []Ingredient{mat(CopperIngot, 2)}, MaterialOutputs: []Ingredient{mat(CopperSheet, 1)}},
	{ID: ConstructorSteelBeam, Name: "Steel Beam", Building: KindConstructor, Duration: 4,
		MaterialInputs: []Ingredient{mat(SteelIngot, 4)}, MaterialOutputs: []Ingredient{mat(SteelBeam, 1)}},
	{ID: ConstructorSteelPipe, Name: "Steel Pipe", Building: KindConstructor, Duration: 6,
		MaterialInputs: []Ingredient{mat(SteelIngot, 3)}, MaterialOutputs: []Ingredient{mat(SteelPipe, 2)}},
	{ID: ConstructorQuickwire, Name: "Quickwire", Building: KindConstructor, Duration: 5,
		MaterialInputs: []Ingredient{mat(CateriumIngot, 1)}, MaterialOutputs: []Ingredient{mat(Quickwire, 5)}},
	{ID: ConstructorQuartzCrystal, Name: "Quartz Crystal", Building: KindConstructor, Duration: 8,
		MaterialInputs: []Ingredient{mat(RawQuartz, 5)}, MaterialOutputs: []Ingredient{mat(QuartzCrystal, 3)}},
	{ID: ConstructorSilica, Name: "Silica", Building: KindConstructor, Duration: 8,
		MaterialInputs: []Ingredient{mat(RawQuartz, 3)}, MaterialOutputs: []Ingredient{mat(Silica, 5)}},
	{ID: ConstructorAluminumCasing, Name: "Aluminum Casing", Building: KindConstructor, Duration: 2,
		MaterialInputs: []Ingredient{mat(AluminumIngot, 3)}, MaterialOutputs: []Ingredient{mat(AluminumCasing, 2)}},
	{ID: ConstructorBiomassLeaves, Name: "Biomass (Leaves)", Building: KindConstructor, Duration: 5,
		MaterialInputs: []Ingredient{mat(Leaves, 10)}, MaterialOutputs: []Ingredient{mat(Biomass, 5)}},
	{ID: ConstructorSolidBiofuel, Name: "Solid Biofuel", Building: KindConstructor, Duration: 4,
		MaterialInputs: []Ingredient{mat(Biomass, 8)}, MaterialOutputs: []Ingredient{mat(SolidBiofuel, 4)}},
	{ID: ConstructorEmptyCanister, Name: "Empty Canister", Building: KindConstructor, Duration: 4,
		MaterialInputs: []Ingredient{mat(Plastic, 2)}, MaterialOutputs: []Ingredient{mat(EmptyCanister, 4)}},
	{ID: ConstructorEmptyFluidTank, Name: "Empty Fluid Tank", Building: KindConstructor, Duration: 1,
		MaterialInputs: []Ingredient{mat(AluminumIngot, 1)}, MaterialOutputs: []Ingredient{mat(EmptyFluidTank, 1)}},
	{ID: ConstructorPowerShard, Name: "Power Shard (1)", Building: KindConstructor, Duration: 8,
		MaterialInputs: []Ingredient{mat(BluePowerSlug, 1)}, MaterialOutputs: []Ingredient{mat(PowerShard, 1)}},
	{ID: ConstructorCopperPowder, Name: "Copper Powder", Building: KindConstructor, Duration: 6,
		MaterialInputs: []Ingredient{mat(CopperIngot, 30)}, MaterialOutputs: []Ingredient{mat(CopperPowder, 5)}},
	{ID: ConstructorReanimatedSAM, Name: "Reanimated SAM", Building: KindConstructor, Duration: 2,
		MaterialInputs: []Ingredient{mat(SAM, 4)}, MaterialOutputs: []Ingredient{mat(ReanimatedSAM, 1)}},
	{ID: ConstructorFicsiteTrigon, Name: "Ficsite Trigon", Building: KindConstructor, Duration: 6,
		MaterialInputs: []Ingredient{mat(FicsiteIngot, 1)}, MaterialOutputs: []Ingredient{mat(FicsiteTrigon, 3)}},
	{ID: ConstructorCastScrew, Name: "Cast Screw", Building: KindConstructor, Duration: 24, Alternate: true,
		MaterialInputs: []Ingredient{mat(IronIngot, 5)}, MaterialOutputs: []Ingredient{mat(Screw, 20)}},
}

var assemblerRecipes = []Recipe{
	{ID: AssemblerReinforcedIronPlate, Name: "Reinforced Iron Plate", Building: KindAssembler, Duration: 12,
		MaterialInputs:  []Ingredient{mat(IronPlate, 6), mat(Screw, 12)},
		MaterialOutputs: []Ingredient{mat(ReinforcedIronPlate, 1)}},
	{ID: AssemblerRotor, Name: "Rotor", Building: KindAssembler, Duration: 15,
		MaterialInputs:  []Ingredient{mat(IronRod, 5), mat(Screw, 25)},
		MaterialOutputs: []Ingredient{mat(Rotor, 1)}},
	{ID: AssemblerModularFrame, Name: "Modular Frame", Building: KindAssembler, Duration: 60,
		MaterialInputs:  []Ingredient{mat(ReinforcedIronPlate, 3), mat(IronRod, 12)},
		MaterialOutputs: []Ingredient{mat(ModularFrame, 2)}},
	{ID: AssemblerSmartPlating, Name: "Smart Plating", Building: KindAssembler, Duration: 30,
		MaterialInputs:  []Ingredient{mat(ReinforcedIronPlate, 1), mat(Rotor, 1)},
		MaterialOutputs: []Ingredient{mat(SmartPlating, 1)}},
	{ID: AssemblerEncasedIndustrialBeam, Name: "Encased Industrial Beam", Building: KindAssembler, Duration: 10,
		MaterialInputs:  []Ingredient{mat(SteelBeam, 3), mat(Concrete, 6)},
		MaterialOutputs: []Ingredient{mat(EncasedIndustrialBeam, 1)}},
	{ID: AssemblerStator, Name: "Stator", Building: KindAssembler, Duration: 12,
		MaterialInputs:  []Ingredient{mat(SteelPipe, 3), mat(Wire, 8)},
		MaterialOutputs: []Ingredient{mat(Stator, 1)}},
	{ID: AssemblerMotor, Name: "Motor", Building: KindAssembler, Duration: 12,
		MaterialInputs:  []Ingredient{mat(Rotor, 2), mat(Stator, 2)},
		MaterialOutputs: []Ingredient{mat(Motor, 1)}},
	{ID: AssemblerCircuitBoard, Name: "Circuit Board", Building: KindAssembler, Duration: 8,
		MaterialInputs:  []Ingredient{mat(CopperSheet, 2), mat(Plastic, 4)},
		MaterialOutputs: []Ingredient{mat(CircuitBoard, 1)}},
	{ID: AssemblerAILimiter, Name: "AI Limiter", Building: KindAssembler, Duration: 12,
		MaterialInputs:  []Ingredient{mat(CopperSheet, 5), mat(Quickwire, 20)},
		MaterialOutputs: []Ingredient{mat(AILimiter, 1)}},
	{ID: AssemblerAlcladAluminumSheet, Name: "Alclad Aluminum Sheet", Building: KindAssembler, Duration: 6,
		MaterialInputs:  []Ingredient{mat(AluminumIngot, 3), mat(CopperIngot, 1)},
		MaterialOutputs: []Ingredient{mat(AlcladAluminumSheet, 3)}},
	{ID: AssemblerBlackPowder, Name: "Black Powder", Building: KindAssembler, Duration: 4,
		MaterialInputs:  []Ingredient{mat(Coal, 1), mat(Sulfur, 1)},
		MaterialOutputs: []Ingredient{mat(BlackPowder, 2)}},
	{ID: AssemblerVersatileFramework, Name: "Versatile Framework", Building: KindAssembler, Duration: 24,
		MaterialInputs:  []Ingredient{mat(ModularFrame, 1), mat(SteelBeam, 12)},
		MaterialOutputs: []Ingredient{mat(VersatileFramework, 2)}},
	{ID: AssemblerAutomatedWiring, Name: "Automated Wiring", Building: KindAssembler, Duration: 24,
		MaterialInputs:  []Ingredient{mat(Stator, 1), mat(Cable, 20)},
		MaterialOutputs: []Ingredient{mat(AutomatedWiring, 1)}},
	{ID: AssemblerHeatSink, Name: "Heat Sink", Building: KindAssembler, Duration: 8,
		MaterialInputs:  []Ingredient{mat(AlcladAluminumSheet, 5), mat(CopperSheet, 3)},
		MaterialOutputs: []Ingredient{mat(HeatSink, 1)}},
	{ID: AssemblerElectromagneticControlRod, Name: "Electromagnetic Control Rod", Building: KindAssembler, Duration: 30,
		MaterialInputs:  []Ingredient{mat(Stator, 3), mat(AILimiter, 2)},
		MaterialOutputs: []Ingredient{mat(ElectromagneticControlRod, 2)}},
	{ID: AssemblerMagneticFieldGenerator, Name: "Magnetic Field Generator", Building: KindAssembler, Duration: 120,
		MaterialInputs:  []Ingredient{mat(VersatileFramework, 5), mat(ElectromagneticControlRod, 2)},
		MaterialOutputs: []Ingredient{mat(MagneticFieldGenerator, 2)}},
	{ID: AssemblerStitchedIronPlate, Name: "Stitched Iron Plate", Building: KindAssembler, Duration: 32, Alternate: true,
		MaterialInputs:  []Ingredient{mat(IronPlate, 10), mat(Wire, 20)},
		MaterialOutputs: []Ingredient{mat(ReinforcedIronPlate, 3)}},
	{ID: AssemblerCompactedCoal, Name: "Compacted Coal", Building: KindAssembler, Duration: 12, Alternate: true,
		MaterialInputs:  []Ingredient{mat(Coal, 5), mat(Sulfur, 5)},
		MaterialOutputs: []Ingredient{mat(CompactedCoal, 5)}},
}

var manufacturerRecipes = []Recipe{
	{ID: ManufacturerComputer, Name: "Computer", Building: KindManufacturer, Duration: 24,
		MaterialInputs:  []Ingredient{mat(CircuitBoard, 4), mat(Cable, 8), mat(Plastic, 16)},
		MaterialOutputs: []Ingredient{mat(Computer, 1)}},
	{ID: ManufacturerHeavyModularFrame, Name: "Heavy Modular Frame", Building: KindManufacturer, Duration: 30,
		MaterialInputs:  []Ingredient{mat(ModularFrame, 5), mat(SteelPipe, 20), mat(EncasedIndustrialBeam, 5), mat(Screw, 120)},
		MaterialOutputs: []Ingredient{mat(HeavyModularFrame, 1)}},
	{ID: ManufacturerSupercomputer, Name: "Supercomputer", Building: KindManufacturer, Duration: 32,
		MaterialInputs:  []Ingredient{mat(Computer, 4), mat(AILimiter, 2), mat(HighSpeedConnector, 3), mat(Plastic, 28)},
		MaterialOutputs: []Ingredient{mat(Supercomputer, 1)}},
	{ID: ManufacturerHighSpeedConnector, Name: "High-Speed Connector", Building: KindManufacturer, Duration: 16,
		MaterialInputs:  []Ingredient{mat(Quickwire, 56), mat(Cable, 10), mat(CircuitBoard, 1)},
		MaterialOutputs: []Ingredient{mat(HighSpeedConnector, 1)}},
	{ID: ManufacturerCrystalOscillator, Name: "Crystal Oscillator", Building: KindManufacturer, Duration: 120,
		MaterialInputs:  []Ingredient{mat(QuartzCrystal, 36), mat(Cable, 28), mat(ReinforcedIronPlate, 5)},
		MaterialOutputs: []Ingredient{mat(CrystalOscillator, 2)}},
	{ID: ManufacturerModularEngine, Name: "Modular Engine", Building: KindManufacturer, Duration: 60,
		MaterialInputs:  []Ingredient{mat(Motor, 2), mat(Rubber, 15), mat(SmartPlating, 2)},
		MaterialOutputs: []Ingredient{mat(ModularEngine, 1)}},
	{ID: ManufacturerAdaptiveControlUnit, Name: "Adaptive Control Unit", Building: KindManufacturer, Duration: 60,
		MaterialInputs:  []Ingredient{mat(AutomatedWiring, 5), mat(CircuitBoard, 5), mat(HeavyModularFrame, 1), mat(Computer, 2)},
		MaterialOutputs: []Ingredient{mat(AdaptiveControlUnit, 1)}},
	{ID: ManufacturerRadioControlUnit, Name: "Radio Control Unit", Building: KindManufacturer, Duration: 48,
		MaterialInputs:  []Ingredient{mat(AluminumCasing, 32), mat(CrystalOscillator, 1), mat(Computer, 2)},
		MaterialOutputs: []Ingredient{mat(RadioControlUnit, 2)}},
	{ID: ManufacturerTurboMotor, Name: "Turbo Motor", Building: KindManufacturer, Duration: 32,
		MaterialInputs:  []Ingredient{mat(CoolingSystem, 4), mat(RadioControlUnit, 2), mat(Motor, 4), mat(Rubber, 24)},
		MaterialOutputs: []Ingredient{mat(TurboMotor, 1)}},
}
