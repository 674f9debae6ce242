package catalog

// Refinery, packager and blender recipes. Fluid amounts are cubic meters per cycle.

const (
	RefineryPlastic         RecipeID = "PLASTIC"
	RefineryRubber          RecipeID = "RUBBER"
	RefineryFuel            RecipeID = "FUEL"
	RefineryResidualFuel    RecipeID = "RESIDUAL_FUEL"
	RefineryResidualPlastic RecipeID = "RESIDUAL_PLASTIC"
	RefineryResidualRubber  RecipeID = "RESIDUAL_RUBBER"
	RefineryPetroleumCoke   RecipeID = "PETROLEUM_COKE"
	RefineryAluminaSolution RecipeID = "ALUMINA_SOLUTION"
	RefineryAluminumScrap   RecipeID = "ALUMINUM_SCRAP"
	RefinerySulfuricAcid    RecipeID = "SULFURIC_ACID"
	RefinerySmokelessPowder RecipeID = "SMOKELESS_POWDER"
	RefineryLiquidBiofuel   RecipeID = "LIQUID_BIOFUEL"
	RefineryTurbofuel       RecipeID = "TURBOFUEL"
	RefineryHeavyOilResidue RecipeID = "HEAVY_OIL_RESIDUE"

	PackagerPackagedWater        RecipeID = "PACKAGED_WATER"
	PackagerUnpackageWater       RecipeID = "UNPACKAGE_WATER"
	PackagerPackagedOil          RecipeID = "PACKAGED_OIL"
	PackagerUnpackageOil         RecipeID = "UNPACKAGE_OIL"
	PackagerPackagedFuel         RecipeID = "PACKAGED_FUEL"
	PackagerUnpackageFuel        RecipeID = "UNPACKAGE_FUEL"
	PackagerPackagedNitrogenGas  RecipeID = "PACKAGED_NITROGEN_GAS"
	PackagerUnpackageNitrogenGas RecipeID = "UNPACKAGE_NITROGEN_GAS"

	BlenderBattery           RecipeID = "BATTERY"
	BlenderNitricAcid        RecipeID = "NITRIC_ACID"
	BlenderCoolingSystem     RecipeID = "COOLING_SYSTEM"
	BlenderFusedModularFrame RecipeID = "FUSED_MODULAR_FRAME"
	BlenderTurboBlendFuel    RecipeID = "TURBO_BLEND_FUEL"
)

var refineryRecipes = []Recipe{
	{ID: RefineryPlastic, Name: "Plastic", Building: KindRefinery, Duration: 6,
		FluidInputs:     []Ingredient{fl(CrudeOil, 3)},
		MaterialOutputs: []Ingredient{mat(Plastic, 2)}, FluidOutputs: []Ingredient{fl(HeavyOilResidue, 1)}},
	{ID: RefineryRubber, Name: "Rubber", Building: KindRefinery, Duration: 6,
		FluidInputs:     []Ingredient{fl(CrudeOil, 3)},
		MaterialOutputs: []Ingredient{mat(Rubber, 2)}, FluidOutputs: []Ingredient{fl(HeavyOilResidue, 2)}},
	{ID: RefineryFuel, Name: "Fuel", Building: KindRefinery, Duration: 6,
		FluidInputs:     []Ingredient{fl(CrudeOil, 6)},
		MaterialOutputs: []Ingredient{mat(PolymerResin, 3)}, FluidOutputs: []Ingredient{fl(Fuel, 4)}},
	{ID: RefineryResidualFuel, Name: "Residual Fuel", Building: KindRefinery, Duration: 6,
		FluidInputs:  []Ingredient{fl(HeavyOilResidue, 6)},
		FluidOutputs: []Ingredient{fl(Fuel, 4)}},
	{ID: RefineryResidualPlastic, Name: "Residual Plastic", Building: KindRefinery, Duration: 6,
		MaterialInputs: []Ingredient{mat(PolymerResin, 6)}, FluidInputs: []Ingredient{fl(Water, 2)},
		MaterialOutputs: []Ingredient{mat(Plastic, 2)}},
	{ID: RefineryResidualRubber, Name: "Residual Rubber", Building: KindRefinery, Duration: 6,
		MaterialInputs: []Ingredient{mat(PolymerResin, 4)}, FluidInputs: []Ingredient{fl(Water, 4)},
		MaterialOutputs: []Ingredient{mat(Rubber, 2)}},
	{ID: RefineryPetroleumCoke, Name: "Petroleum Coke", Building: KindRefinery, Duration: 6,
		FluidInputs:     []Ingredient{fl(HeavyOilResidue, 4)},
		MaterialOutputs: []Ingredient{mat(PetroleumCoke, 12)}},
	{ID: RefineryAluminaSolution, Name: "Alumina Solution", Building: KindRefinery, Duration: 6,
		MaterialInputs: []Ingredient{mat(Bauxite, 12)}, FluidInputs: []Ingredient{fl(Water, 18)},
		MaterialOutputs: []Ingredient{mat(Silica, 5)}, FluidOutputs: []Ingredient{fl(AluminaSolution, 12)}},
	{ID: RefineryAluminumScrap, Name: "Aluminum Scrap", Building: KindRefinery, Duration: 1,
		MaterialInputs: []Ingredient{mat(Coal, 2)}, FluidInputs: []Ingredient{fl(AluminaSolution, 4)},
		MaterialOutputs: []Ingredient{mat(AluminumScrap, 6)}, FluidOutputs: []Ingredient{fl(Water, 2)}},
	{ID: RefinerySulfuricAcid, Name: "Sulfuric Acid", Building: KindRefinery, Duration: 6,
		MaterialInputs: []Ingredient{mat(Sulfur, 5)}, FluidInputs: []Ingredient{fl(Water, 5)},
		FluidOutputs: []Ingredient{fl(SulfuricAcid, 5)}},
	{ID: RefinerySmokelessPowder, Name: "Smokeless Powder", Building: KindRefinery, Duration: 6,
		MaterialInputs: []Ingredient{mat(BlackPowder, 2)}, FluidInputs: []Ingredient{fl(HeavyOilResidue, 1)},
		MaterialOutputs: []Ingredient{mat(SmokelessPowder, 2)}},
	{ID: RefineryLiquidBiofuel, Name: "Liquid Biofuel", Building: KindRefinery, Duration: 4,
		MaterialInputs: []Ingredient{mat(SolidBiofuel, 6)}, FluidInputs: []Ingredient{fl(Water, 3)},
		FluidOutputs: []Ingredient{fl(LiquidBiofuel, 4)}},
	{ID: RefineryTurbofuel, Name: "Turbofuel", Building: KindRefinery, Duration: 16, Alternate: true,
		MaterialInputs: []Ingredient{mat(CompactedCoal, 4)}, FluidInputs: []Ingredient{fl(Fuel, 6)},
		FluidOutputs: []Ingredient{fl(Turbofuel, 5)}},
	{ID: RefineryHeavyOilResidue, Name: "Heavy Oil Residue", Building: KindRefinery, Duration: 6, Alternate: true,
		FluidInputs:     []Ingredient{fl(CrudeOil, 3)},
		MaterialOutputs: []Ingredient{mat(PolymerResin, 2)}, FluidOutputs: []Ingredient{fl(HeavyOilResidue, 4)}},
}

var packagerRecipes = []Recipe{
	{ID: PackagerPackagedWater, Name: "Packaged Water", Building: KindPackager, Duration: 2,
		MaterialInputs: []Ingredient{mat(EmptyCanister, 2)}, FluidInputs: []Ingredient{fl(Water, 2)},
		MaterialOutputs: []Ingredient{mat(PackagedWater, 2)}},
	{ID: PackagerUnpackageWater, Name: "Unpackage Water", Building: KindPackager, Duration: 1,
		MaterialInputs:  []Ingredient{mat(PackagedWater, 2)},
		MaterialOutputs: []Ingredient{mat(EmptyCanister, 2)}, FluidOutputs: []Ingredient{fl(Water, 2)}},
	{ID: PackagerPackagedOil, Name: "Packaged Oil", Building: KindPackager, Duration: 4,
		MaterialInputs: []Ingredient{mat(EmptyCanister, 2)}, FluidInputs: []Ingredient{fl(CrudeOil, 2)},
		MaterialOutputs: []Ingredient{mat(PackagedOil, 2)}},
	{ID: PackagerUnpackageOil, Name: "Unpackage Oil", Building: KindPackager, Duration: 2,
		MaterialInputs:  []Ingredient{mat(PackagedOil, 2)},
		MaterialOutputs: []Ingredient{mat(EmptyCanister, 2)}, FluidOutputs: []Ingredient{fl(CrudeOil, 2)}},
	{ID: PackagerPackagedFuel, Name: "Packaged Fuel", Building: KindPackager, Duration: 3,
		MaterialInputs: []Ingredient{mat(EmptyCanister, 2)}, FluidInputs: []Ingredient{fl(Fuel, 2)},
		MaterialOutputs: []Ingredient{mat(PackagedFuel, 2)}},
	{ID: PackagerUnpackageFuel, Name: "Unpackage Fuel", Building: KindPackager, Duration: 2,
		MaterialInputs:  []Ingredient{mat(PackagedFuel, 2)},
		MaterialOutputs: []Ingredient{mat(EmptyCanister, 2)}, FluidOutputs: []Ingredient{fl(Fuel, 2)}},
	{ID: PackagerPackagedNitrogenGas, Name: "Packaged Nitrogen Gas", Building: KindPackager, Duration: 1,
		MaterialInputs: []Ingredient{mat(EmptyFluidTank, 1)}, FluidInputs: []Ingredient{fl(NitrogenGas, 4)},
		MaterialOutputs: []Ingredient{mat(PackagedNitrogenGas, 1)}},
	{ID: PackagerUnpackageNitrogenGas, Name: "Unpackage Nitrogen Gas", Building: KindPackager, Duration: 1,
		MaterialInputs:  []Ingredient{mat(PackagedNitrogenGas, 1)},
		MaterialOutputs: []Ingredient{mat(EmptyFluidTank, 1)}, FluidOutputs: []Ingredient{fl(NitrogenGas, 4)}},
}

var blenderRecipes = []Recipe{
	{ID: BlenderBattery, Name: "Battery", Building: KindBlender, Duration: 3,
		MaterialInputs:  []Ingredient{mat(AluminumCasing, 1)},
		FluidInputs:     []Ingredient{fl(SulfuricAcid, 2.5), fl(AluminaSolution, 2)},
		MaterialOutputs: []Ingredient{mat(Battery, 1)}, FluidOutputs: []Ingredient{fl(Water, 1.5)}},
	{ID: BlenderNitricAcid, Name: "Nitric Acid", Building: KindBlender, Duration: 6,
		MaterialInputs: []Ingredient{mat(IronPlate, 1)},
		FluidInputs:    []Ingredient{fl(NitrogenGas, 12), fl(Water, 3)},
		FluidOutputs:   []Ingredient{fl(NitricAcid, 3)}},
	{ID: BlenderCoolingSystem, Name: "Cooling System", Building: KindBlender, Duration: 10,
		MaterialInputs:  []Ingredient{mat(HeatSink, 2), mat(Rubber, 2)},
		FluidInputs:     []Ingredient{fl(Water, 5), fl(NitrogenGas, 25)},
		MaterialOutputs: []Ingredient{mat(CoolingSystem, 1)}},
	{ID: BlenderFusedModularFrame, Name: "Fused Modular Frame", Building: KindBlender, Duration: 40,
		MaterialInputs:  []Ingredient{mat(HeavyModularFrame, 1), mat(AluminumCasing, 50)},
		FluidInputs:     []Ingredient{fl(NitrogenGas, 25)},
		MaterialOutputs: []Ingredient{mat(FusedModularFrame, 1)}},
	{ID: BlenderTurboBlendFuel, Name: "Turbo Blend Fuel", Building: KindBlender, Duration: 8, Alternate: true,
		MaterialInputs: []Ingredient{mat(Sulfur, 3), mat(PetroleumCoke, 3)},
		FluidInputs:    []Ingredient{fl(Fuel, 2), fl(HeavyOilResidue, 4)},
		FluidOutputs:   []Ingredient{fl(Turbofuel, 6)}},
}
