package catalog

// Particle accelerator, converter and quantum encoder recipes.

const (
	ParticleAcceleratorPlutoniumPellet   RecipeID = "PLUTONIUM_PELLET"
	ParticleAcceleratorNuclearPasta      RecipeID = "NUCLEAR_PASTA"
	ParticleAcceleratorDiamonds          RecipeID = "DIAMONDS"
	ParticleAcceleratorDarkMatterCrystal RecipeID = "DARK_MATTER_CRYSTAL"
	ParticleAcceleratorFicsonium         RecipeID = "FICSONIUM"

	ConverterIronOreLimestone      RecipeID = "IRON_ORE_LIMESTONE"
	ConverterDarkMatterResidue     RecipeID = "DARK_MATTER_RESIDUE"
	ConverterExcitedPhotonicMatter RecipeID = "EXCITED_PHOTONIC_MATTER"
	ConverterFicsiteIngotAluminum  RecipeID = "FICSITE_INGOT_ALUMINUM"
	ConverterTimeCrystal           RecipeID = "TIME_CRYSTAL"

	QuantumEncoderSuperpositionOscillator RecipeID = "SUPERPOSITION_OSCILLATOR"
	QuantumEncoderNeuralQuantumProcessor  RecipeID = "NEURAL_QUANTUM_PROCESSOR"
	QuantumEncoderAIExpansionServer       RecipeID = "AI_EXPANSION_SERVER"
	QuantumEncoderSyntheticPowerShard     RecipeID = "SYNTHETIC_POWER_SHARD"
)

var particleAcceleratorRecipes = []Recipe{
	{ID: ParticleAcceleratorPlutoniumPellet, Name: "Plutonium Pellet", Building: KindParticleAccelerator, Duration: 60,
		MaterialInputs:  []Ingredient{mat(NonfissileUranium, 100), mat(UraniumWaste, 25)},
		MaterialOutputs: []Ingredient{mat(PlutoniumPellet, 30)}},
	{ID: ParticleAcceleratorNuclearPasta, Name: "Nuclear Pasta", Building: KindParticleAccelerator, Duration: 120,
		MaterialInputs:  []Ingredient{mat(CopperPowder, 200), mat(PressureConversionCube, 1)},
		MaterialOutputs: []Ingredient{mat(NuclearPasta, 1)}},
	{ID: ParticleAcceleratorDiamonds, Name: "Diamonds", Building: KindParticleAccelerator, Duration: 2,
		MaterialInputs:  []Ingredient{mat(Coal, 20)},
		MaterialOutputs: []Ingredient{mat(Diamonds, 1)}},
	{ID: ParticleAcceleratorDarkMatterCrystal, Name: "Dark Matter Crystal", Building: KindParticleAccelerator, Duration: 2,
		MaterialInputs:  []Ingredient{mat(Diamonds, 1)},
		FluidInputs:     []Ingredient{fl(DarkMatterResidue, 5)},
		MaterialOutputs: []Ingredient{mat(DarkMatterCrystal, 1)}},
	{ID: ParticleAcceleratorFicsonium, Name: "Ficsonium", Building: KindParticleAccelerator, Duration: 6,
		MaterialInputs:  []Ingredient{mat(PlutoniumWaste, 1), mat(SingularityCell, 1)},
		FluidInputs:     []Ingredient{fl(DarkMatterResidue, 20)},
		MaterialOutputs: []Ingredient{mat(Ficsonium, 1)}},
}

var converterRecipes = []Recipe{
	{ID: ConverterIronOreLimestone, Name: "Iron Ore (Limestone)", Building: KindConverter, Duration: 6,
		MaterialInputs:  []Ingredient{mat(ReanimatedSAM, 1), mat(Limestone, 24)},
		MaterialOutputs: []Ingredient{mat(IronOre, 12)}},
	{ID: ConverterDarkMatterResidue, Name: "Dark Matter Residue", Building: KindConverter, Duration: 6,
		MaterialInputs: []Ingredient{mat(ReanimatedSAM, 5)},
		FluidOutputs:   []Ingredient{fl(DarkMatterResidue, 10)}},
	{ID: ConverterExcitedPhotonicMatter, Name: "Excited Photonic Matter", Building: KindConverter, Duration: 3,
		FluidOutputs: []Ingredient{fl(ExcitedPhotonicMatter, 10)}},
	{ID: ConverterFicsiteIngotAluminum, Name: "Ficsite Ingot (Aluminum)", Building: KindConverter, Duration: 2,
		MaterialInputs:  []Ingredient{mat(ReanimatedSAM, 2), mat(AluminumIngot, 4)},
		MaterialOutputs: []Ingredient{mat(FicsiteIngot, 1)}},
	{ID: ConverterTimeCrystal, Name: "Time Crystal", Building: KindConverter, Duration: 10,
		MaterialInputs:  []Ingredient{mat(Diamonds, 2)},
		MaterialOutputs: []Ingredient{mat(TimeCrystal, 1)}},
}

var quantumEncoderRecipes = []Recipe{
	{ID: QuantumEncoderSuperpositionOscillator, Name: "Superposition Oscillator", Building: KindQuantumEncoder, Duration: 12,
		MaterialInputs:  []Ingredient{mat(DarkMatterCrystal, 6), mat(CrystalOscillator, 1), mat(AlcladAluminumSheet, 9)},
		FluidInputs:     []Ingredient{fl(ExcitedPhotonicMatter, 25)},
		MaterialOutputs: []Ingredient{mat(SuperpositionOscillator, 1)},
		FluidOutputs:    []Ingredient{fl(DarkMatterResidue, 25)}},
	{ID: QuantumEncoderNeuralQuantumProcessor, Name: "Neural-Quantum Processor", Building: KindQuantumEncoder, Duration: 20,
		MaterialInputs:  []Ingredient{mat(TimeCrystal, 5), mat(Supercomputer, 1), mat(FicsoniumFuelRod, 15)},
		FluidInputs:     []Ingredient{fl(ExcitedPhotonicMatter, 25)},
		MaterialOutputs: []Ingredient{mat(NeuralQuantumProcessor, 1)},
		FluidOutputs:    []Ingredient{fl(DarkMatterResidue, 25)}},
	{ID: QuantumEncoderAIExpansionServer, Name: "AI Expansion Server", Building: KindQuantumEncoder, Duration: 15,
		MaterialInputs:  []Ingredient{mat(MagneticFieldGenerator, 1), mat(NeuralQuantumProcessor, 1), mat(SuperpositionOscillator, 1)},
		FluidInputs:     []Ingredient{fl(ExcitedPhotonicMatter, 25)},
		MaterialOutputs: []Ingredient{mat(AIExpansionServer, 1)},
		FluidOutputs:    []Ingredient{fl(DarkMatterResidue, 25)}},
	{ID: QuantumEncoderSyntheticPowerShard, Name: "Synthetic Power Shard", Building: KindQuantumEncoder, Duration: 12,
		MaterialInputs:  []Ingredient{mat(TimeCrystal, 2), mat(DarkMatterCrystal, 2), mat(QuartzCrystal, 12)},
		FluidInputs:     []Ingredient{fl(ExcitedPhotonicMatter, 12)},
		MaterialOutputs: []Ingredient{mat(PowerShard, 1)},
		FluidOutputs:    []Ingredient{fl(DarkMatterResidue, 12)}},
}
