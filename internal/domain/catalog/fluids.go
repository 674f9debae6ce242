package catalog

// Fluid is a resource carried in pipelines
type Fluid string

const (
	Water                 Fluid = "WATER"
	CrudeOil              Fluid = "CRUDE_OIL"
	HeavyOilResidue       Fluid = "HEAVY_OIL_RESIDUE"
	Fuel                  Fluid = "FUEL"
	Turbofuel             Fluid = "TURBOFUEL"
	LiquidBiofuel         Fluid = "LIQUID_BIOFUEL"
	AluminaSolution       Fluid = "ALUMINA_SOLUTION"
	SulfuricAcid          Fluid = "SULFURIC_ACID"
	NitrogenGas           Fluid = "NITROGEN_GAS"
	NitricAcid            Fluid = "NITRIC_ACID"
	DarkMatterResidue     Fluid = "DARK_MATTER_RESIDUE"
	ExcitedPhotonicMatter Fluid = "EXCITED_PHOTONIC_MATTER"
)

var fluidInfo = map[Fluid]resourceInfo{
	Water:                 {"Water", Color{60, 130, 230}},
	CrudeOil:              {"Crude Oil", Color{30, 20, 30}},
	HeavyOilResidue:       {"Heavy Oil Residue", Color{120, 40, 110}},
	Fuel:                  {"Fuel", Color{230, 140, 40}},
	Turbofuel:             {"Turbofuel", Color{220, 70, 40}},
	LiquidBiofuel:         {"Liquid Biofuel", Color{120, 200, 70}},
	AluminaSolution:       {"Alumina Solution", Color{200, 200, 210}},
	SulfuricAcid:          {"Sulfuric Acid", Color{230, 230, 60}},
	NitrogenGas:           {"Nitrogen Gas", Color{170, 180, 190}},
	NitricAcid:            {"Nitric Acid", Color{230, 240, 180}},
	DarkMatterResidue:     {"Dark Matter Residue", Color{110, 40, 150}},
	ExcitedPhotonicMatter: {"Excited Photonic Matter", Color{240, 240, 255}},
}

// DisplayName returns the in-game name of the fluid
func (f Fluid) DisplayName() string {
	if info, ok := fluidInfo[f]; ok {
		return info.name
	}
	return string(f)
}

// Color returns the display color of the fluid
func (f Fluid) Color() Color {
	return fluidInfo[f].color
}

// Valid returns true if the fluid is part of the catalog
func (f Fluid) Valid() bool {
	_, ok := fluidInfo[f]
	return ok
}

// WellFluids lists the fluids a resource well can yield
var WellFluids = []Fluid{Water, CrudeOil, NitrogenGas}
