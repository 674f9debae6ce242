package catalog

// Purity is the quality of a resource node
type Purity string

const (
	PurityImpure Purity = "IMPURE"
	PurityNormal Purity = "NORMAL"
	PurityPure   Purity = "PURE"
)

// Multiplier returns the extraction rate multiplier of the node purity
func (p Purity) Multiplier() float64 {
	switch p {
	case PurityImpure:
		return 0.5
	case PurityNormal:
		return 1
	case PurityPure:
		return 2
	default:
		return 0
	}
}

// ParsePurity resolves a purity name
func ParsePurity(name string) (Purity, bool) {
	p := Purity(upper(name))
	return p, p.Multiplier() > 0
}

// MinerTier is the mark of a miner
type MinerTier string

const (
	MinerMk1 MinerTier = "MK1"
	MinerMk2 MinerTier = "MK2"
	MinerMk3 MinerTier = "MK3"
)

var minerTiers = map[MinerTier]struct {
	rate  float64
	power float64
}{
	MinerMk1: {60, 5},
	MinerMk2: {120, 15},
	MinerMk3: {240, 45},
}

// BaseRate returns items per minute on a normal node at 100% speed
func (t MinerTier) BaseRate() float64 { return minerTiers[t].rate }

// PowerMW returns the base power draw of the miner mark
func (t MinerTier) PowerMW() float64 { return minerTiers[t].power }

// ParseMinerTier resolves a miner mark name
func ParseMinerTier(name string) (MinerTier, bool) {
	t := MinerTier(upper(name))
	_, ok := minerTiers[t]
	return t, ok
}

// BeltTier is the mark of a conveyor belt
type BeltTier string

const (
	BeltMk1 BeltTier = "MK1"
	BeltMk2 BeltTier = "MK2"
	BeltMk3 BeltTier = "MK3"
	BeltMk4 BeltTier = "MK4"
	BeltMk5 BeltTier = "MK5"
	BeltMk6 BeltTier = "MK6"
)

var beltCapacity = map[BeltTier]float64{
	BeltMk1: 60,
	BeltMk2: 120,
	BeltMk3: 270,
	BeltMk4: 480,
	BeltMk5: 780,
	BeltMk6: 1200,
}

// Capacity returns items per minute the belt can carry
func (t BeltTier) Capacity() float64 { return beltCapacity[t] }

// ParseBeltTier resolves a belt mark name
func ParseBeltTier(name string) (BeltTier, bool) {
	t := BeltTier(upper(name))
	_, ok := beltCapacity[t]
	return t, ok
}

// PipeTier is the mark of a pipeline
type PipeTier string

const (
	PipeMk1 PipeTier = "MK1"
	PipeMk2 PipeTier = "MK2"
)

var pipeCapacity = map[PipeTier]float64{
	PipeMk1: 300,
	PipeMk2: 600,
}

// Capacity returns cubic meters per minute the pipeline can carry
func (t PipeTier) Capacity() float64 { return pipeCapacity[t] }

// ParsePipeTier resolves a pipeline mark name
func ParsePipeTier(name string) (PipeTier, bool) {
	t := PipeTier(upper(name))
	_, ok := pipeCapacity[t]
	return t, ok
}

// Extractor base rates per minute on a normal node at 100% speed
const (
	WaterExtractorRate        = 120.0
	OilExtractorRate          = 120.0
	ResourceWellSatelliteRate = 60.0
)
