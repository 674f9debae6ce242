package catalog

// Color is the display color of a resource. Only renderers read it.
type Color struct {
	R, G, B uint8
}

// Resource identifies what flows through a port: either a solid Material
// carried on belts or a Fluid carried in pipes. Exactly one of the two fields
// is set; the zero value means "nothing".
type Resource struct {
	Material Material
	Fluid    Fluid
}

// MaterialResource wraps a material as a Resource
func MaterialResource(m Material) Resource {
	return Resource{Material: m}
}

// FluidResource wraps a fluid as a Resource
func FluidResource(f Fluid) Resource {
	return Resource{Fluid: f}
}

// IsFluid returns true if the resource is piped rather than belted
func (r Resource) IsFluid() bool { return r.Fluid != "" }

// IsZero returns true if the resource carries no identity
func (r Resource) IsZero() bool { return r.Material == "" && r.Fluid == "" }

// ID returns the stable identity of the resource
func (r Resource) ID() string {
	if r.IsFluid() {
		return string(r.Fluid)
	}
	return string(r.Material)
}

// Name returns the display name of the resource
func (r Resource) Name() string {
	if r.IsFluid() {
		return r.Fluid.DisplayName()
	}
	return r.Material.DisplayName()
}

// Color returns the display color of the resource
func (r Resource) Color() Color {
	if r.IsFluid() {
		return r.Fluid.Color()
	}
	return r.Material.Color()
}

func (r Resource) String() string { return r.ID() }

// ParseResource resolves a stable identity (material or fluid) into a Resource
func ParseResource(id string) (Resource, bool) {
	if _, ok := materialInfo[Material(id)]; ok {
		return MaterialResource(Material(id)), true
	}
	if _, ok := fluidInfo[Fluid(id)]; ok {
		return FluidResource(Fluid(id)), true
	}
	return Resource{}, false
}

// Input is the flow a port currently observes.
// Speed is per minute for solids and cubic meters per minute for fluids.
type Input struct {
	Speed    float64
	Resource Resource
}

// Output is the flow a port produces
type Output struct {
	Speed    float64
	Resource Resource
}

// AsInput converts a produced flow into the flow observed downstream
func (o Output) AsInput() Input {
	return Input{Speed: o.Speed, Resource: o.Resource}
}
