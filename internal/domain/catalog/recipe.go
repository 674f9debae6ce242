package catalog

// RecipeID is the stable identity of a recipe
type RecipeID string

// Ingredient is one resource consumed or produced per machine cycle
type Ingredient struct {
	Resource Resource
	Amount   float64
}

// Recipe fixes a building's input and output resources and their quantities
// per cycle. Recipes are immutable catalog data.
//
// Ingredients are listed per port family: MaterialInputs fill the building's
// material input ports in order, FluidInputs fill its fluid input ports, and
// likewise on the output side. A port without an ingredient is not required.
type Recipe struct {
	ID        RecipeID
	Name      string
	Building  BuildingKind
	Duration  float64 // seconds per cycle
	Alternate bool

	MaterialInputs  []Ingredient
	FluidInputs     []Ingredient
	MaterialOutputs []Ingredient
	FluidOutputs    []Ingredient
}

func mat(m Material, amount float64) Ingredient {
	return Ingredient{Resource: MaterialResource(m), Amount: amount}
}

func fl(f Fluid, amount float64) Ingredient {
	return Ingredient{Resource: FluidResource(f), Amount: amount}
}

// Layout returns the port layout of the building that runs this recipe
func (r Recipe) Layout() PortLayout {
	return MustBuilding(r.Building).Layout
}

// CyclesPerMinute converts the cycle duration into a per-minute multiplier
func (r Recipe) CyclesPerMinute() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return 60 / r.Duration
}

// Input returns the ingredient consumed on an input port. The boolean is false
// when the recipe leaves that port unused.
func (r Recipe) Input(port int) (Ingredient, bool) {
	layout := r.Layout()
	CheckPort(r.Name, PortInput, port, layout.Inputs())
	if port < layout.MaterialInputs {
		return slot(r.MaterialInputs, port)
	}
	return slot(r.FluidInputs, port-layout.MaterialInputs)
}

// Output returns the ingredient produced on an output port. The boolean is
// false when the recipe leaves that port unused.
func (r Recipe) Output(port int) (Ingredient, bool) {
	layout := r.Layout()
	CheckPort(r.Name, PortOutput, port, layout.Outputs())
	if port < layout.MaterialOutputs {
		return slot(r.MaterialOutputs, port)
	}
	return slot(r.FluidOutputs, port-layout.MaterialOutputs)
}

func slot(items []Ingredient, i int) (Ingredient, bool) {
	if i < len(items) {
		return items[i], true
	}
	return Ingredient{}, false
}

// InputResource returns the resource expected on an input port
func (r Recipe) InputResource(port int) (Resource, bool) {
	ing, ok := r.Input(port)
	return ing.Resource, ok
}

// OutputResource returns the resource produced on an output port
func (r Recipe) OutputResource(port int) (Resource, bool) {
	ing, ok := r.Output(port)
	return ing.Resource, ok
}

// InputPerMinute returns the nominal consumption rate on an input port at 100% speed
func (r Recipe) InputPerMinute(port int) float64 {
	ing, ok := r.Input(port)
	if !ok {
		return 0
	}
	return ing.Amount * r.CyclesPerMinute()
}

// OutputPerMinute returns the nominal production rate on an output port at 100% speed
func (r Recipe) OutputPerMinute(port int) float64 {
	ing, ok := r.Output(port)
	if !ok {
		return 0
	}
	return ing.Amount * r.CyclesPerMinute()
}

// InputAmounts returns the per-cycle amount for every input port, zero for unused ports
func (r Recipe) InputAmounts() []float64 {
	n := r.Layout().Inputs()
	amounts := make([]float64, n)
	for port := 0; port < n; port++ {
		if ing, ok := r.Input(port); ok {
			amounts[port] = ing.Amount
		}
	}
	return amounts
}

// OutputAmounts returns the per-cycle amount for every output port, zero for unused ports
func (r Recipe) OutputAmounts() []float64 {
	n := r.Layout().Outputs()
	amounts := make([]float64, n)
	for port := 0; port < n; port++ {
		if ing, ok := r.Output(port); ok {
			amounts[port] = ing.Amount
		}
	}
	return amounts
}

var (
	recipeIndex   = map[RecipeID]Recipe{}
	recipesByKind = map[BuildingKind][]Recipe{}
)

func init() {
	tables := [][]Recipe{
		constructorRecipes, smelterRecipes, foundryRecipes, assemblerRecipes, manufacturerRecipes,
		refineryRecipes, packagerRecipes, blenderRecipes,
		particleAcceleratorRecipes, converterRecipes, quantumEncoderRecipes,
	}
	for _, table := range tables {
		for _, r := range table {
			recipeIndex[r.ID] = r
			recipesByKind[r.Building] = append(recipesByKind[r.Building], r)
		}
	}
}

// LookupRecipe returns a recipe by identity
func LookupRecipe(id RecipeID) (Recipe, bool) {
	r, ok := recipeIndex[id]
	return r, ok
}

// MustRecipe returns a recipe by identity and panics if it is not in the catalog
func MustRecipe(id RecipeID) Recipe {
	r, ok := recipeIndex[id]
	if !ok {
		panic(&ErrUnknownRecipe{Recipe: string(id)})
	}
	return r
}

// ParseRecipe resolves a recipe identifier written in a plan file and checks
// that it belongs to the given building kind
func ParseRecipe(kind BuildingKind, name string) (Recipe, error) {
	r, ok := recipeIndex[RecipeID(upper(name))]
	if !ok {
		return Recipe{}, &ErrUnknownRecipe{Recipe: name}
	}
	if r.Building != kind {
		return Recipe{}, &ErrRecipeBuildingMismatch{Recipe: r.ID, Expected: r.Building, Actual: kind}
	}
	return r, nil
}

// RecipesFor returns the recipes a building kind can run, in catalog order
func RecipesFor(kind BuildingKind) []Recipe {
	return recipesByKind[kind]
}
