package catalog

import (
	"fmt"
	"strings"
)

// PortDirection distinguishes input ports from output ports in error reports
type PortDirection string

const (
	PortInput  PortDirection = "input"
	PortOutput PortDirection = "output"
)

// PortOutOfRangeError reports a port index beyond a building's declared arity.
// It signals a caller bug and is raised with panic by buildings and recipes;
// graph entry points that accept caller-supplied indices return it as an error.
type PortOutOfRangeError struct {
	Building  string
	Direction PortDirection
	Port      int
	Count     int
}

func (e *PortOutOfRangeError) Error() string {
	return fmt.Sprintf("%s port %d out of range for %s (has %d)", e.Direction, e.Port, e.Building, e.Count)
}

// CheckPort panics with a PortOutOfRangeError when port is not in [0, count)
func CheckPort(building string, direction PortDirection, port, count int) {
	if port < 0 || port >= count {
		panic(&PortOutOfRangeError{Building: building, Direction: direction, Port: port, Count: count})
	}
}

// ErrUnknownRecipe indicates a recipe identifier missing from the catalog
type ErrUnknownRecipe struct {
	Recipe string
}

func (e *ErrUnknownRecipe) Error() string {
	return fmt.Sprintf("unknown recipe: %s", e.Recipe)
}

// ErrRecipeBuildingMismatch indicates a recipe assigned to the wrong building kind
type ErrRecipeBuildingMismatch struct {
	Recipe   RecipeID
	Expected BuildingKind
	Actual   BuildingKind
}

func (e *ErrRecipeBuildingMismatch) Error() string {
	return fmt.Sprintf("recipe %s is made in %s, not %s", e.Recipe, e.Expected, e.Actual)
}

// ErrUnknownBuildingKind indicates a building kind missing from the catalog
type ErrUnknownBuildingKind struct {
	Kind string
}

func (e *ErrUnknownBuildingKind) Error() string {
	return fmt.Sprintf("unknown building kind: %s", e.Kind)
}

// ErrUnknownResource indicates a material or fluid missing from the catalog
type ErrUnknownResource struct {
	Resource string
}

func (e *ErrUnknownResource) Error() string {
	return fmt.Sprintf("unknown resource: %s", e.Resource)
}

// upper normalizes identifiers written in plan files ("water-extractor") into
// catalog constants ("WATER_EXTRACTOR")
func upper(name string) string {
	return strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToUpper(strings.TrimSpace(name)))
}
