package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factoryplan-go/internal/domain/building"
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
)

type buildingFlowContext struct {
	building building.Building
	err      error
}

func (ctx *buildingFlowContext) reset() {
	ctx.building = nil
	ctx.err = nil
}

func (ctx *buildingFlowContext) configurable() (building.Configurable, error) {
	c, ok := ctx.building.(building.Configurable)
	if !ok {
		return nil, fmt.Errorf("%s does not run recipes", ctx.building.Name())
	}
	return c, nil
}

func (ctx *buildingFlowContext) aBuildingRunningTheRecipe(kindName, recipeName string) error {
	kind, err := catalog.ParseBuildingKind(kindName)
	if err != nil {
		return err
	}
	b, err := building.New(kind)
	if err != nil {
		return err
	}
	ctx.building = b

	c, err := ctx.configurable()
	if err != nil {
		return err
	}
	recipe, err := catalog.ParseRecipe(kind, recipeName)
	if err != nil {
		return err
	}
	return c.SetRecipe(recipe.ID)
}

func (ctx *buildingFlowContext) iSelectTheRecipe(recipeName string) error {
	c, err := ctx.configurable()
	if err != nil {
		return err
	}
	recipe, err := catalog.ParseRecipe(ctx.building.Kind(), recipeName)
	if err != nil {
		ctx.err = err
		return nil
	}
	ctx.err = c.SetRecipe(recipe.ID)
	return nil
}

func (ctx *buildingFlowContext) theBuildingReceivesOnInput(speed float64, resourceName string, port int) error {
	res, ok := catalog.ParseResource(strings.ToUpper(resourceName))
	if !ok {
		return fmt.Errorf("unknown resource %q", resourceName)
	}
	ctx.building.SetCurrentInput(catalog.Input{Speed: speed, Resource: res}, port)
	return nil
}

func (ctx *buildingFlowContext) inputIsCleared(port int) error {
	ctx.building.ClearCurrentInput(port)
	return nil
}

func (ctx *buildingFlowContext) theBuildingRunsAtSpeed(speed float64) error {
	o, ok := ctx.building.(building.Overclockable)
	if !ok {
		return fmt.Errorf("%s cannot be overclocked", ctx.building.Name())
	}
	o.SetSpeed(speed)
	return nil
}

func (ctx *buildingFlowContext) amplifierSlotsAreOccupied(occupied int) error {
	c, err := ctx.configurable()
	if err != nil {
		return err
	}
	c.SetAmplifiers(occupied)
	return nil
}

func (ctx *buildingFlowContext) outputShouldProducePerMinute(port int, expected float64) error {
	out := ctx.building.CurrentOutput(port)
	actual := 0.0
	if out != nil {
		actual = out.Speed
	}
	if !approxEqual(actual, expected) {
		return fmt.Errorf("expected output %d to produce %.2f per minute, got %.2f", port, expected, actual)
	}
	return nil
}

func (ctx *buildingFlowContext) outputShouldCarry(port int, resourceName string) error {
	out := ctx.building.CurrentOutput(port)
	if out == nil {
		return fmt.Errorf("output %d produces nothing", port)
	}
	if !strings.EqualFold(out.Resource.ID(), resourceName) {
		return fmt.Errorf("expected output %d to carry %s, got %s", port, resourceName, out.Resource.ID())
	}
	return nil
}

func (ctx *buildingFlowContext) powerDrawShouldBe(expected float64) error {
	pc, ok := ctx.building.(building.PowerConsumer)
	if !ok {
		return fmt.Errorf("%s draws no power", ctx.building.Name())
	}
	if actual := pc.PowerDraw(); !approxEqual(actual, expected) {
		return fmt.Errorf("expected power draw %.4f MW, got %.4f MW", expected, actual)
	}
	return nil
}

func (ctx *buildingFlowContext) aCleanCopyShouldHaveNoInputs() error {
	clone := ctx.building.ClearClone()
	for port := 0; port < clone.NumInputs(); port++ {
		if in := clone.CurrentInput(port); in != nil {
			return fmt.Errorf("copy kept input %d: %.2f %s", port, in.Speed, in.Resource.ID())
		}
	}
	c, ok := clone.(building.Configurable)
	if !ok {
		return nil
	}
	orig, _ := ctx.configurable()
	if c.Recipe() == nil || orig.Recipe() == nil || c.Recipe().ID != orig.Recipe().ID {
		return fmt.Errorf("copy did not keep the recipe")
	}
	return nil
}

func (ctx *buildingFlowContext) theRecipeShouldBeRejected() error {
	if ctx.err == nil {
		return fmt.Errorf("expected the recipe to be rejected")
	}
	return nil
}

// InitializeBuildingFlowScenario registers steps that drive one building directly
func InitializeBuildingFlowScenario(sc *godog.ScenarioContext) {
	ctx := &buildingFlowContext{}

	sc.Before(func(bddCtx context.Context, s *godog.Scenario) (context.Context, error) {
		ctx.reset()
		return bddCtx, nil
	})

	sc.Step(`^an? (\w+) running the "([^"]*)" recipe$`, ctx.aBuildingRunningTheRecipe)
	sc.Step(`^I select the "([^"]*)" recipe$`, ctx.iSelectTheRecipe)
	sc.Step(`^the building receives (\d+(?:\.\d+)?) per minute of "([^"]*)" on input (\d+)$`, ctx.theBuildingReceivesOnInput)
	sc.Step(`^input (\d+) is cleared$`, ctx.inputIsCleared)
	sc.Step(`^the building runs at (\d+(?:\.\d+)?)% speed$`, ctx.theBuildingRunsAtSpeed)
	sc.Step(`^(\d+) amplifier slots? (?:is|are) occupied$`, ctx.amplifierSlotsAreOccupied)

	sc.Step(`^output (\d+) should produce (\d+(?:\.\d+)?) per minute$`, ctx.outputShouldProducePerMinute)
	sc.Step(`^output (\d+) should carry "([^"]*)"$`, ctx.outputShouldCarry)
	sc.Step(`^the power draw should be (\d+(?:\.\d+)?) MW$`, ctx.powerDrawShouldBe)
	sc.Step(`^a clean copy should keep the recipe but no inputs$`, ctx.aCleanCopyShouldHaveNoInputs)
	sc.Step(`^the recipe should be rejected$`, ctx.theRecipeShouldBeRejected)
}
