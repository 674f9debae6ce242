package steps

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factoryplan-go/internal/adapters/planfile"
	"github.com/andrescamacho/factoryplan-go/internal/application/mediator"
	"github.com/andrescamacho/factoryplan-go/internal/application/planner"
	"github.com/andrescamacho/factoryplan-go/internal/application/setup"
	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
)

type propagationContext struct {
	planner  *planner.Planner
	mediator mediator.Mediator
	err      error
}

func (ctx *propagationContext) reset() error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := setup.NewHandlerRegistry(planner.NewPlanner(logger, 0), logger)
	m, err := registry.CreateConfiguredMediator()
	if err != nil {
		return err
	}
	ctx.planner = registry.Planner()
	ctx.mediator = m
	ctx.err = nil
	return nil
}

func (ctx *propagationContext) send(request mediator.Request) (mediator.Response, error) {
	return ctx.mediator.Send(context.Background(), request)
}

func (ctx *propagationContext) report() (*planner.FlowReport, error) {
	resp, err := ctx.send(&planner.FlowReportQuery{})
	if err != nil {
		return nil, err
	}
	return resp.(*planner.FlowReport), nil
}

func (ctx *propagationContext) buildingReport(id string) (planner.BuildingReport, error) {
	report, err := ctx.report()
	if err != nil {
		return planner.BuildingReport{}, err
	}
	b, ok := report.Building(id)
	if !ok {
		return planner.BuildingReport{}, fmt.Errorf("building %q is not in the plan", id)
	}
	return b, nil
}

// Given steps

func (ctx *propagationContext) aPlanWithBuildings(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		speed, err := optionalFloat(getCellValueFromTable(table, row, "speed"))
		if err != nil {
			return err
		}
		amplifiers, err := optionalInt(getCellValueFromTable(table, row, "amplifiers"))
		if err != nil {
			return err
		}

		spec := plan.BuildingSpec{
			ID:         getCellValueFromTable(table, row, "id"),
			Kind:       getCellValueFromTable(table, row, "kind"),
			Recipe:     getCellValueFromTable(table, row, "recipe"),
			Speed:      speed,
			Amplifiers: amplifiers,
			Resource:   getCellValueFromTable(table, row, "resource"),
			Purity:     getCellValueFromTable(table, row, "purity"),
			Belt:       getCellValueFromTable(table, row, "belt"),
		}
		if _, err := ctx.send(&planner.AddBuildingCommand{Spec: spec}); err != nil {
			return err
		}
	}
	return nil
}

func (ctx *propagationContext) outputIsWiredTo(from string, output int, to string, input int) error {
	_, err := ctx.send(&planner.ConnectCommand{From: from, Output: output, To: to, Input: input})
	return err
}

func (ctx *propagationContext) thePlanFile(doc *godog.DocString) error {
	parsed, err := planfile.Parse([]byte(doc.Content), "scenario.hcl", nil)
	if err != nil {
		return err
	}
	return ctx.planner.Load(parsed)
}

// When steps

func (ctx *propagationContext) iWire(from string, output int, to string, input int) error {
	ctx.err = ctx.outputIsWiredTo(from, output, to, input)
	return nil
}

func (ctx *propagationContext) iDisconnect(to string, input int) error {
	_, ctx.err = ctx.send(&planner.DisconnectCommand{To: to, Input: input})
	return nil
}

func (ctx *propagationContext) iRemove(id string) error {
	_, ctx.err = ctx.send(&planner.RemoveBuildingCommand{ID: id})
	return nil
}

func (ctx *propagationContext) iSetSpeed(id string, speed float64) error {
	_, ctx.err = ctx.send(&planner.ConfigureBuildingCommand{ID: id, Speed: &speed})
	return nil
}

func (ctx *propagationContext) iSetRecipe(id, recipe string) error {
	_, ctx.err = ctx.send(&planner.ConfigureBuildingCommand{ID: id, Recipe: &recipe})
	return nil
}

func (ctx *propagationContext) iDuplicate(id, newID string) error {
	_, ctx.err = ctx.send(&planner.DuplicateBuildingCommand{ID: id, NewID: newID})
	return nil
}

// Then steps

func (ctx *propagationContext) outputShouldCarry(id string, port int, expected float64) error {
	b, err := ctx.buildingReport(id)
	if err != nil {
		return err
	}
	if port >= len(b.Outputs) {
		return fmt.Errorf("%s has no output %d", id, port)
	}
	if actual := b.Outputs[port].Speed; !approxEqual(actual, expected) {
		return fmt.Errorf("expected %s output %d to carry %.2f per minute, got %.2f", id, port, expected, actual)
	}
	return nil
}

func (ctx *propagationContext) inputShouldReceive(id string, port int, expected float64) error {
	b, err := ctx.buildingReport(id)
	if err != nil {
		return err
	}
	if port >= len(b.Inputs) {
		return fmt.Errorf("%s has no input %d", id, port)
	}
	if actual := b.Inputs[port].Speed; !approxEqual(actual, expected) {
		return fmt.Errorf("expected %s input %d to receive %.2f per minute, got %.2f", id, port, expected, actual)
	}
	return nil
}

func (ctx *propagationContext) inputShouldReceiveSomething(id string, port int) error {
	b, err := ctx.buildingReport(id)
	if err != nil {
		return err
	}
	if b.Inputs[port].Speed <= 0 {
		return fmt.Errorf("expected %s input %d to receive flow", id, port)
	}
	return nil
}

func (ctx *propagationContext) outputShouldBeUnconnected(id string, port int) error {
	b, err := ctx.buildingReport(id)
	if err != nil {
		return err
	}
	if b.Outputs[port].Connected {
		return fmt.Errorf("expected %s output %d to be unconnected", id, port)
	}
	return nil
}

func (ctx *propagationContext) shouldBeFlaggedInvalid(id string) error {
	report, err := ctx.report()
	if err != nil {
		return err
	}
	for _, invalid := range report.Invalid {
		if invalid == id {
			return nil
		}
	}
	return fmt.Errorf("expected %s to be flagged invalid, invalid: %v", id, report.Invalid)
}

func (ctx *propagationContext) shouldBeStarved(id string) error {
	report, err := ctx.report()
	if err != nil {
		return err
	}
	for _, starved := range report.Starved {
		if starved == id {
			return nil
		}
	}
	return fmt.Errorf("expected %s to be starved, starved: %v", id, report.Starved)
}

func (ctx *propagationContext) theTotalPowerShouldBe(expected float64) error {
	report, err := ctx.report()
	if err != nil {
		return err
	}
	if !approxEqual(report.TotalPowerMW, expected) {
		return fmt.Errorf("expected total power %.2f MW, got %.2f MW", expected, report.TotalPowerMW)
	}
	return nil
}

func (ctx *propagationContext) theSinksShouldBe(expected string) error {
	report, err := ctx.report()
	if err != nil {
		return err
	}
	if actual := strings.Join(report.Sinks, ", "); actual != expected {
		return fmt.Errorf("expected sinks %q, got %q", expected, actual)
	}
	return nil
}

func (ctx *propagationContext) theOperationShouldFail() error {
	if ctx.err == nil {
		return fmt.Errorf("expected the operation to fail")
	}
	return nil
}

func (ctx *propagationContext) theOperationShouldSucceed() error {
	return ctx.err
}

func (ctx *propagationContext) refreshingShouldNotChangeTheReport() error {
	before, err := ctx.report()
	if err != nil {
		return err
	}
	ctx.planner.Refresh()
	after, err := ctx.report()
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(before, after) {
		return fmt.Errorf("report changed after a refresh without edits")
	}
	return nil
}

// InitializePropagationScenario registers steps that edit a plan through the mediator
func InitializePropagationScenario(sc *godog.ScenarioContext) {
	ctx := &propagationContext{}

	sc.Before(func(bddCtx context.Context, s *godog.Scenario) (context.Context, error) {
		return bddCtx, ctx.reset()
	})

	// Given steps
	sc.Step(`^a plan with buildings:$`, ctx.aPlanWithBuildings)
	sc.Step(`^"([^"]*)" output (\d+) is wired to "([^"]*)" input (\d+)$`, ctx.outputIsWiredTo)
	sc.Step(`^the plan file:$`, ctx.thePlanFile)

	// When steps
	sc.Step(`^I wire "([^"]*)" output (\d+) to "([^"]*)" input (\d+)$`, ctx.iWire)
	sc.Step(`^I disconnect "([^"]*)" input (\d+)$`, ctx.iDisconnect)
	sc.Step(`^I remove "([^"]*)"$`, ctx.iRemove)
	sc.Step(`^I set "([^"]*)" to (\d+(?:\.\d+)?)% speed$`, ctx.iSetSpeed)
	sc.Step(`^I set the recipe of "([^"]*)" to "([^"]*)"$`, ctx.iSetRecipe)
	sc.Step(`^I duplicate "([^"]*)" as "([^"]*)"$`, ctx.iDuplicate)

	// Then steps
	sc.Step(`^"([^"]*)" output (\d+) should carry (\d+(?:\.\d+)?) per minute$`, ctx.outputShouldCarry)
	sc.Step(`^"([^"]*)" input (\d+) should receive (\d+(?:\.\d+)?) per minute$`, ctx.inputShouldReceive)
	sc.Step(`^"([^"]*)" input (\d+) should receive some flow$`, ctx.inputShouldReceiveSomething)
	sc.Step(`^"([^"]*)" output (\d+) should be unconnected$`, ctx.outputShouldBeUnconnected)
	sc.Step(`^"([^"]*)" should be flagged invalid$`, ctx.shouldBeFlaggedInvalid)
	sc.Step(`^"([^"]*)" should be starved$`, ctx.shouldBeStarved)
	sc.Step(`^the total power should be (\d+(?:\.\d+)?) MW$`, ctx.theTotalPowerShouldBe)
	sc.Step(`^the sinks should be "([^"]*)"$`, ctx.theSinksShouldBe)
	sc.Step(`^the operation should fail$`, ctx.theOperationShouldFail)
	sc.Step(`^the operation should succeed$`, ctx.theOperationShouldSucceed)
	sc.Step(`^refreshing the plan should not change the report$`, ctx.refreshingShouldNotChangeTheReport)
}
