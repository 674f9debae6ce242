package steps

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factoryplan-go/internal/adapters/persistence"
	"github.com/andrescamacho/factoryplan-go/internal/application/common"
	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
	"github.com/andrescamacho/factoryplan-go/internal/domain/shared"
	"github.com/andrescamacho/factoryplan-go/test/helpers"
)

type planRepositoryContext struct {
	repo   *persistence.GormPlanRepository
	clock  *shared.MockClock
	found  *plan.Document
	listed []*plan.Document
	err    error
}

func (ctx *planRepositoryContext) reset() error {
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}
	ctx.repo = persistence.NewGormPlanRepository(helpers.SharedTestDB)
	ctx.clock = shared.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	ctx.found = nil
	ctx.listed = nil
	ctx.err = nil
	return nil
}

func (ctx *planRepositoryContext) document(id, name string, buildings int) *plan.Document {
	doc := plan.NewDocument(id, name, ctx.clock)
	for i := 0; i < buildings; i++ {
		doc.Buildings = append(doc.Buildings, plan.BuildingSpec{
			ID:       fmt.Sprintf("miner-%d", i+1),
			Kind:     "miner",
			Resource: "iron_ore",
			Belt:     "mk1",
		})
	}
	return doc
}

// Given steps

func (ctx *planRepositoryContext) aStoredPlan(id, name string, buildings int) error {
	return ctx.repo.Save(context.Background(), ctx.document(id, name, buildings))
}

// When steps

func (ctx *planRepositoryContext) iSaveAPlan(id, name string, buildings int) error {
	ctx.clock.Advance(time.Hour)
	ctx.err = ctx.repo.Save(context.Background(), ctx.document(id, name, buildings))
	return nil
}

func (ctx *planRepositoryContext) iResolve(ref string) error {
	ctx.found, ctx.err = common.NewPlanResolver(ctx.repo).Resolve(context.Background(), ref)
	return nil
}

func (ctx *planRepositoryContext) iListThePlans() error {
	ctx.listed, ctx.err = ctx.repo.List(context.Background())
	return nil
}

func (ctx *planRepositoryContext) iDeleteThePlan(id string) error {
	ctx.err = ctx.repo.Delete(context.Background(), id)
	return nil
}

// Then steps

func (ctx *planRepositoryContext) theResolvedPlanShouldBe(id string, buildings int) error {
	if ctx.err != nil {
		return fmt.Errorf("expected a plan, got error: %w", ctx.err)
	}
	if ctx.found.ID != id {
		return fmt.Errorf("expected plan %s, got %s", id, ctx.found.ID)
	}
	if len(ctx.found.Buildings) != buildings {
		return fmt.Errorf("expected %d buildings, got %d", buildings, len(ctx.found.Buildings))
	}
	return nil
}

func (ctx *planRepositoryContext) theResolvedPlanShouldHaveBeenUpdated() error {
	if !ctx.found.UpdatedAt.After(ctx.found.CreatedAt) {
		return fmt.Errorf("expected updated_at %s after created_at %s", ctx.found.UpdatedAt, ctx.found.CreatedAt)
	}
	return nil
}

func (ctx *planRepositoryContext) thePlansShouldBe(expected string) error {
	if ctx.err != nil {
		return ctx.err
	}
	names := make([]string, 0, len(ctx.listed))
	for _, d := range ctx.listed {
		names = append(names, d.Name)
	}
	if actual := strings.Join(names, ", "); actual != expected {
		return fmt.Errorf("expected plans %q, got %q", expected, actual)
	}
	return nil
}

func (ctx *planRepositoryContext) itShouldFailWithPlanNotFound() error {
	var notFound *plan.ErrPlanNotFound
	if !errors.As(ctx.err, &notFound) {
		return fmt.Errorf("expected plan not found, got %v", ctx.err)
	}
	return nil
}

func (ctx *planRepositoryContext) theSaveShouldFail() error {
	if ctx.err == nil {
		return fmt.Errorf("expected the save to fail")
	}
	return nil
}

// InitializePlanRepositoryScenario registers plan store steps
func InitializePlanRepositoryScenario(sc *godog.ScenarioContext) {
	ctx := &planRepositoryContext{}

	sc.Before(func(bddCtx context.Context, s *godog.Scenario) (context.Context, error) {
		return bddCtx, ctx.reset()
	})

	// Given steps
	sc.Step(`^a stored plan "([^"]*)" named "([^"]*)" with (\d+) buildings?$`, ctx.aStoredPlan)

	// When steps
	sc.Step(`^I save plan "([^"]*)" named "([^"]*)" with (\d+) buildings?$`, ctx.iSaveAPlan)
	sc.Step(`^I resolve the plan "([^"]*)"$`, ctx.iResolve)
	sc.Step(`^I list the plans$`, ctx.iListThePlans)
	sc.Step(`^I delete the plan "([^"]*)"$`, ctx.iDeleteThePlan)

	// Then steps
	sc.Step(`^the resolved plan should be "([^"]*)" with (\d+) buildings?$`, ctx.theResolvedPlanShouldBe)
	sc.Step(`^the resolved plan should have been updated after it was created$`, ctx.theResolvedPlanShouldHaveBeenUpdated)
	sc.Step(`^the plans should be "([^"]*)"$`, ctx.thePlansShouldBe)
	sc.Step(`^it should fail with plan not found$`, ctx.itShouldFailWithPlanNotFound)
	sc.Step(`^the save should fail$`, ctx.theSaveShouldFail)
}
