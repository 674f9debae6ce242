package bdd

import (
	"os"
	"testing"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factoryplan-go/test/bdd/steps"
	"github.com/andrescamacho/factoryplan-go/test/helpers"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/application", "features/adapters"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// Domain layer: single buildings fed by hand
	steps.InitializeBuildingFlowScenario(sc)

	// Application layer: propagation through a planner
	steps.InitializePropagationScenario(sc)

	// Adapter layer: plan store
	steps.InitializePlanRepositoryScenario(sc)
}

func TestMain(m *testing.M) {
	// One in-memory database shared by every scenario, truncated between them
	if err := helpers.InitializeSharedTestDB(); err != nil {
		panic("Failed to initialize shared test database: " + err.Error())
	}
	defer helpers.CloseSharedTestDB()

	os.Exit(m.Run())
}
