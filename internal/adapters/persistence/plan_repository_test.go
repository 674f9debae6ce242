package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplan-go/internal/adapters/persistence"
	"github.com/andrescamacho/factoryplan-go/internal/application/common"
	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
	"github.com/andrescamacho/factoryplan-go/internal/domain/shared"
	"github.com/andrescamacho/factoryplan-go/test/helpers"
)

func ironDocument(id, name string) *plan.Document {
	clock := shared.NewMockClock(time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC))
	doc := plan.NewDocument(id, name, clock)
	speed := 150.0
	doc.Buildings = []plan.BuildingSpec{
		{ID: "miner", Kind: "miner", Resource: "iron_ore", Belt: "mk2", Speed: &speed},
		{ID: "smelter", Kind: "smelter", Recipe: "iron_ingot"},
	}
	doc.Connections = []plan.ConnectionSpec{{From: "miner", To: "smelter"}}
	return doc
}

func TestPlanRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanRepository(db)
	doc := ironDocument("iron-0001", "iron")

	// Act
	err := repo.Save(context.Background(), doc)

	// Assert
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), "iron-0001")
	require.NoError(t, err)
	assert.Equal(t, doc.Name, found.Name)
	assert.Equal(t, doc.Buildings, found.Buildings)
	assert.Equal(t, doc.Connections, found.Connections)
	assert.True(t, doc.CreatedAt.Equal(found.CreatedAt))

	byName, err := repo.FindByName(context.Background(), "iron")
	require.NoError(t, err)
	assert.Equal(t, "iron-0001", byName.ID)
}

func TestPlanRepository_SaveUpdatesExisting(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanRepository(db)
	doc := ironDocument("iron-0001", "iron")
	require.NoError(t, repo.Save(context.Background(), doc))

	doc.Description = "second pass"
	doc.Connections = nil
	require.NoError(t, repo.Save(context.Background(), doc))

	found, err := repo.FindByID(context.Background(), "iron-0001")
	require.NoError(t, err)
	assert.Equal(t, "second pass", found.Description)
	assert.Empty(t, found.Connections)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPlanRepository_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanRepository(db)

	// Act
	_, err := repo.FindByID(context.Background(), "missing")

	// Assert
	var notFound *plan.ErrPlanNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Ref)
	assert.ErrorAs(t, repo.Delete(context.Background(), "missing"), &notFound)
}

func TestPlanRepository_ListAndDelete(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanRepository(db)
	require.NoError(t, repo.Save(context.Background(), ironDocument("b-1", "copper")))
	require.NoError(t, repo.Save(context.Background(), ironDocument("a-1", "iron")))

	plans, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "copper", plans[0].Name)

	require.NoError(t, repo.Delete(context.Background(), "b-1"))
	plans, err = repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

func TestPlanResolver_ByIDThenName(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanRepository(db)
	require.NoError(t, repo.Save(context.Background(), ironDocument("iron-0001", "iron")))
	resolver := common.NewPlanResolver(repo)

	// Act
	byID, errID := resolver.Resolve(context.Background(), "iron-0001")
	byName, errName := resolver.Resolve(context.Background(), "iron")
	_, errMissing := resolver.Resolve(context.Background(), "steel")

	// Assert
	require.NoError(t, errID)
	require.NoError(t, errName)
	assert.Equal(t, byID.ID, byName.ID)
	var notFound *plan.ErrPlanNotFound
	assert.ErrorAs(t, errMissing, &notFound)
}
