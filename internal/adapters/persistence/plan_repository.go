package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
)

// GormPlanRepository implements PlanRepository using GORM
type GormPlanRepository struct {
	db *gorm.DB
}

// NewGormPlanRepository creates a new GORM plan repository
func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// Save persists a plan (upsert by ID)
func (r *GormPlanRepository) Save(ctx context.Context, doc *plan.Document) error {
	model, err := r.documentToModel(doc)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "buildings", "connections", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	return nil
}

// FindByID retrieves a plan by ID
func (r *GormPlanRepository) FindByID(ctx context.Context, id string) (*plan.Document, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByName retrieves a plan by its unique name
func (r *GormPlanRepository) FindByName(ctx context.Context, name string) (*plan.Document, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *GormPlanRepository) findOne(ctx context.Context, query string, ref string) (*plan.Document, error) {
	var model PlanModel
	result := r.db.WithContext(ctx).Where(query, ref).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &plan.ErrPlanNotFound{Ref: ref}
		}
		return nil, fmt.Errorf("failed to find plan: %w", result.Error)
	}

	return r.modelToDocument(&model)
}

// List retrieves every stored plan ordered by name
func (r *GormPlanRepository) List(ctx context.Context) ([]*plan.Document, error) {
	var models []PlanModel
	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list plans: %w", result.Error)
	}

	docs := make([]*plan.Document, 0, len(models))
	for i := range models {
		doc, err := r.modelToDocument(&models[i])
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// Delete removes a plan by ID
func (r *GormPlanRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PlanModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &plan.ErrPlanNotFound{Ref: id}
	}
	return nil
}

func (r *GormPlanRepository) documentToModel(doc *plan.Document) (*PlanModel, error) {
	buildings := doc.Buildings
	if buildings == nil {
		buildings = []plan.BuildingSpec{}
	}
	buildingsJSON, err := json.Marshal(buildings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal buildings: %w", err)
	}

	connections := doc.Connections
	if connections == nil {
		connections = []plan.ConnectionSpec{}
	}
	connectionsJSON, err := json.Marshal(connections)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal connections: %w", err)
	}

	return &PlanModel{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		Buildings:   string(buildingsJSON),
		Connections: string(connectionsJSON),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

func (r *GormPlanRepository) modelToDocument(model *PlanModel) (*plan.Document, error) {
	doc := &plan.Document{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}

	if err := json.Unmarshal([]byte(model.Buildings), &doc.Buildings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal buildings of plan %s: %w", model.ID, err)
	}
	if err := json.Unmarshal([]byte(model.Connections), &doc.Connections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connections of plan %s: %w", model.ID, err)
	}

	return doc, nil
}
