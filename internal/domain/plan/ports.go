package plan

import "context"

// PlanRepository defines plan persistence operations
type PlanRepository interface {
	Save(ctx context.Context, doc *Document) error
	FindByID(ctx context.Context, id string) (*Document, error)
	FindByName(ctx context.Context, name string) (*Document, error)
	List(ctx context.Context) ([]*Document, error)
	Delete(ctx context.Context, id string) error
}
