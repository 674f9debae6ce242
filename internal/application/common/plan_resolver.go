package common

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
)

// PlanResolver finds a stored plan from a reference typed by a user, which may
// be either a plan ID or a plan name.
//
// Resolution logic:
//  1. Look the reference up as an ID
//  2. If no plan has that ID, look it up as a name
//  3. Return ErrPlanNotFound if neither matches
type PlanResolver struct {
	planRepo plan.PlanRepository
}

// NewPlanResolver creates a new plan resolver with required dependencies.
func NewPlanResolver(planRepo plan.PlanRepository) *PlanResolver {
	return &PlanResolver{
		planRepo: planRepo,
	}
}

// Resolve returns the plan referenced by ID or name.
//
// Example usage:
//
//	resolver := NewPlanResolver(planRepo)
//	doc, err := resolver.Resolve(ctx, args[0])
//	if err != nil {
//	    return err
//	}
func (r *PlanResolver) Resolve(ctx context.Context, ref string) (*plan.Document, error) {
	if ref == "" {
		return nil, fmt.Errorf("a plan ID or name must be provided")
	}

	doc, err := r.planRepo.FindByID(ctx, ref)
	if err == nil {
		return doc, nil
	}
	var notFound *plan.ErrPlanNotFound
	if !errors.As(err, &notFound) {
		return nil, fmt.Errorf("failed to find plan by id: %w", err)
	}

	doc, err = r.planRepo.FindByName(ctx, ref)
	if err != nil {
		if errors.As(err, &notFound) {
			return nil, &plan.ErrPlanNotFound{Ref: ref}
		}
		return nil, fmt.Errorf("failed to find plan by name: %w", err)
	}
	return doc, nil
}
