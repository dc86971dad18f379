package plans

import "context"

// Repo defines persistence operations for generated plans.
type Repo interface {
	Create(ctx context.Context, plan Plan) error
	GetByID(ctx context.Context, planID string) (Plan, error)
	List(ctx context.Context, limit, offset int) ([]Plan, error)
}
