package plans

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores plans in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Plan
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Plan)}
}

// Create stores the plan.
func (r *MemoryRepo) Create(ctx context.Context, plan Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[plan.ID] = plan
	return nil
}

// GetByID returns a plan by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, planID string) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.byID[planID]
	if !ok {
		return Plan{}, ErrNotFound
	}
	return plan, nil
}

// List returns plans newest first, with limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	plans := make([]Plan, 0, len(r.byID))
	for _, plan := range r.byID {
		plans = append(plans, plan)
	}
	r.mu.RUnlock()

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})

	if offset >= len(plans) {
		return []Plan{}, nil
	}
	end := len(plans)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return plans[offset:end], nil
}
