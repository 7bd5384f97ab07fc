package plans

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Plan // planId -> plan
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Plan),
	}
}

// Create stores a new plan.
func (r *MemoryRepo) Create(ctx context.Context, plan Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[plan.ID] = plan
	return nil
}

// GetByID returns a plan by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, planID string) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.data[planID]
	if !ok {
		return Plan{}, ErrNotFound
	}
	return plan, nil
}

// ListByUser returns plans for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Plan, error) {
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
	var out []Plan
	for _, plan := range r.data {
		if plan.UserID == userID {
			out = append(out, plan)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) == 0 || offset >= len(out) {
		return []Plan{}, nil
	}
	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

// UpdateStatus records a status transition and optional error code.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, planID, status, errorCode string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	plan, ok := r.data[planID]
	if !ok {
		return ErrNotFound
	}
	plan.Status = status
	plan.ErrorCode = errorCode
	plan.UpdatedAt = time.Now().UTC()
	r.data[planID] = plan
	return nil
}

// UpdateResult stores the generation outcome.
func (r *MemoryRepo) UpdateResult(ctx context.Context, updated Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	plan, ok := r.data[updated.ID]
	if !ok {
		return ErrNotFound
	}
	plan.Scenario = updated.Scenario
	plan.Steps = updated.Steps
	plan.PageCount = updated.PageCount
	plan.PagesKey = updated.PagesKey
	plan.Status = updated.Status
	plan.ErrorCode = updated.ErrorCode
	plan.UpdatedAt = time.Now().UTC()
	r.data[updated.ID] = plan
	return nil
}

// UpdateDocument stores the attached document metadata.
func (r *MemoryRepo) UpdateDocument(ctx context.Context, planID, documentKey string, documentPages int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	plan, ok := r.data[planID]
	if !ok {
		return ErrNotFound
	}
	plan.DocumentKey = documentKey
	plan.DocumentPages = documentPages
	plan.UpdatedAt = time.Now().UTC()
	r.data[planID] = plan
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
