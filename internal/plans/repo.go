package plans

import "context"

// Repo defines persistence operations for plans.
type Repo interface {
	Create(ctx context.Context, plan Plan) error
	GetByID(ctx context.Context, planID string) (Plan, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Plan, error)
	UpdateStatus(ctx context.Context, planID, status, errorCode string) error
	UpdateResult(ctx context.Context, plan Plan) error
	UpdateDocument(ctx context.Context, planID, documentKey string, documentPages int) error
}
