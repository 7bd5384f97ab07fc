package plans

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"growthplan-backend/plan/scenario"
	"growthplan-backend/plan/steps"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const planColumns = `id, user_id, profile_id, plan_version, scenario, status, steps, page_count, pages_key, document_key, document_pages, error_code, created_at, updated_at`

// Create inserts a new plan row.
func (r *PGRepo) Create(ctx context.Context, plan Plan) error {
	const query = `
INSERT INTO plans (id, user_id, profile_id, plan_version, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		plan.ID,
		plan.UserID,
		plan.ProfileID,
		plan.PlanVersion,
		plan.Status,
		plan.CreatedAt,
	)
	return err
}

// GetByID fetches a plan by ID.
func (r *PGRepo) GetByID(ctx context.Context, planID string) (Plan, error) {
	query := `
SELECT ` + planColumns + `
FROM plans
WHERE id = $1
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, planID)
	plan, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Plan{}, ErrNotFound
		}
		return Plan{}, err
	}
	return plan, nil
}

// ListByUser lists plans ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Plan, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `
SELECT ` + planColumns + `
FROM plans
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Plan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, plan)
	}
	return out, rows.Err()
}

// UpdateStatus records a status transition and optional error code.
func (r *PGRepo) UpdateStatus(ctx context.Context, planID, status, errorCode string) error {
	const query = `
UPDATE plans
SET status = $1, error_code = NULLIF($2, ''), updated_at = $3
WHERE id = $4`
	res, err := r.DB.ExecContext(ctx, query, status, errorCode, time.Now().UTC(), planID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateResult stores the generation outcome.
func (r *PGRepo) UpdateResult(ctx context.Context, plan Plan) error {
	const query = `
UPDATE plans
SET scenario = $1, steps = $2, page_count = $3, pages_key = $4, status = $5, error_code = NULLIF($6, ''), updated_at = $7
WHERE id = $8`

	stepsJSON, err := json.Marshal(plan.Steps)
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		string(plan.Scenario),
		stepsJSON,
		plan.PageCount,
		plan.PagesKey,
		plan.Status,
		plan.ErrorCode,
		time.Now().UTC(),
		plan.ID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateDocument stores the attached document metadata.
func (r *PGRepo) UpdateDocument(ctx context.Context, planID, documentKey string, documentPages int) error {
	const query = `
UPDATE plans
SET document_key = $1, document_pages = $2, updated_at = $3
WHERE id = $4`
	res, err := r.DB.ExecContext(ctx, query, documentKey, documentPages, time.Now().UTC(), planID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (Plan, error) {
	var plan Plan
	var scenarioTag sql.NullString
	var stepsJSON []byte
	var pageCount sql.NullInt64
	var pagesKey sql.NullString
	var documentKey sql.NullString
	var documentPages sql.NullInt64
	var errorCode sql.NullString

	err := row.Scan(
		&plan.ID,
		&plan.UserID,
		&plan.ProfileID,
		&plan.PlanVersion,
		&scenarioTag,
		&plan.Status,
		&stepsJSON,
		&pageCount,
		&pagesKey,
		&documentKey,
		&documentPages,
		&errorCode,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return Plan{}, err
	}

	if scenarioTag.Valid {
		plan.Scenario = scenario.Tag(scenarioTag.String)
	}
	if len(stepsJSON) > 0 {
		var list []steps.Step
		if err := json.Unmarshal(stepsJSON, &list); err != nil {
			return Plan{}, fmt.Errorf("unmarshal steps: %w", err)
		}
		plan.Steps = list
	}
	if pageCount.Valid {
		plan.PageCount = int(pageCount.Int64)
	}
	if pagesKey.Valid {
		plan.PagesKey = pagesKey.String
	}
	if documentKey.Valid {
		plan.DocumentKey = documentKey.String
	}
	if documentPages.Valid {
		plan.DocumentPages = int(documentPages.Int64)
	}
	if errorCode.Valid {
		plan.ErrorCode = errorCode.String
	}
	return plan, nil
}

var _ Repo = (*PGRepo)(nil)
