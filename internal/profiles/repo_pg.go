package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"growthplan-backend/plan/model"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new profile with its questionnaire payload as JSONB.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO profiles (id, user_id, payload, created_at)
VALUES ($1, $2, $3, $4)`

	payload, err := json.Marshal(rec.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile payload: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query, rec.ID, rec.UserID, payload, rec.CreatedAt)
	return err
}

// GetByID fetches a profile by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, profileID string) (Record, error) {
	const query = `
SELECT id, user_id, payload, created_at
FROM profiles
WHERE user_id = $1 AND id = $2
LIMIT 1`

	var rec Record
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, userID, profileID).Scan(
		&rec.ID,
		&rec.UserID,
		&payload,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if err := unmarshalPayload(payload, &rec.Profile); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ListByUser lists profiles ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, payload, created_at
FROM profiles
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var payload []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &payload, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if err := unmarshalPayload(payload, &rec.Profile); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func unmarshalPayload(payload []byte, dst *model.UserProfile) error {
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("unmarshal profile payload: %w", err)
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
