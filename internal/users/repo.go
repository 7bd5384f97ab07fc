package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// Repo stores account records. Upsert runs on every successful login,
// so implementations must refresh mutable profile fields and the
// last-login timestamp while preserving CreatedAt.
type Repo interface {
	Upsert(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
}
