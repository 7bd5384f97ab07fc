package profiles

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"growthplan-backend/plan/model"
)

// Service contains business logic for profiles.
type Service struct {
	Repo Repo
}

// Create validates, normalizes and stores a questionnaire profile.
func (s *Service) Create(ctx context.Context, userID string, profile model.UserProfile) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, errors.New("user id required")
	}
	if !validWorkMode(profile.WorkMode) {
		return Record{}, ErrInvalidInput
	}

	profile = profile.Normalize()

	rec := Record{
		ID:        uuid.NewString(),
		UserID:    userID,
		Profile:   profile,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}

	return rec, nil
}

// Get returns a profile owned by the user.
func (s *Service) Get(ctx context.Context, userID, profileID string) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, errors.New("user id required")
	}
	if strings.TrimSpace(profileID) == "" {
		return Record{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, profileID)
}

// Current returns the most recently submitted profile for the user.
func (s *Service) Current(ctx context.Context, userID string) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, errors.New("user id required")
	}
	recs, err := s.Repo.ListByUser(ctx, userID, 1, 0)
	if err != nil {
		return Record{}, err
	}
	if len(recs) == 0 {
		return Record{}, ErrNotFound
	}
	return recs[0], nil
}

// List returns profiles owned by the user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func validWorkMode(mode model.WorkMode) bool {
	switch mode {
	case model.WorkModeSalonOnly, model.WorkModeHybrid, model.WorkModePrivateOnly:
		return true
	default:
		return false
	}
}
