package profiles

import (
	"time"

	"growthplan-backend/plan/model"
)

// Record is a stored questionnaire profile owned by a user.
type Record struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Profile   model.UserProfile `json:"profile"`
	CreatedAt time.Time         `json:"createdAt"`
}
