package plans

import (
	"time"

	"growthplan-backend/plan/scenario"
	"growthplan-backend/plan/steps"
)

const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Plan represents a plan generation job and its result.
type Plan struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	ProfileID     string       `json:"profileId"`
	PlanVersion   string       `json:"planVersion"`
	Scenario      scenario.Tag `json:"scenario,omitempty"`
	Status        string       `json:"status"`
	Steps         []steps.Step `json:"steps,omitempty"`
	PageCount     int          `json:"pageCount,omitempty"`
	PagesKey      string       `json:"-"`
	DocumentKey   string       `json:"-"`
	DocumentPages int          `json:"documentPages,omitempty"`
	ErrorCode     string       `json:"errorCode,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
