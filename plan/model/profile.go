package model

import "strings"

// WorkMode identifies which business model the master operates under.
type WorkMode string

const (
	WorkModeSalonOnly   WorkMode = "salon-only"
	WorkModeHybrid      WorkMode = "hybrid"
	WorkModePrivateOnly WorkMode = "private-only"
)

// EnergyVector is the declared intent: leave salon employment or grow inside it.
type EnergyVector string

const (
	EnergyExit EnergyVector = "exit"
	EnergyGrow EnergyVector = "grow"
)

// ClientSource describes how salon clients are distributed to the master.
type ClientSource string

const (
	SourceAdminEqual    ClientSource = "admin-equal"
	SourceTakeLeftovers ClientSource = "take-leftovers"
	SourceClientsAsk    ClientSource = "clients-ask"
)

// ScalingInterest is the optional growth direction the master selected.
type ScalingInterest string

const (
	ScalingTeach ScalingInterest = "teach"
	ScalingSpace ScalingInterest = "space"
)

// DefaultName is used when the profile carries no name.
const DefaultName = "Мастер"

// UserProfile is the intake record a plan is generated from. Numeric fields
// are already coalesced to zero upstream; Normalize only enforces that and
// fills the default salutation.
type UserProfile struct {
	Name         string       `json:"name"`
	Experience   string       `json:"experience"`
	WorkMode     WorkMode     `json:"workMode"`
	EnergyVector EnergyVector `json:"energyVector"`
	City         string       `json:"city"`
	WorkPlace    string       `json:"workPlace"`

	SalonPrice        int          `json:"salonPrice"`
	SalonClients      int          `json:"salonClients"`
	SalonPercent      int          `json:"salonPercent"`
	SalonClientSource ClientSource `json:"salonClientSource"`
	SalonPercentFair  string       `json:"salonPercentFair"`

	PrivatePrice   int `json:"privatePrice"`
	PrivateClients int `json:"privateClients"`

	RepeatRate      int             `json:"repeatRate"`
	Sources         []string        `json:"sources"`
	HasCRM          bool            `json:"hasCRM"`
	ScalingInterest ScalingInterest `json:"scalingInterest"`
}

// Normalize clamps negative numerics to zero and defaults the name. It never
// rejects a profile: unknown enum values fall through to default branches
// downstream.
func (p UserProfile) Normalize() UserProfile {
	out := p
	out.Name = strings.TrimSpace(p.Name)
	if out.Name == "" {
		out.Name = DefaultName
	}
	out.Experience = strings.TrimSpace(p.Experience)
	if out.Experience == "" {
		out.Experience = "не указан"
	}
	out.SalonPrice = clampNonNegative(p.SalonPrice)
	out.SalonClients = clampNonNegative(p.SalonClients)
	out.SalonPercent = clampNonNegative(p.SalonPercent)
	out.PrivatePrice = clampNonNegative(p.PrivatePrice)
	out.PrivateClients = clampNonNegative(p.PrivateClients)
	out.RepeatRate = clampNonNegative(p.RepeatRate)
	return out
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
