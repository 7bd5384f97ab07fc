package finance

import (
	"math"

	"growthplan-backend/plan/model"
	"growthplan-backend/plan/refdata"
)

// weeksPerMonth is a deliberate simplification: user-facing figures are
// quoted per a flat 4-week month, not a calendar month.
const weeksPerMonth = 4

// Breakdown carries the per-branch monthly profit figures.
type Breakdown struct {
	SalonMonthly   int
	PrivateMonthly int
	Total          int
}

// MonthlyProfit computes the monthly profit for the active work mode.
// Rounding is half-up at the whole-term level so displayed totals do not
// accumulate per-factor rounding drift.
func MonthlyProfit(p model.UserProfile, tables refdata.Tables) int {
	return Compute(p, tables).Total
}

// Compute returns the full per-branch breakdown. Branches that belong to an
// inactive work mode contribute zero.
func Compute(p model.UserProfile, tables refdata.Tables) Breakdown {
	switch p.WorkMode {
	case model.WorkModeSalonOnly:
		salon := salonTerm(p)
		return Breakdown{SalonMonthly: salon, Total: salon}
	case model.WorkModeHybrid:
		salon := salonTerm(p)
		private := privateTerm(p, tables)
		return Breakdown{SalonMonthly: salon, PrivateMonthly: private, Total: salon + private}
	default:
		private := privateTerm(p, tables)
		return Breakdown{PrivateMonthly: private, Total: private}
	}
}

// PerClientPrivate is the profit retained from one private session after
// workplace overhead.
func PerClientPrivate(p model.UserProfile, tables refdata.Tables) int {
	rate, _ := tables.ExpenseRateFor(p.WorkPlace)
	return RoundHalfUp(float64(p.PrivatePrice) * (1 - rate))
}

func salonTerm(p model.UserProfile) int {
	return RoundHalfUp(float64(p.SalonPrice) * float64(p.SalonClients) * weeksPerMonth * float64(p.SalonPercent) / 100)
}

func privateTerm(p model.UserProfile, tables refdata.Tables) int {
	rate, _ := tables.ExpenseRateFor(p.WorkPlace)
	return RoundHalfUp(float64(p.PrivatePrice) * float64(p.PrivateClients) * weeksPerMonth * (1 - rate))
}

// RoundHalfUp rounds to the nearest integer with .5 rounding away from zero
// toward positive infinity, matching the displayed-currency convention.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// CeilDiv returns ceil(a/b) for positive b. Client targets round up: an
// under-provisioned target is worse than an over-provisioned one.
func CeilDiv(a, b float64) int {
	if b <= 0 {
		return 0
	}
	return int(math.Ceil(a / b))
}
