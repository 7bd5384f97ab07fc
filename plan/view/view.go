package view

import (
	"time"

	"growthplan-backend/plan/finance"
	"growthplan-backend/plan/model"
	"growthplan-backend/plan/refdata"
	"growthplan-backend/plan/scenario"
)

// Model is the flat view-model every page and content block renders from.
// It is assembled once per generation and not mutated afterwards.
type Model struct {
	Profile model.UserProfile `json:"profile"`

	Scenario scenario.Tag `json:"scenario"`

	MonthlyProfit  int `json:"monthlyProfit"`
	SalonMonthly   int `json:"salonMonthly"`
	PrivateMonthly int `json:"privateMonthly"`
	PerClient      int `json:"perClientPrivate"`
	BenchmarkPrice int `json:"benchmarkPrice"`

	// Pre-formatted currency strings in the fixed output locale.
	MonthlyProfitFmt  string `json:"monthlyProfitFmt"`
	SalonMonthlyFmt   string `json:"salonMonthlyFmt"`
	PrivateMonthlyFmt string `json:"privateMonthlyFmt"`
	PerClientFmt      string `json:"perClientFmt"`
	BenchmarkFmt      string `json:"benchmarkFmt"`

	CityName         string `json:"cityName"`
	WorkPlaceName    string `json:"workPlaceName"`
	WorkModeName     string `json:"workModeName"`
	ClientSourceName string `json:"clientSourceName"`

	// Fallback flags: true when the corresponding reference key was unknown
	// and the default tier/rate was substituted.
	CityFallback      bool `json:"cityFallback"`
	WorkPlaceFallback bool `json:"workPlaceFallback"`

	// GeneratedAt is cosmetic display data, excluded from equality in tests.
	GeneratedAt string `json:"generatedAt"`
}

// Build assembles the view model: raw profile fields, computed financials,
// scenario tag and resolved display names. Pure aggregation, no branching
// beyond what the calculator and classifier already do.
func Build(p model.UserProfile, tables refdata.Tables) Model {
	return buildAt(p, tables, time.Now())
}

func buildAt(p model.UserProfile, tables refdata.Tables, now time.Time) Model {
	p = p.Normalize()

	breakdown := finance.Compute(p, tables)
	perClient := finance.PerClientPrivate(p, tables)
	bm, cityKnown := tables.BenchmarkFor(p.City)
	_, placeKnown := tables.ExpenseRateFor(p.WorkPlace)

	return Model{
		Profile:  p,
		Scenario: scenario.Classify(p, tables),

		MonthlyProfit:  breakdown.Total,
		SalonMonthly:   breakdown.SalonMonthly,
		PrivateMonthly: breakdown.PrivateMonthly,
		PerClient:      perClient,
		BenchmarkPrice: bm.AvgPrice,

		MonthlyProfitFmt:  finance.FormatMoney(breakdown.Total),
		SalonMonthlyFmt:   finance.FormatMoney(breakdown.SalonMonthly),
		PrivateMonthlyFmt: finance.FormatMoney(breakdown.PrivateMonthly),
		PerClientFmt:      finance.FormatMoney(perClient),
		BenchmarkFmt:      finance.FormatMoney(bm.AvgPrice),

		CityName:         refdata.CityName(p.City),
		WorkPlaceName:    refdata.WorkPlaceName(p.WorkPlace),
		WorkModeName:     refdata.WorkModeName(string(p.WorkMode)),
		ClientSourceName: refdata.ClientSourceName(string(p.SalonClientSource)),

		CityFallback:      !cityKnown,
		WorkPlaceFallback: !placeKnown,

		GeneratedAt: now.Format("02.01.2006"),
	}
}
