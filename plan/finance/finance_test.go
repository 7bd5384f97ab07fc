package finance

import (
	"testing"

	"growthplan-backend/plan/model"
	"growthplan-backend/plan/refdata"
)

func TestMonthlyProfitSalonOnly(t *testing.T) {
	p := model.UserProfile{
		WorkMode:     model.WorkModeSalonOnly,
		SalonPrice:   2000,
		SalonClients: 10,
		SalonPercent: 40,
	}
	got := MonthlyProfit(p, refdata.Default())
	if got != 32000 {
		t.Fatalf("expected 32000, got %d", got)
	}
}

func TestMonthlyProfitHybridSumsRoundedTerms(t *testing.T) {
	p := model.UserProfile{
		WorkMode:       model.WorkModeHybrid,
		SalonPrice:     1800,
		SalonClients:   8,
		SalonPercent:   35,
		PrivatePrice:   1500,
		PrivateClients: 5,
		WorkPlace:      "home",
	}
	b := Compute(p, refdata.Default())
	if b.SalonMonthly != 20160 {
		t.Fatalf("salon term: expected 20160, got %d", b.SalonMonthly)
	}
	if b.PrivateMonthly != 25500 {
		t.Fatalf("private term: expected 25500, got %d", b.PrivateMonthly)
	}
	if b.Total != 45660 {
		t.Fatalf("total: expected 45660, got %d", b.Total)
	}
}

func TestMonthlyProfitPrivateOnlyUsesExpenseRate(t *testing.T) {
	cases := []struct {
		name      string
		workPlace string
		want      int
	}{
		{name: "home", workPlace: "home", want: 10200},
		{name: "own space", workPlace: "own", want: 7200},
		{name: "unknown falls back to default rate", workPlace: "garage", want: 10200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := model.UserProfile{
				WorkMode:       model.WorkModePrivateOnly,
				PrivatePrice:   1500,
				PrivateClients: 2,
				WorkPlace:      tc.workPlace,
			}
			if got := MonthlyProfit(p, refdata.Default()); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestMonthlyProfitUnknownWorkModeFallsThroughToPrivate(t *testing.T) {
	p := model.UserProfile{
		WorkMode:       model.WorkMode("franchise"),
		PrivatePrice:   1000,
		PrivateClients: 4,
		WorkPlace:      "home",
	}
	if got := MonthlyProfit(p, refdata.Default()); got != 13600 {
		t.Fatalf("expected 13600, got %d", got)
	}
}

func TestMonthlyProfitZeroInputsYieldZero(t *testing.T) {
	for _, mode := range []model.WorkMode{model.WorkModeSalonOnly, model.WorkModeHybrid, model.WorkModePrivateOnly} {
		p := model.UserProfile{WorkMode: mode}
		if got := MonthlyProfit(p, refdata.Default()); got != 0 {
			t.Fatalf("mode %s: expected 0, got %d", mode, got)
		}
	}
}

func TestMonthlyProfitMonotonicInClients(t *testing.T) {
	tables := refdata.Default()
	base := model.UserProfile{
		WorkMode:       model.WorkModeHybrid,
		SalonPrice:     1800,
		SalonPercent:   35,
		PrivatePrice:   1500,
		WorkPlace:      "home",
		PrivateClients: 3,
	}
	prev := -1
	for clients := 0; clients <= 30; clients++ {
		p := base
		p.SalonClients = clients
		got := MonthlyProfit(p, tables)
		if got < prev {
			t.Fatalf("profit decreased at salonClients=%d: %d < %d", clients, got, prev)
		}
		prev = got
	}
	prev = -1
	for clients := 0; clients <= 30; clients++ {
		p := base
		p.PrivateClients = clients
		got := MonthlyProfit(p, tables)
		if got < prev {
			t.Fatalf("profit decreased at privateClients=%d: %d < %d", clients, got, prev)
		}
		prev = got
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{in: 0, want: 0},
		{in: 0.4, want: 0},
		{in: 0.5, want: 1},
		{in: 1.49, want: 1},
		{in: 2.5, want: 3},
		{in: 19999.5, want: 20000},
	}
	for _, tc := range cases {
		if got := RoundHalfUp(tc.in); got != tc.want {
			t.Fatalf("RoundHalfUp(%v): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	if got := CeilDiv(32000, 6800); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := CeilDiv(100, 50); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := CeilDiv(100, 0); got != 0 {
		t.Fatalf("zero divisor: expected 0, got %d", got)
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{in: 0, want: "0"},
		{in: 999, want: "999"},
		{in: 1000, want: "1 000"},
		{in: 32000, want: "32 000"},
		{in: 45660, want: "45 660"},
		{in: 1234567, want: "1 234 567"},
		{in: -32000, want: "-32 000"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Fatalf("FormatMoney(%d): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
