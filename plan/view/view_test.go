package view

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"growthplan-backend/plan/model"
	"growthplan-backend/plan/refdata"
	"growthplan-backend/plan/scenario"
)

func sampleProfile() model.UserProfile {
	return model.UserProfile{
		Name:           "Анна",
		WorkMode:       model.WorkModePrivateOnly,
		City:           "moscow",
		WorkPlace:      "home",
		PrivatePrice:   3800,
		PrivateClients: 12,
		RepeatRate:     50,
		Sources:        []string{"avito", "vk"},
	}
}

func TestBuildComputesDerivedFields(t *testing.T) {
	m := Build(sampleProfile(), refdata.Default())

	if m.Scenario != scenario.PrivateOptimize {
		t.Fatalf("expected private-optimize, got %s", m.Scenario)
	}
	// 3800*12*4*0.85 = 155040
	if m.MonthlyProfit != 155040 {
		t.Fatalf("expected monthly profit 155040, got %d", m.MonthlyProfit)
	}
	if m.MonthlyProfitFmt != "155 040" {
		t.Fatalf("expected formatted profit \"155 040\", got %q", m.MonthlyProfitFmt)
	}
	if m.PerClient != 3230 {
		t.Fatalf("expected per-client 3230, got %d", m.PerClient)
	}
	if m.BenchmarkPrice != 4000 || m.BenchmarkFmt != "4 000" {
		t.Fatalf("unexpected benchmark: %d %q", m.BenchmarkPrice, m.BenchmarkFmt)
	}
	if m.CityName != "Москва" {
		t.Fatalf("expected city display name, got %q", m.CityName)
	}
	if m.CityFallback || m.WorkPlaceFallback {
		t.Fatal("known keys must not set fallback flags")
	}
}

func TestBuildDefaultsNameAndFlagsFallbacks(t *testing.T) {
	p := sampleProfile()
	p.Name = "  "
	p.City = "atlantis"
	p.WorkPlace = "garage"

	m := Build(p, refdata.Default())
	if m.Profile.Name != model.DefaultName {
		t.Fatalf("expected default name, got %q", m.Profile.Name)
	}
	if !m.CityFallback {
		t.Fatal("expected city fallback flag")
	}
	if !m.WorkPlaceFallback {
		t.Fatal("expected workplace fallback flag")
	}
	if m.CityName == "" || m.WorkPlaceName == "" {
		t.Fatal("fallback keys must still resolve display names")
	}
}

func TestBuildIsIdempotentApartFromDate(t *testing.T) {
	p := sampleProfile()
	tables := refdata.Default()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a := buildAt(p, tables, at)
	b := buildAt(p, tables, at)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("expected structurally equal models")
	}

	later := buildAt(p, tables, at.Add(48*time.Hour))
	later.GeneratedAt = a.GeneratedAt
	if !reflect.DeepEqual(a, later) {
		t.Fatal("models differ beyond the generation date")
	}
}

func TestModelRoundTripsThroughJSON(t *testing.T) {
	a := Build(sampleProfile(), refdata.Default())

	payload, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var b Model
	if err := json.Unmarshal(payload, &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("model changed across a JSON round trip")
	}
}

func TestGeneratedAtUsesDisplayFormat(t *testing.T) {
	m := buildAt(sampleProfile(), refdata.Default(), time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC))
	if m.GeneratedAt != "09.01.2025" {
		t.Fatalf("expected 09.01.2025, got %q", m.GeneratedAt)
	}
}
