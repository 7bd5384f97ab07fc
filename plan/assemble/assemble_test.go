package assemble

import (
	"fmt"
	"strings"
	"testing"

	"growthplan-backend/plan/model"
	"growthplan-backend/plan/refdata"
	"growthplan-backend/plan/steps"
	"growthplan-backend/plan/view"
)

var testProfiles = []model.UserProfile{
	{WorkMode: model.WorkModeSalonOnly, EnergyVector: model.EnergyExit, SalonPrice: 2000, SalonClients: 10, SalonPercent: 40, Name: "Анна"},
	{WorkMode: model.WorkModeHybrid, EnergyVector: model.EnergyExit, PrivatePrice: 1500, PrivateClients: 5, SalonPrice: 1800, SalonClients: 8, SalonPercent: 35, City: "spb", WorkPlace: "home", RepeatRate: 30},
	{WorkMode: model.WorkModePrivateOnly, City: "moscow", PrivatePrice: 3800, PrivateClients: 12, RepeatRate: 50},
	{WorkMode: model.WorkModePrivateOnly, RepeatRate: 60, Sources: []string{"a", "b", "c"}, HasCRM: true},
	{},
}

func TestEstimateMatchesAssembledPageCount(t *testing.T) {
	tables := refdata.Default()
	for i, p := range testProfiles {
		m := view.Build(p, tables)
		list := steps.Select(p, tables)

		estimate := EstimateTotalPages(list)
		pages := Assemble(m, list)
		if len(pages) != estimate {
			t.Fatalf("profile %d: estimated %d pages, assembled %d", i, estimate, len(pages))
		}
	}
}

func TestAssembledPagesCarrySequentialNumbering(t *testing.T) {
	tables := refdata.Default()
	p := testProfiles[0]
	pages := Assemble(view.Build(p, tables), steps.Select(p, tables))

	total := len(pages)
	for i, page := range pages {
		if page.Number != i+1 {
			t.Fatalf("page %d numbered %d", i+1, page.Number)
		}
		if page.Total != total {
			t.Fatalf("page %d carries total %d, want %d", i+1, page.Total, total)
		}
		marker := fmt.Sprintf("%d / %d", i+1, total)
		if !strings.Contains(page.HTML, marker) {
			t.Fatalf("page %d missing pagination marker %q", i+1, marker)
		}
	}
}

func TestAssembleStructure(t *testing.T) {
	tables := refdata.Default()
	p := testProfiles[2]
	list := steps.Select(p, tables)
	pages := Assemble(view.Build(p, tables), list)

	if !strings.Contains(pages[0].HTML, "Персональный план роста") {
		t.Fatal("first page is not the title page")
	}
	if !strings.Contains(pages[1].HTML, "Ваша ситуация") {
		t.Fatal("second page is not the situation page")
	}
	if !strings.Contains(pages[2].HTML, "Ваши шаги") {
		t.Fatal("third page is not the overview page")
	}
	for _, step := range list {
		if !strings.Contains(pages[2].HTML, step.Title) {
			t.Fatalf("overview page missing step title %q", step.Title)
		}
	}
	last := pages[len(pages)-1]
	if !strings.Contains(last.HTML, "получится") {
		t.Fatal("last page is not the farewell page")
	}
}

func TestEstimateFixedOverheadOnly(t *testing.T) {
	if got := EstimateTotalPages(nil); got != 5 {
		t.Fatalf("expected 5 overhead pages for an empty step list, got %d", got)
	}
}
