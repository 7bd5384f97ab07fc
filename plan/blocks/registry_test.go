package blocks

import (
	"strings"
	"testing"

	"growthplan-backend/plan/model"
	"growthplan-backend/plan/refdata"
	"growthplan-backend/plan/view"
)

func sampleModel() view.Model {
	return view.Build(model.UserProfile{
		Name:           "Анна",
		WorkMode:       model.WorkModePrivateOnly,
		City:           "moscow",
		WorkPlace:      "home",
		PrivatePrice:   3800,
		PrivateClients: 12,
		RepeatRate:     50,
		Sources:        []string{"avito", "vk"},
	}, refdata.Default())
}

func TestEveryRegisteredBlockRendersDeclaredPageCount(t *testing.T) {
	m := sampleModel()
	for _, id := range All() {
		pages, ok := Render(id, m)
		if !ok {
			t.Fatalf("block %s failed to render", id)
		}
		if len(pages) != PageCount(id) {
			t.Fatalf("block %s renders %d pages but declares %d", id, len(pages), PageCount(id))
		}
		for i, page := range pages {
			if strings.TrimSpace(page) == "" {
				t.Fatalf("block %s page %d is empty", id, i+1)
			}
			if !strings.Contains(page, "<h2>") {
				t.Fatalf("block %s page %d has no heading", id, i+1)
			}
		}
	}
}

func TestPageCountDefaultsToOne(t *testing.T) {
	if got := PageCount(ID("no-such-block")); got != 1 {
		t.Fatalf("expected default page count 1, got %d", got)
	}
}

func TestRenderUnknownBlockIsNotOK(t *testing.T) {
	if _, ok := Render(ID("no-such-block"), sampleModel()); ok {
		t.Fatal("expected ok=false for unregistered block")
	}
}

func TestDeclaredPageCountsAreRegistered(t *testing.T) {
	for id := range pageCounts {
		if !Registered(id) {
			t.Fatalf("page count declared for unregistered block %s", id)
		}
	}
}
