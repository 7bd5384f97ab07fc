package scenario

import (
	"testing"

	"growthplan-backend/plan/model"
	"growthplan-backend/plan/refdata"
)

func TestClassifySalonAndHybridSplitOnEnergyVector(t *testing.T) {
	cases := []struct {
		name   string
		mode   model.WorkMode
		vector model.EnergyVector
		want   Tag
	}{
		{name: "salon exit", mode: model.WorkModeSalonOnly, vector: model.EnergyExit, want: SalonExit},
		{name: "salon grow", mode: model.WorkModeSalonOnly, vector: model.EnergyGrow, want: SalonGrow},
		{name: "salon unknown vector grows", mode: model.WorkModeSalonOnly, vector: model.EnergyVector("maybe"), want: SalonGrow},
		{name: "hybrid exit", mode: model.WorkModeHybrid, vector: model.EnergyExit, want: HybridExit},
		{name: "hybrid grow", mode: model.WorkModeHybrid, vector: model.EnergyGrow, want: HybridGrow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := model.UserProfile{WorkMode: tc.mode, EnergyVector: tc.vector}
			if got := Classify(p, refdata.Default()); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestClassifyPrivateOnly(t *testing.T) {
	cases := []struct {
		name       string
		city       string
		price      int
		repeatRate int
		want       Tag
	}{
		// moscow benchmark 4000, threshold 3600
		{name: "high price good retention", city: "moscow", price: 3800, repeatRate: 50, want: PrivateOptimize},
		{name: "price exactly at threshold", city: "moscow", price: 3600, repeatRate: 45, want: PrivateOptimize},
		{name: "price below threshold", city: "moscow", price: 3599, repeatRate: 80, want: PrivateGrow},
		{name: "retention below 45", city: "moscow", price: 4000, repeatRate: 44, want: PrivateGrow},
		{name: "retention exactly 45", city: "moscow", price: 4000, repeatRate: 45, want: PrivateOptimize},
		{name: "zero price", city: "spb", price: 0, repeatRate: 90, want: PrivateGrow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := model.UserProfile{
				WorkMode:     model.WorkModePrivateOnly,
				City:         tc.city,
				PrivatePrice: tc.price,
				RepeatRate:   tc.repeatRate,
			}
			if got := Classify(p, refdata.Default()); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestClassifyUnknownCityMatchesDefaultTier(t *testing.T) {
	tables := refdata.Default()
	unknown := model.UserProfile{
		WorkMode:     model.WorkModePrivateOnly,
		City:         "atlantis",
		PrivatePrice: 2100,
		RepeatRate:   60,
	}
	reference := unknown
	reference.City = refdata.DefaultCity

	if got, want := Classify(unknown, tables), Classify(reference, tables); got != want {
		t.Fatalf("unknown city classified %s, default tier %s", got, want)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	p := model.UserProfile{
		WorkMode:     model.WorkModePrivateOnly,
		City:         "spb",
		PrivatePrice: 3200,
		RepeatRate:   47,
	}
	tables := refdata.Default()
	first := Classify(p, tables)
	for i := 0; i < 10; i++ {
		if got := Classify(p, tables); got != first {
			t.Fatalf("classification changed between calls: %s then %s", first, got)
		}
	}
}
