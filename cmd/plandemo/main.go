package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"growthplan-backend/plan/assemble"
	"growthplan-backend/plan/model"
	"growthplan-backend/plan/refdata"
	"growthplan-backend/plan/scenario"
	"growthplan-backend/plan/steps"
	"growthplan-backend/plan/view"
)

func main() {
	outDir := flag.String("out", "./out/plandemo", "output directory for generated pages")
	profilePath := flag.String("profile", "", "path to a profile JSON file (defaults to a built-in sample)")
	flag.Parse()

	profile, err := loadProfile(*profilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load profile: %v\n", err)
		os.Exit(1)
	}
	profile = profile.Normalize()

	tables := refdata.Default()
	tag := scenario.Classify(profile, tables)
	selected := steps.Select(profile, tables)
	vm := view.Build(profile, tables)

	estimate := assemble.EstimateTotalPages(selected)
	pages := assemble.Assemble(vm, selected)
	if len(pages) != estimate {
		fmt.Fprintf(os.Stderr, "page estimate %d does not match rendered %d\n", estimate, len(pages))
		os.Exit(1)
	}

	if err := writeOutputs(*outDir, selected, pages); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: scenario=%s steps=%d pages=%d out=%s\n", tag, len(selected), len(pages), *outDir)
}

func loadProfile(path string) (model.UserProfile, error) {
	if path == "" {
		return sampleProfile(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.UserProfile{}, err
	}
	var p model.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return model.UserProfile{}, err
	}
	return p, nil
}

func writeOutputs(outDir string, selected []steps.Step, pages []assemble.Page) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, page := range pages {
		name := fmt.Sprintf("page-%02d.html", page.Number)
		if err := os.WriteFile(filepath.Join(outDir, name), []byte(page.HTML), 0o644); err != nil {
			return err
		}
	}

	payload, err := json.MarshalIndent(selected, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, "steps.json"), payload, 0o644)
}

func sampleProfile() model.UserProfile {
	return model.UserProfile{
		Name:              "Анна",
		City:              "moscow",
		Experience:        "3-5",
		WorkMode:          model.WorkModeSalonOnly,
		EnergyVector:      model.EnergyExit,
		SalonPrice:        2000,
		SalonClients:      10,
		SalonPercent:      40,
		SalonClientSource: model.SourceTakeLeftovers,
		SalonPercentFair:  "low",
		RepeatRate:        35,
		Sources:           []string{"instagram"},
	}
}
