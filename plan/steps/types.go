package steps

import "growthplan-backend/plan/blocks"

// Step is one recommended action in the generated plan. Steps are immutable
// once emitted; the selector orders them by priority and caps the list at
// MaxSteps.
type Step struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Detail string      `json:"detail"`
	Metric string      `json:"metric"`
	Data   Data        `json:"data,omitempty"`
	Blocks []blocks.ID `json:"pdfBlocks"`
}

// Data is the structured numeric payload substituted into step copy and
// content blocks. Zero fields are not rendered.
type Data struct {
	TargetClients int `json:"targetClients,omitempty"`
	TargetPercent int `json:"targetPercent,omitempty"`
	TargetPrice   int `json:"targetPrice,omitempty"`
	GainMonthly   int `json:"gainMonthly,omitempty"`
}

// MaxSteps bounds the plan length; candidates past the cap are dropped in
// priority order.
const MaxSteps = 5

// MinSteps is the floor the fallback rules top the list up to.
const MinSteps = 3
