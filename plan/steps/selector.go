package steps

import (
	"growthplan-backend/plan/finance"
	"growthplan-backend/plan/model"
	"growthplan-backend/plan/refdata"
	"growthplan-backend/plan/scenario"
)

// ruleContext carries the profile plus everything the rule tables derive
// figures from, computed once per selection.
type ruleContext struct {
	profile   model.UserProfile
	tables    refdata.Tables
	breakdown finance.Breakdown
	perClient int
	benchmark refdata.Benchmark
}

// rule is one guarded step producer. Rules are evaluated in declaration
// order; order is the priority ordering, dropped candidates past the cap are
// a policy, not an error.
type rule struct {
	when  func(ruleContext) bool
	build func(ruleContext) Step
}

func always(ruleContext) bool { return true }

// Select produces the ordered, bounded step list for a profile. It is
// deterministic, never fails, and always returns at least one step.
func Select(p model.UserProfile, tables refdata.Tables) []Step {
	p = p.Normalize()
	bm, _ := tables.BenchmarkFor(p.City)
	ctx := ruleContext{
		profile:   p,
		tables:    tables,
		breakdown: finance.Compute(p, tables),
		perClient: finance.PerClientPrivate(p, tables),
		benchmark: bm,
	}

	rules := rulesFor(scenario.Classify(p, tables))

	out := make([]Step, 0, MaxSteps)
	for _, r := range rules {
		if len(out) == MaxSteps {
			break
		}
		if r.when(ctx) {
			out = append(out, r.build(ctx))
		}
	}

	// Fallback rules run on the accumulated list before the cap: a sparse
	// scenario still yields a usable plan.
	if len(out) < MinSteps && p.RepeatRate < 50 {
		out = append(out, universalRetentionStep())
	}
	if len(out) < MinSteps {
		out = append(out, universalReviewsStep())
	}
	if len(out) > MaxSteps {
		out = out[:MaxSteps]
	}
	return out
}

func rulesFor(tag scenario.Tag) []rule {
	switch tag {
	case scenario.SalonExit:
		return salonExitRules
	case scenario.SalonGrow:
		return salonGrowRules
	case scenario.HybridExit:
		return hybridExitRules
	case scenario.HybridGrow:
		return hybridGrowRules
	default:
		return privateRules
	}
}
