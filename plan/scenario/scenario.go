package scenario

import (
	"growthplan-backend/plan/model"
	"growthplan-backend/plan/refdata"
)

// Tag is the single classification label driving narrative copy and step
// selection. It is computed once per generation and never recomputed.
type Tag string

const (
	SalonExit       Tag = "salon-exit"
	SalonGrow       Tag = "salon-grow"
	HybridExit      Tag = "hybrid-exit"
	HybridGrow      Tag = "hybrid-grow"
	PrivateGrow     Tag = "private-grow"
	PrivateOptimize Tag = "private-optimize"
)

// Price and retention thresholds for the private-only split. Fixed business
// constants, not configurable at call time.
const (
	highPriceFactor    = 0.9
	goodRetentionFloor = 45
)

// Classify maps a profile to exactly one scenario tag. It never fails:
// unknown cities resolve through the regional default benchmark and unknown
// work modes fall through to the private-only branch.
func Classify(p model.UserProfile, tables refdata.Tables) Tag {
	switch p.WorkMode {
	case model.WorkModeSalonOnly:
		if p.EnergyVector == model.EnergyExit {
			return SalonExit
		}
		return SalonGrow
	case model.WorkModeHybrid:
		if p.EnergyVector == model.EnergyExit {
			return HybridExit
		}
		return HybridGrow
	default:
		bm, _ := tables.BenchmarkFor(p.City)
		highPrice := float64(p.PrivatePrice) >= float64(bm.AvgPrice)*highPriceFactor
		goodRetention := p.RepeatRate >= goodRetentionFloor
		if highPrice && goodRetention {
			return PrivateOptimize
		}
		return PrivateGrow
	}
}
