package scenario

import "github.com/shiftwise/shiftwise/core/model"

// Comparison quantifies a scenario's impact relative to a baseline.
type Comparison struct {
	CostDelta     float64 `json:"cost_delta"`
	CostDeltaPct  float64 `json:"cost_delta_pct"`
	CoverageDelta float64 `json:"coverage_delta"`
}

// Compare diffs two KPI sets, baseline first. A zero-cost baseline
// reports a 0% relative change rather than dividing by zero.
func Compare(baseline, scenario model.KPISet) Comparison {
	cmp := Comparison{
		CostDelta:     scenario.TotalCost - baseline.TotalCost,
		CoverageDelta: scenario.CoveragePercentage - baseline.CoveragePercentage,
	}
	if baseline.TotalCost != 0 {
		cmp.CostDeltaPct = cmp.CostDelta / baseline.TotalCost * 100
	}
	return cmp
}
