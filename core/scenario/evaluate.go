package scenario

import (
	"github.com/shiftwise/shiftwise/core/model"
	"github.com/shiftwise/shiftwise/core/optimizer"
)

// Evaluation is the outcome of a what-if run: baseline and scenario
// results plus their KPI comparison.
type Evaluation struct {
	Spec       Spec
	Baseline   optimizer.Result
	Scenario   optimizer.Result
	Comparison Comparison
}

// Evaluate runs the full pipeline twice, once on the baseline instance
// and once on the transformed one, and diffs the two KPI sets. There is
// no incremental re-solving; the runs are independent, so callers may
// evaluate several scenarios concurrently with one engine.
func Evaluate(eng *optimizer.Engine, baseline *model.ProblemInstance, spec Spec) (Evaluation, error) {
	transformed, err := Apply(baseline, spec)
	if err != nil {
		return Evaluation{}, err
	}
	ev := Evaluation{
		Spec:     spec,
		Baseline: eng.OptimizeScenario(baseline, "baseline"),
		Scenario: eng.OptimizeScenario(transformed, spec.Label()),
	}
	ev.Comparison = Compare(ev.Baseline.KPIs, ev.Scenario.KPIs)
	return ev, nil
}
