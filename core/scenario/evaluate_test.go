package scenario

import (
	"math"
	"testing"

	"github.com/shiftwise/shiftwise/config"
	"github.com/shiftwise/shiftwise/core/model"
	"github.com/shiftwise/shiftwise/core/optimizer"
	"github.com/shiftwise/shiftwise/infra/logger"
)

func testEngine() *optimizer.Engine {
	var solver config.SolverConfig
	solver.SetDefaults()
	var policy config.PolicyConfig
	policy.SetDefaults()
	return optimizer.NewEngine(solver, policy, logger.NopLogger{}, nil)
}

func TestEvaluateIdentityFactor(t *testing.T) {
	inst := testInstance(t)
	ev, err := Evaluate(testEngine(), inst, Spec{Kind: KindDemandScale, Name: "no change", Factor: 1.0})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.Baseline.Status != model.StatusOptimal || ev.Scenario.Status != model.StatusOptimal {
		t.Fatalf("expected both runs Optimal, got %s/%s", ev.Baseline.Status, ev.Scenario.Status)
	}
	// Factor 1.0 leaves the instance unchanged, so the KPIs must match.
	if ev.Baseline.KPIs != ev.Scenario.KPIs {
		t.Fatalf("identity scenario changed KPIs: %+v vs %+v", ev.Baseline.KPIs, ev.Scenario.KPIs)
	}
	if ev.Comparison.CostDelta != 0 || ev.Comparison.CoverageDelta != 0 {
		t.Fatalf("identity scenario reported deltas: %+v", ev.Comparison)
	}
}

func TestEvaluateDemandSpikeRaisesCost(t *testing.T) {
	inst := testInstance(t)
	ev, err := Evaluate(testEngine(), inst, Spec{Kind: KindDemandScale, Factor: 1.2})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.Scenario.Status != model.StatusOptimal {
		t.Fatalf("scenario run: %s", ev.Scenario.Status)
	}
	if ev.Comparison.CostDelta <= 0 {
		t.Fatalf("more demand can only cost more, delta=%v", ev.Comparison.CostDelta)
	}
	wantPct := ev.Comparison.CostDelta / ev.Baseline.KPIs.TotalCost * 100
	if math.Abs(ev.Comparison.CostDeltaPct-wantPct) > 1e-9 {
		t.Fatalf("pct delta inconsistent: %v vs %v", ev.Comparison.CostDeltaPct, wantPct)
	}
}

func TestEvaluateRemovalTurnsInfeasible(t *testing.T) {
	inst := testInstance(t)
	// Removing the only cashier leaves the second date uncoverable.
	ev, err := Evaluate(testEngine(), inst, Spec{Kind: KindRemoval, EmployeeIDs: []string{"c1"}})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.Baseline.Status != model.StatusOptimal {
		t.Fatalf("baseline: %s", ev.Baseline.Status)
	}
	if ev.Scenario.Status != model.StatusInfeasible {
		t.Fatalf("expected Infeasible after removal, got %s", ev.Scenario.Status)
	}
	if !ev.Scenario.Schedule.Empty() {
		t.Fatalf("infeasible scenario produced a schedule")
	}
}

func TestEvaluateRejectsInvalidSpec(t *testing.T) {
	if _, err := Evaluate(testEngine(), testInstance(t), Spec{Kind: KindDemandScale, Factor: -1}); err == nil {
		t.Fatalf("expected validation error")
	}
}
