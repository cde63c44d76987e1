package optimizer

import (
	"math"
	"testing"

	"github.com/shiftwise/shiftwise/config"
	"github.com/shiftwise/shiftwise/core/metrics"
	"github.com/shiftwise/shiftwise/core/model"
	"github.com/shiftwise/shiftwise/infra/logger"
)

type captureSink struct {
	events []metrics.SolveEvent
}

func (s *captureSink) RecordSolve(ev metrics.SolveEvent) error {
	s.events = append(s.events, ev)
	return nil
}

func testEngine(sink metrics.MetricsSink) *Engine {
	var solver config.SolverConfig
	solver.SetDefaults()
	return NewEngine(solver, testPolicy(), logger.NopLogger{}, sink)
}

func TestEngineOptimize(t *testing.T) {
	sink := &captureSink{}
	eng := testEngine(sink)
	res := eng.Optimize(storeInstance(t))

	if res.Status != model.StatusOptimal {
		t.Fatalf("expected Optimal, got %s", res.Status)
	}
	if math.Abs(res.KPIs.TotalCost-170) > 1e-9 {
		t.Fatalf("expected cost 170, got %v", res.KPIs.TotalCost)
	}
	if res.RunID == "" {
		t.Fatalf("run id missing")
	}
	if len(sink.events) != 1 {
		t.Fatalf("expected one solve event, got %d", len(sink.events))
	}
	ev := sink.events[0]
	if ev.RunID != res.RunID || ev.Status != model.StatusOptimal || ev.TotalCost != res.KPIs.TotalCost {
		t.Fatalf("event does not match result: %+v", ev)
	}
	if ev.Scenario != "" {
		t.Fatalf("plain runs carry no scenario label, got %q", ev.Scenario)
	}
}

func TestEngineScenarioLabel(t *testing.T) {
	sink := &captureSink{}
	eng := testEngine(sink)
	eng.OptimizeScenario(storeInstance(t), "demand_scale(1.5)")
	if len(sink.events) != 1 || sink.events[0].Scenario != "demand_scale(1.5)" {
		t.Fatalf("scenario label not propagated: %+v", sink.events)
	}
}

func TestEngineNilSink(t *testing.T) {
	var solver config.SolverConfig
	solver.SetDefaults()
	eng := NewEngine(solver, testPolicy(), logger.NopLogger{}, nil)
	res := eng.Optimize(storeInstance(t))
	if res.Status != model.StatusOptimal {
		t.Fatalf("nil sink must not affect solving, got %s", res.Status)
	}
}

func TestEngineInfeasibleResult(t *testing.T) {
	inst := mustFormulate(t,
		[]model.Employee{employee("c1", model.RoleCashier, 15, 40)},
		[]model.DemandRecord{
			{Date: date(10), ForecastedDemand: 50},
			{Date: date(11), ForecastedDemand: 50},
		},
		[]model.AvailabilityRecord{avail(10, "c1", 8, 15, model.RoleCashier)},
	)
	res := testEngine(&captureSink{}).Optimize(inst)
	if res.Status != model.StatusInfeasible {
		t.Fatalf("expected Infeasible, got %s", res.Status)
	}
	if !res.Schedule.Empty() {
		t.Fatalf("infeasible run must produce an empty schedule")
	}
	if res.KPIs != (model.KPISet{}) {
		t.Fatalf("infeasible run must produce zero KPIs, got %+v", res.KPIs)
	}
}
