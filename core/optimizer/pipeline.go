package optimizer

import (
	"time"

	"github.com/google/uuid"

	"github.com/shiftwise/shiftwise/config"
	"github.com/shiftwise/shiftwise/core/logger"
	"github.com/shiftwise/shiftwise/core/metrics"
	"github.com/shiftwise/shiftwise/core/model"
)

// Result bundles the outcome of one optimization run.
type Result struct {
	RunID    string
	Status   model.SolveStatus
	Schedule model.AssignmentSchedule
	KPIs     model.KPISet
	WallTime time.Duration
}

// Engine runs the full pipeline: encode, solve, extract, compute KPIs.
// The stages execute sequentially; the solve call is the only one that
// blocks, for at most the configured time budget. An Engine holds no
// per-run state, so one value can serve concurrent runs.
type Engine struct {
	solver config.SolverConfig
	policy config.PolicyConfig
	log    logger.Logger
	sink   metrics.MetricsSink
}

// NewEngine builds an Engine. A nil sink disables metrics.
func NewEngine(solver config.SolverConfig, policy config.PolicyConfig, log logger.Logger, sink metrics.MetricsSink) *Engine {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Engine{solver: solver, policy: policy, log: log, sink: sink}
}

// Policy returns the labor policy the engine encodes under.
func (e *Engine) Policy() config.PolicyConfig { return e.policy }

// Optimize solves one instance under the configured time budget.
func (e *Engine) Optimize(inst *model.ProblemInstance) Result {
	return e.optimize(inst, "")
}

// OptimizeScenario is Optimize with a scenario label attached to the
// emitted metrics.
func (e *Engine) OptimizeScenario(inst *model.ProblemInstance, scenario string) Result {
	return e.optimize(inst, scenario)
}

func (e *Engine) optimize(inst *model.ProblemInstance, scenario string) Result {
	runID := uuid.NewString()
	m := Encode(inst, e.policy)
	e.log.Debugw("model encoded", map[string]any{
		"run_id":      runID,
		"variables":   m.NumDecision,
		"constraints": len(m.Constraints),
	})

	solver := Solver{UseRelaxation: !e.solver.DisableRelaxation}
	sol := solver.Solve(m, e.solver.TimeLimit())

	schedule := Extract(m, sol)
	kpis := ComputeKPIs(inst, schedule, e.policy)

	switch sol.Status {
	case model.StatusOptimal, model.StatusFeasible:
		e.log.Infof("solve %s: %s cost=%.2f hours=%d wall=%s",
			runID, sol.Status, kpis.TotalCost, kpis.TotalHours, sol.WallTime.Round(time.Millisecond))
	default:
		e.log.Warnf("solve %s: %s after %s", runID, sol.Status, sol.WallTime.Round(time.Millisecond))
	}

	if err := e.sink.RecordSolve(metrics.SolveEvent{
		RunID:      runID,
		Scenario:   scenario,
		Status:     sol.Status,
		WallTime:   sol.WallTime,
		Time:       time.Now(),
		Dates:      len(inst.Dates),
		Employees:  len(inst.Employees),
		Variables:  m.NumDecision,
		TotalCost:  kpis.TotalCost,
		TotalHours: kpis.TotalHours,
		Coverage:   kpis.CoveragePercentage,
	}); err != nil {
		e.log.Errorf("metrics sink: %v", err)
	}

	return Result{
		RunID:    runID,
		Status:   sol.Status,
		Schedule: schedule,
		KPIs:     kpis,
		WallTime: sol.WallTime,
	}
}
