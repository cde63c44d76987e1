package optimizer

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/shiftwise/shiftwise/core/model"
)

const costEps = 1e-9

// Solution is the outcome of one solver run. Values holds one entry per
// model variable when the status carries an assignment; any returned
// assignment satisfies every constraint of the model regardless of
// status, best effort applies only to optimality.
type Solution struct {
	Status   model.SolveStatus
	Values   []int
	Cost     float64
	WallTime time.Duration
}

// Solver is a bounded-integer constrained-optimization backend: a
// depth-first branch-and-bound search with bounds-consistency
// propagation over linear inequalities. It is complete when given
// enough time and anytime otherwise, keeping the best incumbent found.
// Each run owns its own state, so independent Solver values may run
// concurrently.
type Solver struct {
	// UseRelaxation enables an LP relaxation at the root of the search,
	// used to screen infeasibility and prove optimality early.
	UseRelaxation bool
}

type searchState struct {
	m        *ConstraintModel
	lb, ub   []int
	deadline time.Time
	timedOut bool

	incumbent     []int
	incumbentCost float64
	rootBound     float64
	hasRootBound  bool

	// varsByDate speeds up the value-choice heuristic.
	coverageOf []int // constraint index of the coverage row per decision var, -1 if none
}

// Solve runs the search under the given wall-clock budget.
func (s Solver) Solve(m *ConstraintModel, timeLimit time.Duration) Solution {
	start := time.Now()
	st := &searchState{
		m:             m,
		lb:            make([]int, len(m.Vars)),
		ub:            make([]int, len(m.Vars)),
		deadline:      start.Add(timeLimit),
		incumbentCost: math.Inf(1),
		coverageOf:    make([]int, len(m.Vars)),
	}
	for i, v := range m.Vars {
		st.lb[i] = v.Lower
		st.ub[i] = v.Upper
		st.coverageOf[i] = -1
	}
	for ci, c := range m.Constraints {
		if c.Kind != KindCoverage {
			continue
		}
		for _, t := range c.Terms {
			st.coverageOf[t.Var] = ci
		}
	}

	if s.UseRelaxation && m.CountByKind(KindCoverage) > 0 {
		bound, err := relaxationBound(m)
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return Solution{Status: model.StatusInfeasible, WallTime: time.Since(start)}
		case err == nil:
			st.rootBound = bound
			st.hasRootBound = true
		}
		// Any other solver error just means no usable bound.
	}

	if st.propagate() {
		st.search()
	}

	wall := time.Since(start)
	if st.incumbent == nil {
		if st.timedOut {
			return Solution{Status: model.StatusUnknown, WallTime: wall}
		}
		return Solution{Status: model.StatusInfeasible, WallTime: wall}
	}
	status := model.StatusOptimal
	if st.timedOut {
		status = model.StatusFeasible
	}
	return Solution{Status: status, Values: st.incumbent, Cost: st.incumbentCost, WallTime: wall}
}

// propagate enforces bounds consistency on every constraint until a
// fixed point. It returns false when some domain empties.
func (st *searchState) propagate() bool {
	for changed := true; changed; {
		changed = false
		for _, c := range st.m.Constraints {
			// Minimal activity of the row given current bounds.
			minAct := 0
			for _, t := range c.Terms {
				if t.Coeff > 0 {
					minAct += t.Coeff * st.lb[t.Var]
				} else {
					minAct += t.Coeff * st.ub[t.Var]
				}
			}
			if minAct > c.RHS {
				return false
			}
			for _, t := range c.Terms {
				var rest int
				if t.Coeff > 0 {
					rest = minAct - t.Coeff*st.lb[t.Var]
					// t.Coeff*x <= RHS-rest
					limit := divFloor(c.RHS-rest, t.Coeff)
					if limit < st.ub[t.Var] {
						st.ub[t.Var] = limit
						if st.ub[t.Var] < st.lb[t.Var] {
							return false
						}
						changed = true
					}
				} else {
					rest = minAct - t.Coeff*st.ub[t.Var]
					// t.Coeff*x <= RHS-rest with negative coeff
					limit := divCeil(c.RHS-rest, t.Coeff)
					if limit > st.lb[t.Var] {
						st.lb[t.Var] = limit
						if st.ub[t.Var] < st.lb[t.Var] {
							return false
						}
						changed = true
					}
				}
			}
		}
	}
	return true
}

// costBound returns an admissible lower bound on the objective reachable
// from the current domains: the cost of all forced hours plus, per date,
// the cheapest way to close the remaining coverage gap.
func (st *searchState) costBound() float64 {
	bound := 0.0
	for i := 0; i < len(st.m.Vars); i++ {
		bound += st.m.Vars[i].Cost * float64(st.lb[i])
	}
	for _, c := range st.m.Constraints {
		if c.Kind != KindCoverage {
			continue
		}
		// Coverage rows are -sum(x) <= -required.
		needed := -c.RHS
		cheapest := math.Inf(1)
		slack := 0
		for _, t := range c.Terms {
			needed -= st.lb[t.Var]
			if st.ub[t.Var] > st.lb[t.Var] {
				if w := st.m.Vars[t.Var].Cost; w < cheapest {
					cheapest = w
				}
				slack += st.ub[t.Var] - st.lb[t.Var]
			}
		}
		if needed > 0 && slack > 0 && !math.IsInf(cheapest, 1) {
			bound += float64(needed) * cheapest
		}
	}
	return bound
}

func (st *searchState) search() {
	if time.Now().After(st.deadline) {
		st.timedOut = true
		return
	}
	if st.costBound() >= st.incumbentCost-costEps {
		return
	}

	branch := st.pickVar()
	if branch == -1 {
		cost := 0.0
		for i := range st.m.Vars {
			cost += st.m.Vars[i].Cost * float64(st.lb[i])
		}
		if cost < st.incumbentCost-costEps {
			st.incumbent = append([]int(nil), st.lb...)
			st.incumbentCost = cost
		}
		return
	}

	savedLB := append([]int(nil), st.lb...)
	savedUB := append([]int(nil), st.ub...)
	for _, v := range st.valueOrder(branch) {
		st.lb[branch], st.ub[branch] = v, v
		if st.propagate() {
			st.search()
		}
		copy(st.lb, savedLB)
		copy(st.ub, savedUB)
		if st.timedOut {
			return
		}
		if st.hasRootBound && st.incumbentCost <= st.rootBound+1e-6 {
			// The incumbent matches the relaxation bound; nothing
			// cheaper exists.
			return
		}
	}
}

// pickVar selects the first unfixed variable in canonical order, or -1
// when every variable is fixed.
func (st *searchState) pickVar() int {
	for i := range st.m.Vars {
		if st.lb[i] < st.ub[i] {
			return i
		}
	}
	return -1
}

// valueOrder enumerates the candidate values for a variable, starting
// from the value a cost-greedy assignment would pick: just enough hours
// to close the variable's coverage gap.
func (st *searchState) valueOrder(i int) []int {
	lo, hi := st.lb[i], st.ub[i]
	preferred := lo
	if ci := st.coverageOf[i]; ci != -1 {
		needed := -st.m.Constraints[ci].RHS
		for _, t := range st.m.Constraints[ci].Terms {
			if t.Var != i {
				needed -= st.lb[t.Var]
			}
		}
		if needed > preferred {
			preferred = needed
		}
		if preferred > hi {
			preferred = hi
		}
	}
	values := make([]int, 0, hi-lo+1)
	values = append(values, preferred)
	for v := lo; v <= hi; v++ {
		if v != preferred {
			values = append(values, v)
		}
	}
	return values
}

func divFloor(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func divCeil(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}
