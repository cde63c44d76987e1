package optimizer

import (
	"fmt"
	"sort"

	"github.com/shiftwise/shiftwise/config"
	"github.com/shiftwise/shiftwise/core/model"
)

// ConstraintKind classifies the constraints of an encoded model.
type ConstraintKind int

const (
	// KindCoverage enforces the demand-derived minimum hours per date.
	KindCoverage ConstraintKind = iota
	// KindPresence requires at least one qualifying supervisor shift on
	// a date where a supervisor is available.
	KindPresence
	// KindWeeklyCap bounds one employee's hours within one ISO week.
	KindWeeklyCap
	// KindIndicatorLink ties a supervisor indicator to its hour
	// variable.
	KindIndicatorLink
)

// Variable is one bounded integer of the model. Decision variables carry
// the slot they assign hours to; supervisor indicators are 0/1 variables
// with no slot.
type Variable struct {
	Lower, Upper int
	Cost         float64
	Key          model.SlotKey
	Indicator    bool
}

// Term is one coefficient of a linear constraint.
type Term struct {
	Var   int
	Coeff int
}

// Constraint is a linear inequality in canonical form:
// sum(Coeff*x) <= RHS.
type Constraint struct {
	Kind  ConstraintKind
	Name  string
	Terms []Term
	RHS   int
}

// ConstraintModel is the immutable encoding of one ProblemInstance:
// decision variables, constraint set, and the linear cost objective
// minimize sum(hours * wage). It is produced by Encode and consumed by
// the solver; nothing mutates it afterwards.
type ConstraintModel struct {
	Vars        []Variable
	Constraints []Constraint

	// NumDecision counts the leading decision variables; indicators
	// follow them in Vars.
	NumDecision int

	instance *model.ProblemInstance
	policy   config.PolicyConfig
	index    map[model.SlotKey]int
}

// VarFor returns the index of the decision variable for the given slot.
func (m *ConstraintModel) VarFor(key model.SlotKey) (int, bool) {
	i, ok := m.index[key]
	return i, ok
}

// Instance returns the problem instance the model was encoded from.
func (m *ConstraintModel) Instance() *model.ProblemInstance { return m.instance }

// Policy returns the labor policy the model was encoded under.
func (m *ConstraintModel) Policy() config.PolicyConfig { return m.policy }

// CountByKind returns the number of constraints of the given kind.
func (m *ConstraintModel) CountByKind(kind ConstraintKind) int {
	n := 0
	for _, c := range m.Constraints {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Encode builds the constraint model for an instance under the given
// policy. One decision variable exists per (date, employee) pair with
// strictly positive availability; zero-availability pairs contribute no
// variable at all. Coverage is encoded for every date of the horizon,
// so a date with demand and nobody available is infeasible rather than
// silently uncovered.
func Encode(inst *model.ProblemInstance, policy config.PolicyConfig) *ConstraintModel {
	m := &ConstraintModel{
		instance: inst,
		policy:   policy,
		index:    make(map[model.SlotKey]int),
	}

	// Decision variables in canonical order: date ascending, then wage
	// ascending, then employee id. The order only affects tie-breaks,
	// not correctness, but keeps runs reproducible.
	type slot struct {
		key  model.SlotKey
		wage float64
	}
	var slots []slot
	for _, d := range inst.Dates {
		for _, e := range inst.Employees {
			key := model.SlotKey{Date: d, EmployeeID: e.ID}
			if inst.Availability[key] > 0 {
				slots = append(slots, slot{key: key, wage: inst.Wages[key]})
			}
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if a.key.Date != b.key.Date {
			return a.key.Date < b.key.Date
		}
		if a.wage != b.wage {
			return a.wage < b.wage
		}
		return a.key.EmployeeID < b.key.EmployeeID
	})
	for _, s := range slots {
		m.index[s.key] = len(m.Vars)
		m.Vars = append(m.Vars, Variable{
			Upper: inst.Availability[s.key],
			Cost:  s.wage,
			Key:   s.key,
		})
	}
	m.NumDecision = len(m.Vars)

	// Coverage: sum of hours on each date >= requiredHours(date),
	// canonically -sum <= -required.
	for _, d := range inst.Dates {
		required := policy.RequiredHours(inst.Demand[d])
		var terms []Term
		for i := 0; i < m.NumDecision; i++ {
			if m.Vars[i].Key.Date == d {
				terms = append(terms, Term{Var: i, Coeff: -1})
			}
		}
		m.Constraints = append(m.Constraints, Constraint{
			Kind:  KindCoverage,
			Name:  fmt.Sprintf("coverage[%s]", d),
			Terms: terms,
			RHS:   -required,
		})
	}

	// Supervisor presence: per supervisor variable one 0/1 indicator b
	// with hours <= upper*b and hours >= minHours*b, and per date
	// sum(b) >= 1. Dates without a supervisor variable get no presence
	// constraint at all.
	for _, d := range inst.Dates {
		var indicators []Term
		for i := 0; i < m.NumDecision; i++ {
			v := m.Vars[i]
			if v.Key.Date != d || inst.Roles[v.Key] != model.RoleSupervisor {
				continue
			}
			b := len(m.Vars)
			m.Vars = append(m.Vars, Variable{Upper: 1, Indicator: true})
			m.Constraints = append(m.Constraints,
				Constraint{
					Kind:  KindIndicatorLink,
					Name:  fmt.Sprintf("link_up[%s,%s]", d, v.Key.EmployeeID),
					Terms: []Term{{Var: i, Coeff: 1}, {Var: b, Coeff: -v.Upper}},
					RHS:   0,
				},
				Constraint{
					Kind:  KindIndicatorLink,
					Name:  fmt.Sprintf("link_min[%s,%s]", d, v.Key.EmployeeID),
					Terms: []Term{{Var: i, Coeff: -1}, {Var: b, Coeff: policy.SupervisorMinHours}},
					RHS:   0,
				},
			)
			indicators = append(indicators, Term{Var: b, Coeff: -1})
		}
		if len(indicators) > 0 {
			m.Constraints = append(m.Constraints, Constraint{
				Kind:  KindPresence,
				Name:  fmt.Sprintf("presence[%s]", d),
				Terms: indicators,
				RHS:   -1,
			})
		}
	}

	// Weekly cap: per employee and per ISO week touched by at least one
	// of their variables, sum of hours <= MaxWeeklyHours.
	for _, e := range inst.Employees {
		weeks := make(map[model.Date][]Term)
		var order []model.Date
		for i := 0; i < m.NumDecision; i++ {
			v := m.Vars[i]
			if v.Key.EmployeeID != e.ID {
				continue
			}
			wk := v.Key.Date.WeekStart()
			if _, ok := weeks[wk]; !ok {
				order = append(order, wk)
			}
			weeks[wk] = append(weeks[wk], Term{Var: i, Coeff: 1})
		}
		sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
		for _, wk := range order {
			m.Constraints = append(m.Constraints, Constraint{
				Kind:  KindWeeklyCap,
				Name:  fmt.Sprintf("weekly[%s,%s]", wk, e.ID),
				Terms: weeks[wk],
				RHS:   e.MaxWeeklyHours,
			})
		}
	}

	return m
}
