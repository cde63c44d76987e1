package scenario

import (
	"fmt"

	"github.com/shiftwise/shiftwise/core/model"
)

// Kind names a built-in scenario transformation.
type Kind string

const (
	// KindDemandScale multiplies every forecasted demand by a factor.
	KindDemandScale Kind = "demand_scale"
	// KindAbsence zeroes the availability of selected employees across
	// all dates; they stay in the instance but contribute no variables.
	KindAbsence Kind = "absence"
	// KindRemoval drops selected employees from the instance entirely,
	// including their weekly-cap bookkeeping.
	KindRemoval Kind = "removal"
	// KindHoliday is demand scaling with the wider multiplier range of
	// holiday seasons.
	KindHoliday Kind = "holiday"
)

// Factor caps per scaling kind. Demand spikes stay moderate; holiday
// multipliers are allowed a wider range.
const (
	maxDemandFactor  = 3.0
	maxHolidayFactor = 6.0
)

// Spec describes one scenario to evaluate against a baseline.
type Spec struct {
	Kind        Kind     `json:"kind"`
	Name        string   `json:"name"`
	Factor      float64  `json:"factor"`
	EmployeeIDs []string `json:"employee_ids"`
}

// Label returns the display name of the scenario.
func (s Spec) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return string(s.Kind)
}

// Validate checks the spec against the instance it will transform.
func (s Spec) Validate(inst *model.ProblemInstance) error {
	switch s.Kind {
	case KindDemandScale, KindHoliday:
		max := maxDemandFactor
		if s.Kind == KindHoliday {
			max = maxHolidayFactor
		}
		if s.Factor <= 0 || s.Factor > max {
			return fmt.Errorf("%s: factor must be in (0, %g], got %g", s.Kind, max, s.Factor)
		}
	case KindAbsence, KindRemoval:
		if len(s.EmployeeIDs) == 0 {
			return fmt.Errorf("%s: at least one employee id is required", s.Kind)
		}
		for _, id := range s.EmployeeIDs {
			if _, ok := inst.Employee(id); !ok {
				return fmt.Errorf("%s: unknown employee %s", s.Kind, id)
			}
		}
	default:
		return fmt.Errorf("unknown scenario kind %q", s.Kind)
	}
	return nil
}

// Apply produces the transformed instance. The baseline is never
// mutated; scenarios are pure functions over an instance value.
func Apply(inst *model.ProblemInstance, spec Spec) (*model.ProblemInstance, error) {
	if err := spec.Validate(inst); err != nil {
		return nil, err
	}
	out := inst.Clone()
	switch spec.Kind {
	case KindDemandScale, KindHoliday:
		for d, v := range out.Demand {
			out.Demand[d] = int(float64(v) * spec.Factor)
		}
	case KindAbsence:
		absent := idSet(spec.EmployeeIDs)
		for key := range out.Availability {
			if absent[key.EmployeeID] {
				out.Availability[key] = 0
			}
		}
	case KindRemoval:
		removed := idSet(spec.EmployeeIDs)
		kept := out.Employees[:0]
		for _, e := range out.Employees {
			if !removed[e.ID] {
				kept = append(kept, e)
			}
		}
		out.Employees = kept
		for key := range out.Availability {
			if removed[key.EmployeeID] {
				delete(out.Availability, key)
				delete(out.Wages, key)
				delete(out.Roles, key)
			}
		}
	}
	return out, nil
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
