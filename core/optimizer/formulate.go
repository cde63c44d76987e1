package optimizer

import (
	"fmt"
	"sort"

	"github.com/shiftwise/shiftwise/core/model"
)

// Formulate normalizes raw employee, demand and availability records into
// a ProblemInstance. Dates are deduplicated and sorted ascending; this
// ordering is the canonical iteration order for the whole pipeline.
// Referential or range violations yield a MalformedInputError before any
// solve attempt.
func Formulate(employees []model.Employee, demand []model.DemandRecord, availability []model.AvailabilityRecord) (*model.ProblemInstance, error) {
	inst := &model.ProblemInstance{
		Demand:       make(map[model.Date]int, len(demand)),
		Availability: make(map[model.SlotKey]int, len(availability)),
		Wages:        make(map[model.SlotKey]float64, len(availability)),
		Roles:        make(map[model.SlotKey]model.Role, len(availability)),
	}

	seen := make(map[string]bool, len(employees))
	for _, e := range employees {
		if seen[e.ID] {
			continue
		}
		if err := e.Validate(); err != nil {
			return nil, &model.MalformedInputError{Record: "employee", Reason: err.Error()}
		}
		seen[e.ID] = true
		inst.Employees = append(inst.Employees, e)
	}

	for _, rec := range demand {
		if rec.ForecastedDemand < 0 {
			return nil, &model.MalformedInputError{
				Record: "demand",
				Reason: fmt.Sprintf("negative forecasted demand %d on %s", rec.ForecastedDemand, rec.Date),
			}
		}
		if _, ok := inst.Demand[rec.Date]; !ok {
			inst.Dates = append(inst.Dates, rec.Date)
		}
		inst.Demand[rec.Date] = rec.ForecastedDemand
	}
	sort.Slice(inst.Dates, func(i, j int) bool { return inst.Dates[i] < inst.Dates[j] })

	for _, rec := range availability {
		if rec.HoursAvailable < 0 {
			return nil, &model.MalformedInputError{
				Record: "availability",
				Reason: fmt.Sprintf("negative hours for %s on %s", rec.EmployeeID, rec.Date),
			}
		}
		if !seen[rec.EmployeeID] {
			return nil, &model.MalformedInputError{
				Record: "availability",
				Reason: fmt.Sprintf("unknown employee %s", rec.EmployeeID),
			}
		}
		if _, ok := inst.Demand[rec.Date]; !ok {
			return nil, &model.MalformedInputError{
				Record: "availability",
				Reason: fmt.Sprintf("date %s missing from demand horizon", rec.Date),
			}
		}
		key := model.SlotKey{Date: rec.Date, EmployeeID: rec.EmployeeID}
		inst.Availability[key] = rec.HoursAvailable
		inst.Wages[key] = rec.HourlyWage
		inst.Roles[key] = rec.Role
	}

	return inst, nil
}
