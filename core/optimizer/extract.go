package optimizer

import (
	"sort"

	"github.com/shiftwise/shiftwise/config"
	"github.com/shiftwise/shiftwise/core/model"
)

// Extract turns a raw solver assignment into an AssignmentSchedule,
// dropping every zero-hour slot. Rows come out sorted by date then
// employee id. Unsolved statuses yield an empty schedule, which callers
// must treat as "no solution", never as a zero-cost one.
func Extract(m *ConstraintModel, sol Solution) model.AssignmentSchedule {
	var schedule model.AssignmentSchedule
	if !sol.Status.Solved() {
		return schedule
	}
	inst := m.Instance()
	for i := 0; i < m.NumDecision; i++ {
		hours := sol.Values[i]
		if hours == 0 {
			continue
		}
		key := m.Vars[i].Key
		wage := inst.Wages[key]
		schedule.Shifts = append(schedule.Shifts, model.ShiftAssignment{
			Date:        key.Date,
			EmployeeID:  key.EmployeeID,
			HoursWorked: hours,
			Wage:        wage,
			Cost:        float64(hours) * wage,
			Role:        inst.Roles[key],
		})
	}
	sort.Slice(schedule.Shifts, func(i, j int) bool {
		a, b := schedule.Shifts[i], schedule.Shifts[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.EmployeeID < b.EmployeeID
	})
	return schedule
}

// ComputeKPIs derives the performance indicators of a schedule. KPIs are
// recomputed fresh on every call; an empty schedule yields the zero set.
func ComputeKPIs(inst *model.ProblemInstance, schedule model.AssignmentSchedule, policy config.PolicyConfig) model.KPISet {
	var kpis model.KPISet
	if schedule.Empty() {
		return kpis
	}

	staff := make(map[string]bool)
	for _, s := range schedule.Shifts {
		kpis.TotalCost += s.Cost
		kpis.TotalHours += s.HoursWorked
		if s.HoursWorked > policy.OvertimeThresholdHours {
			kpis.OvertimeHours += s.HoursWorked - policy.OvertimeThresholdHours
		}
		staff[s.EmployeeID] = true
	}
	kpis.TotalEmployees = len(staff)

	// Coverage compares serviced customers against total demand, capped
	// at 100. Zero demand would divide by zero and reports 0 instead.
	if totalDemand := inst.TotalDemand(); totalDemand > 0 {
		pct := float64(kpis.TotalHours*policy.CustomersPerLaborHour) / float64(totalDemand) * 100
		if pct > 100 {
			pct = 100
		}
		kpis.CoveragePercentage = pct
	}

	if len(inst.Dates) > 0 {
		kpis.AvgStaffPerDay = float64(len(schedule.Shifts)) / float64(len(inst.Dates))
	}
	return kpis
}
