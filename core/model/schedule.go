package model

// SolveStatus is the terminal state of one solver run.
type SolveStatus int

const (
	// StatusUnknown means the time budget expired before any feasible
	// assignment was found.
	StatusUnknown SolveStatus = iota
	// StatusOptimal means the search completed and proved no cheaper
	// assignment exists.
	StatusOptimal
	// StatusFeasible means a valid assignment was found but optimality
	// was not proved within the time budget.
	StatusFeasible
	// StatusInfeasible means the constraint set admits no assignment.
	StatusInfeasible
)

func (s SolveStatus) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Solved reports whether the status carries a usable assignment.
func (s SolveStatus) Solved() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// ShiftAssignment is one row of a solved schedule.
type ShiftAssignment struct {
	Date        Date    `json:"date"`
	EmployeeID  string  `json:"employee_id"`
	HoursWorked int     `json:"hours_worked"`
	Wage        float64 `json:"wage"`
	Cost        float64 `json:"cost"`
	Role        Role    `json:"role"`
}

// AssignmentSchedule is the solved mapping of slots to worked hours,
// sorted by (date, employee). Zero-hour slots are never included.
type AssignmentSchedule struct {
	Shifts []ShiftAssignment
}

// Empty reports whether the schedule carries no assignments.
func (s AssignmentSchedule) Empty() bool { return len(s.Shifts) == 0 }

// KPISet holds the derived performance indicators of one schedule. It is
// recomputed fresh for every run and never mutated in place.
type KPISet struct {
	TotalCost          float64 `json:"total_cost"`
	TotalHours         int     `json:"total_hours"`
	OvertimeHours      int     `json:"overtime_hours"`
	CoveragePercentage float64 `json:"coverage_percentage"`
	AvgStaffPerDay     float64 `json:"avg_staff_per_day"`
	TotalEmployees     int     `json:"total_employees"`
}
