package model

import "fmt"

// Role identifies the job function of an employee.
type Role string

const (
	RoleCashier    Role = "cashier"
	RoleStock      Role = "stock"
	RoleSupervisor Role = "supervisor"
)

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCashier, RoleStock, RoleSupervisor:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Employee describes one worker known to the scheduler. Records are
// immutable for the duration of an optimization run.
type Employee struct {
	ID             string
	Role           Role
	HourlyWage     float64
	MaxWeeklyHours int
	IsPartTime     bool
}

// Validate checks that the employee record is sound.
func (e Employee) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("employee id is required")
	}
	if _, err := ParseRole(string(e.Role)); err != nil {
		return fmt.Errorf("employee %s: %w", e.ID, err)
	}
	if e.HourlyWage < 0 {
		return fmt.Errorf("employee %s: hourly wage must be non-negative", e.ID)
	}
	if e.MaxWeeklyHours <= 0 {
		return fmt.Errorf("employee %s: max weekly hours must be positive", e.ID)
	}
	return nil
}

// DemandRecord is the forecasted customer demand for one date.
type DemandRecord struct {
	Date             Date
	ForecastedDemand int
}

// AvailabilityRecord bounds how many hours an employee can work on a date.
// Wage and role are snapshots taken when the record was produced.
type AvailabilityRecord struct {
	Date           Date
	EmployeeID     string
	HoursAvailable int
	HourlyWage     float64
	Role           Role
}
