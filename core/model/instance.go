package model

import "fmt"

// SlotKey addresses one (date, employee) pair in the instance lookups.
type SlotKey struct {
	Date       Date
	EmployeeID string
}

// MalformedInputError reports a referential or range violation in the raw
// records. It is surfaced to the caller before any solve attempt.
type MalformedInputError struct {
	Record string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input (%s): %s", e.Record, e.Reason)
}

// ProblemInstance is the normalized optimization input: the ordered
// scheduling horizon, the employees, and the per-slot lookup tables.
// Instances are independent values; scenario transformations copy rather
// than mutate them.
type ProblemInstance struct {
	Dates     []Date
	Employees []Employee

	Demand       map[Date]int
	Availability map[SlotKey]int
	Wages        map[SlotKey]float64
	Roles        map[SlotKey]Role
}

// Employee returns the employee record with the given id.
func (p *ProblemInstance) Employee(id string) (Employee, bool) {
	for _, e := range p.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// TotalDemand sums forecasted demand over the horizon.
func (p *ProblemInstance) TotalDemand() int {
	total := 0
	for _, d := range p.Dates {
		total += p.Demand[d]
	}
	return total
}

// Clone returns a deep copy sharing no state with the receiver.
func (p *ProblemInstance) Clone() *ProblemInstance {
	cp := &ProblemInstance{
		Dates:        make([]Date, len(p.Dates)),
		Employees:    make([]Employee, len(p.Employees)),
		Demand:       make(map[Date]int, len(p.Demand)),
		Availability: make(map[SlotKey]int, len(p.Availability)),
		Wages:        make(map[SlotKey]float64, len(p.Wages)),
		Roles:        make(map[SlotKey]Role, len(p.Roles)),
	}
	copy(cp.Dates, p.Dates)
	copy(cp.Employees, p.Employees)
	for k, v := range p.Demand {
		cp.Demand[k] = v
	}
	for k, v := range p.Availability {
		cp.Availability[k] = v
	}
	for k, v := range p.Wages {
		cp.Wages[k] = v
	}
	for k, v := range p.Roles {
		cp.Roles[k] = v
	}
	return cp
}
