package optimizer

import (
	"errors"
	"testing"

	"github.com/shiftwise/shiftwise/core/model"
)

func date(day int) model.Date {
	return model.NewDate(2025, 3, day)
}

func employee(id string, role model.Role, wage float64, maxWeekly int) model.Employee {
	return model.Employee{ID: id, Role: role, HourlyWage: wage, MaxWeeklyHours: maxWeekly}
}

func avail(day int, id string, hours int, wage float64, role model.Role) model.AvailabilityRecord {
	return model.AvailabilityRecord{Date: date(day), EmployeeID: id, HoursAvailable: hours, HourlyWage: wage, Role: role}
}

func TestFormulateSortsAndDeduplicates(t *testing.T) {
	employees := []model.Employee{
		employee("e1", model.RoleCashier, 15, 40),
		employee("e1", model.RoleStock, 99, 40), // duplicate id, first wins
		employee("e2", model.RoleSupervisor, 22, 45),
	}
	demand := []model.DemandRecord{
		{Date: date(12), ForecastedDemand: 80},
		{Date: date(10), ForecastedDemand: 100},
		{Date: date(12), ForecastedDemand: 90}, // duplicate date, last wins
	}
	availability := []model.AvailabilityRecord{
		avail(10, "e1", 8, 15, model.RoleCashier),
		avail(12, "e2", 0, 22, model.RoleSupervisor),
	}

	inst, err := Formulate(employees, demand, availability)
	if err != nil {
		t.Fatalf("formulate: %v", err)
	}
	if len(inst.Employees) != 2 {
		t.Fatalf("expected 2 employees got %d", len(inst.Employees))
	}
	if inst.Employees[0].Role != model.RoleCashier {
		t.Fatalf("duplicate employee should keep the first record")
	}
	if len(inst.Dates) != 2 || inst.Dates[0] != date(10) || inst.Dates[1] != date(12) {
		t.Fatalf("dates not sorted ascending: %v", inst.Dates)
	}
	if inst.Demand[date(12)] != 90 {
		t.Fatalf("duplicate demand should keep the last record, got %d", inst.Demand[date(12)])
	}
	// Zero availability stays in the lookup.
	if hours, ok := inst.Availability[model.SlotKey{Date: date(12), EmployeeID: "e2"}]; !ok || hours != 0 {
		t.Fatalf("zero-availability pair missing from lookup")
	}
}

func TestFormulateMalformedInput(t *testing.T) {
	okEmployees := []model.Employee{employee("e1", model.RoleCashier, 15, 40)}
	okDemand := []model.DemandRecord{{Date: date(10), ForecastedDemand: 50}}

	cases := []struct {
		name         string
		employees    []model.Employee
		demand       []model.DemandRecord
		availability []model.AvailabilityRecord
	}{
		{
			name:         "unknown employee",
			employees:    okEmployees,
			demand:       okDemand,
			availability: []model.AvailabilityRecord{avail(10, "ghost", 8, 15, model.RoleCashier)},
		},
		{
			name:         "date outside horizon",
			employees:    okEmployees,
			demand:       okDemand,
			availability: []model.AvailabilityRecord{avail(11, "e1", 8, 15, model.RoleCashier)},
		},
		{
			name:         "negative hours",
			employees:    okEmployees,
			demand:       okDemand,
			availability: []model.AvailabilityRecord{avail(10, "e1", -1, 15, model.RoleCashier)},
		},
		{
			name:      "negative demand",
			employees: okEmployees,
			demand:    []model.DemandRecord{{Date: date(10), ForecastedDemand: -5}},
		},
		{
			name:      "invalid employee record",
			employees: []model.Employee{employee("e1", model.RoleCashier, 15, 0)},
			demand:    okDemand,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Formulate(tc.employees, tc.demand, tc.availability)
			if err == nil {
				t.Fatalf("expected error")
			}
			var malformed *model.MalformedInputError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedInputError, got %T", err)
			}
		})
	}
}
