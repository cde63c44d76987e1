package scenario

import (
	"testing"

	"github.com/shiftwise/shiftwise/core/model"
	"github.com/shiftwise/shiftwise/core/optimizer"
)

func testInstance(t *testing.T) *model.ProblemInstance {
	t.Helper()
	d := model.NewDate(2025, 3, 10)
	inst, err := optimizer.Formulate(
		[]model.Employee{
			{ID: "c1", Role: model.RoleCashier, HourlyWage: 15, MaxWeeklyHours: 40},
			{ID: "s1", Role: model.RoleSupervisor, HourlyWage: 20, MaxWeeklyHours: 45},
		},
		[]model.DemandRecord{
			{Date: d, ForecastedDemand: 100},
			{Date: d.AddDays(1), ForecastedDemand: 60},
		},
		[]model.AvailabilityRecord{
			{Date: d, EmployeeID: "c1", HoursAvailable: 8, HourlyWage: 15, Role: model.RoleCashier},
			{Date: d, EmployeeID: "s1", HoursAvailable: 8, HourlyWage: 20, Role: model.RoleSupervisor},
			{Date: d.AddDays(1), EmployeeID: "c1", HoursAvailable: 8, HourlyWage: 15, Role: model.RoleCashier},
		},
	)
	if err != nil {
		t.Fatalf("formulate: %v", err)
	}
	return inst
}

func TestApplyDemandScale(t *testing.T) {
	inst := testInstance(t)
	d := inst.Dates[0]

	out, err := Apply(inst, Spec{Kind: KindDemandScale, Factor: 1.5})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.Demand[d] != 150 {
		t.Fatalf("demand not scaled: got %d want 150", out.Demand[d])
	}
	if inst.Demand[d] != 100 {
		t.Fatalf("baseline mutated: %d", inst.Demand[d])
	}
}

func TestApplyDemandScaleTruncates(t *testing.T) {
	inst := testInstance(t)
	out, err := Apply(inst, Spec{Kind: KindDemandScale, Factor: 0.33})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := out.Demand[inst.Dates[0]]; got != 33 {
		t.Fatalf("expected truncation to 33, got %d", got)
	}
	if got := out.Demand[inst.Dates[1]]; got != 19 { // 60*0.33 = 19.8
		t.Fatalf("expected truncation to 19, got %d", got)
	}
}

func TestApplyAbsenceZeroesAvailability(t *testing.T) {
	inst := testInstance(t)
	out, err := Apply(inst, Spec{Kind: KindAbsence, EmployeeIDs: []string{"c1"}})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(out.Employees) != 2 {
		t.Fatalf("absence must keep the employee in the instance")
	}
	for key, hours := range out.Availability {
		if key.EmployeeID == "c1" && hours != 0 {
			t.Fatalf("availability of absent employee not zeroed on %s", key.Date)
		}
	}
	// Baseline untouched.
	if inst.Availability[model.SlotKey{Date: inst.Dates[0], EmployeeID: "c1"}] != 8 {
		t.Fatalf("baseline availability mutated")
	}
}

func TestApplyRemovalDropsEmployee(t *testing.T) {
	inst := testInstance(t)
	out, err := Apply(inst, Spec{Kind: KindRemoval, EmployeeIDs: []string{"c1"}})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, ok := out.Employee("c1"); ok {
		t.Fatalf("removed employee still present")
	}
	for key := range out.Availability {
		if key.EmployeeID == "c1" {
			t.Fatalf("availability of removed employee still present")
		}
	}
	for key := range out.Wages {
		if key.EmployeeID == "c1" {
			t.Fatalf("wage of removed employee still present")
		}
	}
}

func TestSpecValidate(t *testing.T) {
	inst := testInstance(t)
	cases := []struct {
		name string
		spec Spec
		ok   bool
	}{
		{"demand scale in range", Spec{Kind: KindDemandScale, Factor: 2}, true},
		{"demand scale zero factor", Spec{Kind: KindDemandScale, Factor: 0}, false},
		{"demand scale above cap", Spec{Kind: KindDemandScale, Factor: 3.5}, false},
		{"holiday wider cap", Spec{Kind: KindHoliday, Factor: 5}, true},
		{"holiday above cap", Spec{Kind: KindHoliday, Factor: 6.5}, false},
		{"absence ok", Spec{Kind: KindAbsence, EmployeeIDs: []string{"c1"}}, true},
		{"absence no ids", Spec{Kind: KindAbsence}, false},
		{"removal unknown id", Spec{Kind: KindRemoval, EmployeeIDs: []string{"ghost"}}, false},
		{"unknown kind", Spec{Kind: "strike"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate(inst)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestSpecLabel(t *testing.T) {
	if got := (Spec{Kind: KindAbsence}).Label(); got != "absence" {
		t.Fatalf("default label: got %q", got)
	}
	if got := (Spec{Kind: KindAbsence, Name: "flu season"}).Label(); got != "flu season" {
		t.Fatalf("named label: got %q", got)
	}
}

func TestCompare(t *testing.T) {
	baseline := model.KPISet{TotalCost: 200, CoveragePercentage: 90}
	scenario := model.KPISet{TotalCost: 250, CoveragePercentage: 80}
	cmp := Compare(baseline, scenario)
	if cmp.CostDelta != 50 || cmp.CostDeltaPct != 25 || cmp.CoverageDelta != -10 {
		t.Fatalf("unexpected comparison: %+v", cmp)
	}

	// Zero-cost baseline (infeasible run) must not divide by zero.
	cmp = Compare(model.KPISet{}, scenario)
	if cmp.CostDeltaPct != 0 {
		t.Fatalf("zero baseline must report 0%%, got %v", cmp.CostDeltaPct)
	}
}
