// Package dataset reads the tabular record files consumed by the
// optimization pipeline. It is interface-boundary glue: the engine
// itself never touches files.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shiftwise/shiftwise/core/model"
)

type table struct {
	cols map[string]int
	rows [][]string
}

func readTable(r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	t := &table{cols: make(map[string]int), rows: records[1:]}
	for i, name := range records[0] {
		t.cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := t.cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return t, nil
}

func (t *table) field(row []string, name string) string {
	return strings.TrimSpace(row[t.cols[name]])
}

// ReadEmployees parses employee records from r.
func ReadEmployees(r io.Reader) ([]model.Employee, error) {
	t, err := readTable(r, "employeeid", "role", "hourlywage", "maxweeklyhours")
	if err != nil {
		return nil, err
	}
	out := make([]model.Employee, 0, len(t.rows))
	for i, row := range t.rows {
		role, err := model.ParseRole(t.field(row, "role"))
		if err != nil {
			return nil, fmt.Errorf("employees row %d: %w", i+1, err)
		}
		wage, err := strconv.ParseFloat(t.field(row, "hourlywage"), 64)
		if err != nil {
			return nil, fmt.Errorf("employees row %d: wage: %w", i+1, err)
		}
		maxHours, err := strconv.Atoi(t.field(row, "maxweeklyhours"))
		if err != nil {
			return nil, fmt.Errorf("employees row %d: max weekly hours: %w", i+1, err)
		}
		partTime := false
		if _, ok := t.cols["isparttime"]; ok {
			partTime, _ = strconv.ParseBool(t.field(row, "isparttime"))
		}
		out = append(out, model.Employee{
			ID:             t.field(row, "employeeid"),
			Role:           role,
			HourlyWage:     wage,
			MaxWeeklyHours: maxHours,
			IsPartTime:     partTime,
		})
	}
	return out, nil
}

// ReadDemand parses demand records from r.
func ReadDemand(r io.Reader) ([]model.DemandRecord, error) {
	t, err := readTable(r, "date", "forecasteddemand")
	if err != nil {
		return nil, err
	}
	out := make([]model.DemandRecord, 0, len(t.rows))
	for i, row := range t.rows {
		date, err := model.ParseDate(t.field(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("demand row %d: %w", i+1, err)
		}
		demand, err := strconv.Atoi(t.field(row, "forecasteddemand"))
		if err != nil {
			return nil, fmt.Errorf("demand row %d: %w", i+1, err)
		}
		out = append(out, model.DemandRecord{Date: date, ForecastedDemand: demand})
	}
	return out, nil
}

// ReadAvailability parses availability records from r.
func ReadAvailability(r io.Reader) ([]model.AvailabilityRecord, error) {
	t, err := readTable(r, "date", "employeeid", "hoursavailable", "hourlywage", "role")
	if err != nil {
		return nil, err
	}
	out := make([]model.AvailabilityRecord, 0, len(t.rows))
	for i, row := range t.rows {
		date, err := model.ParseDate(t.field(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("availability row %d: %w", i+1, err)
		}
		hours, err := strconv.Atoi(t.field(row, "hoursavailable"))
		if err != nil {
			return nil, fmt.Errorf("availability row %d: %w", i+1, err)
		}
		wage, err := strconv.ParseFloat(t.field(row, "hourlywage"), 64)
		if err != nil {
			return nil, fmt.Errorf("availability row %d: wage: %w", i+1, err)
		}
		role, err := model.ParseRole(t.field(row, "role"))
		if err != nil {
			return nil, fmt.Errorf("availability row %d: %w", i+1, err)
		}
		out = append(out, model.AvailabilityRecord{
			Date:           date,
			EmployeeID:     t.field(row, "employeeid"),
			HoursAvailable: hours,
			HourlyWage:     wage,
			Role:           role,
		})
	}
	return out, nil
}

// LoadFiles reads the three record files from disk.
func LoadFiles(employeesPath, demandPath, availabilityPath string) ([]model.Employee, []model.DemandRecord, []model.AvailabilityRecord, error) {
	var employees []model.Employee
	var demand []model.DemandRecord
	var availability []model.AvailabilityRecord

	if err := withFile(employeesPath, func(f *os.File) error {
		var err error
		employees, err = ReadEmployees(f)
		return err
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("employees: %w", err)
	}
	if err := withFile(demandPath, func(f *os.File) error {
		var err error
		demand, err = ReadDemand(f)
		return err
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("demand: %w", err)
	}
	if err := withFile(availabilityPath, func(f *os.File) error {
		var err error
		availability, err = ReadAvailability(f)
		return err
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("availability: %w", err)
	}
	return employees, demand, availability, nil
}

func withFile(path string, fn func(*os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return fn(f)
}
