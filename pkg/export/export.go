// Package export renders solved schedules for downstream consumers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/shiftwise/shiftwise/core/model"
)

// WriteJSON writes the schedule to w in JSON format.
func WriteJSON(w io.Writer, schedule model.AssignmentSchedule) error {
	enc := json.NewEncoder(w)
	return enc.Encode(schedule.Shifts)
}

// WriteCSV writes the schedule to w as rows of
// date, employee_id, hours_worked, wage, cost, role.
func WriteCSV(w io.Writer, schedule model.AssignmentSchedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "employee_id", "hours_worked", "wage", "cost", "role"}); err != nil {
		return err
	}
	for _, s := range schedule.Shifts {
		rec := []string{
			s.Date.String(),
			s.EmployeeID,
			strconv.Itoa(s.HoursWorked),
			strconv.FormatFloat(s.Wage, 'f', -1, 64),
			strconv.FormatFloat(s.Cost, 'f', 2, 64),
			string(s.Role),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
