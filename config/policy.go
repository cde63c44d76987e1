package config

import "fmt"

// PolicyConfig holds the labor-policy parameters of the constraint model.
// These are business parameters, not algorithmic constants.
type PolicyConfig struct {
	// CustomersPerLaborHour converts forecasted demand into required
	// labor hours: one assigned hour services this many customers.
	CustomersPerLaborHour int `json:"customers_per_labor_hour"`
	// MinCoverageHours is the floor of required hours on every date,
	// applied even when forecasted demand is zero.
	MinCoverageHours int `json:"min_coverage_hours"`
	// SupervisorMinHours is the minimum shift length that counts as
	// supervisor presence on a date.
	SupervisorMinHours int `json:"supervisor_min_hours"`
	// OvertimeThresholdHours is the per-shift length above which hours
	// count as overtime in the KPI report.
	OvertimeThresholdHours int `json:"overtime_threshold_hours"`
}

// SetDefaults applies the standard retail policy.
func (c *PolicyConfig) SetDefaults() {
	if c.CustomersPerLaborHour == 0 {
		c.CustomersPerLaborHour = 10
	}
	if c.MinCoverageHours == 0 {
		c.MinCoverageHours = 1
	}
	if c.SupervisorMinHours == 0 {
		c.SupervisorMinHours = 4
	}
	if c.OvertimeThresholdHours == 0 {
		c.OvertimeThresholdHours = 8
	}
}

// Validate checks mandatory fields.
func (c PolicyConfig) Validate() error {
	if c.CustomersPerLaborHour <= 0 {
		return fmt.Errorf("customers_per_labor_hour must be positive")
	}
	if c.MinCoverageHours < 0 {
		return fmt.Errorf("min_coverage_hours must be non-negative")
	}
	if c.SupervisorMinHours <= 0 {
		return fmt.Errorf("supervisor_min_hours must be positive")
	}
	if c.OvertimeThresholdHours <= 0 {
		return fmt.Errorf("overtime_threshold_hours must be positive")
	}
	return nil
}

// RequiredHours converts one date's forecasted demand into the minimum
// labor hours the coverage constraint enforces.
func (c PolicyConfig) RequiredHours(demand int) int {
	req := demand / c.CustomersPerLaborHour
	if req < c.MinCoverageHours {
		req = c.MinCoverageHours
	}
	return req
}
