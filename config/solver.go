package config

import (
	"fmt"
	"time"
)

// SolverConfig defines search parameters for the optimization backend.
type SolverConfig struct {
	// TimeLimitSeconds bounds the wall-clock time of one solve. The
	// budget is the only cancellation mechanism.
	TimeLimitSeconds int `json:"time_limit_seconds"`
	// DisableRelaxation turns off the LP relaxation computed at the
	// root of the search to prove optimality early and to screen
	// infeasibility.
	DisableRelaxation bool `json:"disable_relaxation"`
}

// SetDefaults applies sane defaults.
func (c *SolverConfig) SetDefaults() {
	if c.TimeLimitSeconds == 0 {
		c.TimeLimitSeconds = 30
	}
}

// Validate checks mandatory fields.
func (c SolverConfig) Validate() error {
	if c.TimeLimitSeconds <= 0 {
		return fmt.Errorf("time_limit_seconds must be positive")
	}
	return nil
}

// TimeLimit returns the budget as a duration.
func (c SolverConfig) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitSeconds) * time.Second
}
