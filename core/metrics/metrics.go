package metrics

import (
	"time"

	"github.com/shiftwise/shiftwise/core/model"
)

// SolveEvent captures one optimization run for observability purposes.
type SolveEvent struct {
	RunID      string
	Scenario   string
	Status     model.SolveStatus
	WallTime   time.Duration
	Time       time.Time
	Dates      int
	Employees  int
	Variables  int
	TotalCost  float64
	TotalHours int
	Coverage   float64
}

// MetricsSink records solve events.
type MetricsSink interface {
	RecordSolve(ev SolveEvent) error
}

// NopSink discards all events.
type NopSink struct{}

// RecordSolve implements MetricsSink.
func (NopSink) RecordSolve(SolveEvent) error { return nil }
