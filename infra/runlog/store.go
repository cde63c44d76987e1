package runlog

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftwise/shiftwise/config"
	"github.com/shiftwise/shiftwise/core/metrics"
)

// RunRecord captures one optimization run for auditing. It stores run
// telemetry only; schedules themselves are not persisted.
type RunRecord struct {
	Timestamp       time.Time `json:"timestamp"`
	RunID           string    `json:"run_id"`
	Scenario        string    `json:"scenario,omitempty"`
	Status          string    `json:"status"`
	TotalCost       float64   `json:"total_cost"`
	TotalHours      int       `json:"total_hours"`
	CoveragePct     float64   `json:"coverage_pct"`
	WallTimeSeconds float64   `json:"wall_time_seconds"`
	Dates           int       `json:"dates"`
	Employees       int       `json:"employees"`
	Variables       int       `json:"variables"`
}

// RunQuery defines filters for retrieving records.
type RunQuery struct {
	Start    time.Time
	End      time.Time
	Status   string
	Scenario string
}

func (q RunQuery) matches(r RunRecord) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.Status != "" && r.Status != q.Status {
		return false
	}
	if q.Scenario != "" && r.Scenario != q.Scenario {
		return false
	}
	return true
}

// RunStore persists RunRecords and supports querying.
type RunStore interface {
	Append(ctx context.Context, rec RunRecord) error
	Query(ctx context.Context, q RunQuery) ([]RunRecord, error)
	Close() error
}

// NewStore builds the store selected by the configuration.
func NewStore(cfg config.RunLogConfig) (RunStore, error) {
	switch cfg.Backend {
	case "sqlite":
		return NewSQLiteStore(cfg.Path)
	case "jsonl":
		if cfg.MaxSizeMB > 0 {
			return NewRotatingJSONLStore(cfg.Path, cfg.MaxSizeMB, cfg.MaxBackups)
		}
		return NewJSONLStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown runlog backend %s", cfg.Backend)
	}
}

// Recorder adapts a RunStore to the metrics sink interface so the
// engine can feed it like any other sink.
type Recorder struct {
	Store RunStore
}

// RecordSolve implements metrics.MetricsSink.
func (r Recorder) RecordSolve(ev metrics.SolveEvent) error {
	return r.Store.Append(context.Background(), RunRecord{
		Timestamp:       ev.Time,
		RunID:           ev.RunID,
		Scenario:        ev.Scenario,
		Status:          ev.Status.String(),
		TotalCost:       ev.TotalCost,
		TotalHours:      ev.TotalHours,
		CoveragePct:     ev.Coverage,
		WallTimeSeconds: ev.WallTime.Seconds(),
		Dates:           ev.Dates,
		Employees:       ev.Employees,
		Variables:       ev.Variables,
	})
}
