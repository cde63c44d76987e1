package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/shiftwise/shiftwise/core/metrics"
)

// PromSink records optimization runs in Prometheus metrics.
type PromSink struct {
	solves   *prometheus.CounterVec
	wallTime *prometheus.HistogramVec
	cost     prometheus.Gauge
	coverage prometheus.Gauge
}

// NewPromSink registers solve metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_solves_total",
		Help: "Total number of optimization runs",
	}, []string{"status", "scenario"})
	wallTime := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "schedule_solve_seconds",
		Help:    "Wall-clock time spent in the solver",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})
	cost := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_last_total_cost",
		Help: "Labor cost of the last solved schedule",
	})
	coverage := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_last_coverage_percent",
		Help: "Demand coverage of the last solved schedule",
	})

	if err := reg.Register(solves); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solves = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(wallTime); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			wallTime = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(cost); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			cost = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(coverage); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			coverage = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	return &PromSink{solves: solves, wallTime: wallTime, cost: cost, coverage: coverage}, nil
}

// RecordSolve implements the MetricsSink interface.
func (s *PromSink) RecordSolve(ev coremetrics.SolveEvent) error {
	scenario := ev.Scenario
	if scenario == "" {
		scenario = "default"
	}
	s.solves.WithLabelValues(ev.Status.String(), scenario).Inc()
	s.wallTime.WithLabelValues(ev.Status.String()).Observe(ev.WallTime.Seconds())
	if ev.Status.Solved() {
		s.cost.Set(ev.TotalCost)
		s.coverage.Set(ev.Coverage)
	}
	return nil
}
