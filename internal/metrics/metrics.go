// Package metrics records dispatched commands as Prometheus metrics
package metrics

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "astrolab"

// Metrics tracks command statistics. Counters are kept both as Prometheus
// collectors on a private registry and as atomics for the session summary.
type Metrics struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec

	total    atomic.Int64
	rejected atomic.Int64
	failed   atomic.Int64

	StartTime time.Time
}

// New creates a Metrics instance with its own registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Dispatched commands by category, action and outcome.",
		}, []string{"category", "action", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Time spent executing a dispatched command.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"category", "action"}),
		StartTime: time.Now(),
	}

	m.registry.MustRegister(
		m.commands,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe records one dispatched command
func (m *Metrics) Observe(category, action, outcome string, elapsed time.Duration) {
	m.commands.WithLabelValues(category, action, outcome).Inc()
	m.duration.WithLabelValues(category, action).Observe(elapsed.Seconds())

	m.total.Add(1)
	switch outcome {
	case "rejected":
		m.rejected.Add(1)
	case "failed":
		m.failed.Add(1)
	}
}

// Registry returns the registry the collectors are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Snapshot represents a point-in-time summary of the session
type Snapshot struct {
	Commands  int64     `json:"commands"`
	Rejected  int64     `json:"rejected"`
	Failed    int64     `json:"failed"`
	StartTime time.Time `json:"start_time"`
	Uptime    string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() Snapshot {
	return Snapshot{
		Commands:  m.total.Load(),
		Rejected:  m.rejected.Load(),
		Failed:    m.failed.Load(),
		StartTime: m.StartTime,
		Uptime:    time.Since(m.StartTime).Round(time.Second).String(),
	}
}
