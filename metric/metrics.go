// Package metric defines the Prometheus instrumentation for the validation
// engine. Collectors are created unregistered so callers control the
// registry they live in.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the validation engine's collectors.
type Metrics struct {
	ValidationsTotal   *prometheus.CounterVec
	ViolationsTotal    *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
	ManifestReloads    prometheus.Counter
	ManifestErrors     prometheus.Counter
}

// NewMetrics creates the collectors without registering them.
func NewMetrics() *Metrics {
	return &Metrics{
		ValidationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semshape",
				Subsystem: "validation",
				Name:      "total",
				Help:      "Total number of records validated",
			},
			[]string{"shape", "outcome"},
		),

		ViolationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semshape",
				Subsystem: "validation",
				Name:      "violations_total",
				Help:      "Total number of violations by code",
			},
			[]string{"code"},
		),

		ValidationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "semshape",
				Subsystem: "validation",
				Name:      "duration_seconds",
				Help:      "Validation duration per record in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"shape"},
		),

		ManifestReloads: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "semshape",
				Subsystem: "manifest",
				Name:      "reloads_total",
				Help:      "Total number of manifest reloads in watch mode",
			},
		),

		ManifestErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "semshape",
				Subsystem: "manifest",
				Name:      "errors_total",
				Help:      "Total number of manifest load failures in watch mode",
			},
		),
	}
}

// Register registers every collector on the given registry.
func (m *Metrics) Register(registry *prometheus.Registry) error {
	for _, collector := range []prometheus.Collector{
		m.ValidationsTotal,
		m.ViolationsTotal,
		m.ValidationDuration,
		m.ManifestReloads,
		m.ManifestErrors,
	} {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// RecordValidation increments the validation counter for a shape.
func (m *Metrics) RecordValidation(shapeClass string, ok bool) {
	outcome := "conforming"
	if !ok {
		outcome = "violating"
	}
	m.ValidationsTotal.WithLabelValues(shapeClass, outcome).Inc()
}

// RecordViolation increments the per-code violation counter.
func (m *Metrics) RecordViolation(code string) {
	m.ViolationsTotal.WithLabelValues(code).Inc()
}

// RecordDuration records how long validating one record took.
func (m *Metrics) RecordDuration(shapeClass string, duration time.Duration) {
	m.ValidationDuration.WithLabelValues(shapeClass).Observe(duration.Seconds())
}

// RecordReload increments the manifest reload counter.
func (m *Metrics) RecordReload() {
	m.ManifestReloads.Inc()
}

// RecordReloadError increments the manifest load failure counter.
func (m *Metrics) RecordReloadError() {
	m.ManifestErrors.Inc()
}
