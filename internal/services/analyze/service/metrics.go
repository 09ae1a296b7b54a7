package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"reviewtrust/internal/core/scorer"
	"reviewtrust/internal/services/analyze/domain"
)

// Metrics are the analyze service collectors
type Metrics struct {
	Results    *prometheus.CounterVec
	Latency    *prometheus.HistogramVec
	BatchSize  prometheus.Histogram
	SinkErrors *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg when reg is non-nil
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Results: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reviewtrust_results_total",
				Help: "Trust results produced, by kind and level",
			},
			[]string{"kind", "level"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reviewtrust_analyze_duration_seconds",
				Help:    "Time spent producing a result, by kind",
				Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"kind"},
		),
		BatchSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reviewtrust_batch_items",
				Help:    "Items per analyzed batch",
				Buckets: prometheus.ExponentialBuckets(1, 2, 11),
			},
		),
		SinkErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reviewtrust_sink_errors_total",
				Help: "Failed writes to the result archive or issue sink",
			},
			[]string{"sink"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Results, m.Latency, m.BatchSize, m.SinkErrors)
	}
	return m
}

func (m *Metrics) observe(kind domain.Kind, level scorer.Level) {
	if m == nil {
		return
	}
	m.Results.WithLabelValues(string(kind), string(level)).Inc()
}

func (m *Metrics) since(kind domain.Kind, start time.Time) {
	if m == nil {
		return
	}
	m.Latency.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
}

func (m *Metrics) batch(n int) {
	if m == nil {
		return
	}
	m.BatchSize.Observe(float64(n))
}

func (m *Metrics) sinkFailed(sink string) {
	if m == nil {
		return
	}
	m.SinkErrors.WithLabelValues(sink).Inc()
}
