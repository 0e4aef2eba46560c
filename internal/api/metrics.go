package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes counters and histograms for care plan requests.
type Metrics struct {
	plansTotal   *prometheus.CounterVec
	planDuration *prometheus.HistogramVec
}

// NewMetrics registers the care plan metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		plansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careplan",
			Subsystem: "api",
			Name:      "plans_total",
			Help:      "Total care plan generation requests",
		}, []string{"status"}),
		planDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "careplan",
			Subsystem: "api",
			Name:      "plan_duration_seconds",
			Help:      "Latency of care plan generation requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.plansTotal, m.planDuration)
	return m
}

// ObservePlanRequest records one care plan request outcome.
func (m *Metrics) ObservePlanRequest(status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.plansTotal.WithLabelValues(status).Inc()
	m.planDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}
