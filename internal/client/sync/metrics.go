package sync

import "github.com/prometheus/client_golang/prometheus"

// Значения метки result
const (
	resultSucceeded = "succeeded"
	resultFailed    = "failed"
	resultExhausted = "exhausted"
)

// Metrics exposes queue drain counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	drains     prometheus.Counter
	pending    prometheus.Gauge
	failed     prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trackkeeper",
			Subsystem: "sync",
			Name:      "operations_total",
			Help:      "Queued operations processed by drains, by result.",
		}, []string{"result"}),
		drains: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trackkeeper",
			Subsystem: "sync",
			Name:      "drains_total",
			Help:      "Completed queue drains.",
		}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "trackkeeper",
			Subsystem: "sync",
			Name:      "pending_operations",
			Help:      "Operations waiting in the local queue.",
		}),
		failed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "trackkeeper",
			Subsystem: "sync",
			Name:      "failed_operations",
			Help:      "Operations in the graveyard.",
		}),
	}
	reg.MustRegister(m.operations, m.drains, m.pending, m.failed)
	return m
}

func (m *Metrics) observeOperation(result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(result).Inc()
}

func (m *Metrics) observeDrain() {
	if m == nil {
		return
	}
	m.drains.Inc()
}

func (m *Metrics) setPending(n int) {
	if m == nil {
		return
	}
	m.pending.Set(float64(n))
}

func (m *Metrics) setFailed(n int) {
	if m == nil {
		return
	}
	m.failed.Set(float64(n))
}
