package ratings

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records how rating reads and writes were served.
type Metrics struct {
	storeOperations    *prometheus.CounterVec
	casRetries         prometheus.Counter
	aggregateLatency   prometheus.Histogram
	aggregateFailures  prometheus.Counter
	openSessions       prometheus.Gauge
	importedDiagnostic prometheus.Counter
}

// NewMetrics registers the collectors on reg. A nil reg gets a private
// registry, which keeps tests from colliding on the global one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		storeOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jury_store_operations_total",
				Help: "Rating store operations by operation and persistence mode.",
			},
			[]string{"operation", "mode"},
		),
		casRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "jury_rating_update_conflicts_total",
			Help: "Rating updates retried after a concurrent write to the same judge.",
		}),
		aggregateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "jury_aggregate_duration_seconds",
			Help:    "Time to read every judge and build the aggregate view.",
			Buckets: prometheus.DefBuckets,
		}),
		aggregateFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "jury_aggregate_judge_read_failures_total",
			Help: "Judge rating sets that could not be read during aggregation.",
		}),
		openSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "jury_open_sessions",
			Help: "Judge sessions currently served by this instance.",
		}),
		importedDiagnostic: factory.NewCounter(prometheus.CounterOpts{
			Name: "jury_import_skipped_entries_total",
			Help: "Entries skipped while importing rating files.",
		}),
	}
}

func (m *Metrics) recordStore(operation string, mode PersistMode) {
	if m == nil {
		return
	}
	m.storeOperations.WithLabelValues(operation, string(mode)).Inc()
}

func (m *Metrics) recordRetry() {
	if m == nil {
		return
	}
	m.casRetries.Inc()
}

func (m *Metrics) recordAggregate(d time.Duration, failed int) {
	if m == nil {
		return
	}
	m.aggregateLatency.Observe(d.Seconds())
	m.aggregateFailures.Add(float64(failed))
}

func (m *Metrics) sessionOpened() {
	if m == nil {
		return
	}
	m.openSessions.Inc()
}

func (m *Metrics) sessionClosed() {
	if m == nil {
		return
	}
	m.openSessions.Dec()
}

func (m *Metrics) recordSkipped(n int) {
	if m == nil || n == 0 {
		return
	}
	m.importedDiagnostic.Add(float64(n))
}
