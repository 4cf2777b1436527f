package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PaymentMetrics exposes counters/histograms for payment request flows.
type PaymentMetrics struct {
	resultsTotal    *prometheus.CounterVec
	resultLatency   *prometheus.HistogramVec
	pendingRequests prometheus.Gauge
}

func NewPaymentMetrics(reg prometheus.Registerer) *PaymentMetrics {
	m := &PaymentMetrics{
		resultsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "payment_bridge",
			Subsystem: "requests",
			Name:      "results_total",
			Help:      "Total payment request results by request type and outcome",
		}, []string{"type", "outcome", "error_kind"}),
		resultLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "payment_bridge",
			Subsystem: "requests",
			Name:      "result_latency_seconds",
			Help:      "Time between request start and its result",
			Buckets:   prometheus.DefBuckets,
		}, []string{"type", "outcome"}),
		pendingRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "payment_bridge",
			Subsystem: "requests",
			Name:      "pending",
			Help:      "Payment requests waiting for an SDK result or for the host to collect it",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.resultsTotal, m.resultLatency, m.pendingRequests)
	return m
}

func (m *PaymentMetrics) ObserveResult(requestType, outcome, errorKind string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.resultsTotal.WithLabelValues(requestType, outcome, errorKind).Inc()
	m.resultLatency.WithLabelValues(requestType, outcome).Observe(elapsed.Seconds())
}

func (m *PaymentMetrics) SetPending(n int) {
	if m == nil {
		return
	}
	m.pendingRequests.Set(float64(n))
}
