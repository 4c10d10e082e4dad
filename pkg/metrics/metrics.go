package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FlowMetrics holds Prometheus metrics for the meeting flow.
// A nil *FlowMetrics is valid and records nothing.
type FlowMetrics struct {
	TransitionsTotal *prometheus.CounterVec
	DispatchTotal    *prometheus.CounterVec
	MinutesSeconds   *prometheus.HistogramVec
}

// NewFlowMetrics registers the flow metrics with reg
func NewFlowMetrics(reg prometheus.Registerer) *FlowMetrics {
	factory := promauto.With(reg)

	return &FlowMetrics{
		TransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assistant_flow_transitions_total",
				Help: "Meeting flow operations that changed state, by resulting state",
			},
			[]string{"operation", "state"},
		),
		DispatchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assistant_email_dispatch_total",
				Help: "Notification emails attempted, by outcome",
			},
			[]string{"outcome"},
		),
		MinutesSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "assistant_minutes_generation_seconds",
				Help:    "Latency of minutes generation",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"outcome"},
		),
	}
}

// Transition records an operation that left the flow in state
func (m *FlowMetrics) Transition(operation, state string) {
	if m == nil {
		return
	}
	m.TransitionsTotal.WithLabelValues(operation, state).Inc()
}

// Dispatch records one email delivery attempt
func (m *FlowMetrics) Dispatch(success bool) {
	if m == nil {
		return
	}
	m.DispatchTotal.WithLabelValues(outcome(success)).Inc()
}

// Minutes records how long minutes generation took
func (m *FlowMetrics) Minutes(success bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.MinutesSeconds.WithLabelValues(outcome(success)).Observe(elapsed.Seconds())
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
