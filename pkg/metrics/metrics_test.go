package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFlowMetrics_Record(t *testing.T) {
	m := NewFlowMetrics(prometheus.NewRegistry())

	m.Transition("start", "collecting_notes")
	m.Transition("start", "collecting_notes")
	m.Dispatch(true)
	m.Dispatch(false)
	m.Dispatch(true)
	m.Minutes(true, 200*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TransitionsTotal.WithLabelValues("start", "collecting_notes")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DispatchTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DispatchTotal.WithLabelValues("failure")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.MinutesSeconds))
}

func TestFlowMetrics_NilIsNoop(t *testing.T) {
	var m *FlowMetrics

	assert.NotPanics(t, func() {
		m.Transition("start", "collecting_notes")
		m.Dispatch(false)
		m.Minutes(false, time.Second)
	})
}
