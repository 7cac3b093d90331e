package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCall_CuentaPorEtiquetas(t *testing.T) {
	m := New("pos_test")
	m.ObserveCall("productos", "get", "demo", "ok", time.Millisecond)
	m.ObserveCall("productos", "get", "demo", "ok", time.Millisecond)
	m.ObserveCall("productos", "get", "demo", "not_found", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calls.WithLabelValues("productos", "get", "demo", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues("productos", "get", "demo", "not_found")))
}

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCall("ventas", "list", "live", "ok", time.Second)
		m.IncReset()
	})
}
