package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contadores Prometheus de los gateways, sobre un registro propio.
// Un *Metrics nil es válido y no registra nada.
type Metrics struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	resets   prometheus.Counter
}

// New crea el registro con las métricas del POS y las del runtime de Go.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_calls_total",
			Help:      "Llamadas a gateways por entidad, operación, modo y resultado.",
		}, []string{"entity", "operation", "mode", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_call_duration_seconds",
			Help:      "Duración de las llamadas a gateways.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity", "operation", "mode"}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "demo_resets_total",
			Help:      "Reinicios del almacén demo.",
		}),
	}
	reg.MustRegister(
		m.calls,
		m.duration,
		m.resets,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCall registra una llamada a gateway.
func (m *Metrics) ObserveCall(entity, operation, mode, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(entity, operation, mode, outcome).Inc()
	m.duration.WithLabelValues(entity, operation, mode).Observe(elapsed.Seconds())
}

// IncReset cuenta un reinicio del almacén demo.
func (m *Metrics) IncReset() {
	if m == nil {
		return
	}
	m.resets.Inc()
}

// Registry registro subyacente (tests y exportadores).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler expone el registro en formato de texto Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
