// Package metrics expone contadores Prometheus de las mutaciones del inventario y del API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

const namespace = "inventory"

// Metrics registro propio (no el global) con los colectores de la app.
type Metrics struct {
	registry        *prometheus.Registry
	mutations       *prometheus.CounterVec
	movements       *prometheus.CounterVec
	movedUnits      *prometheus.CounterVec
	derivedFailures *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

var _ inventory.Observer = (*Metrics)(nil)

// New crea y registra los colectores.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Mutaciones aplicadas sobre items, por operación.",
		}, []string{"op"}),
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_total",
			Help:      "Movimientos registrados, por dirección.",
		}, []string{"direction"}),
		movedUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moved_units_total",
			Help:      "Unidades que entraron o salieron, por dirección.",
		}, []string{"direction"}),
		derivedFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "derived_append_failures_total",
			Help:      "Mutaciones aplicadas cuyo movimiento o historial no se pudo guardar.",
		}, []string{"op", "record"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.registry.MustRegister(
		m.mutations, m.movements, m.movedUnits, m.derivedFailures,
		m.httpRequests, m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) MutationApplied(op string) {
	m.mutations.WithLabelValues(op).Inc()
}

func (m *Metrics) MovementAppended(direction entity.MovementDirection, quantity int) {
	m.movements.WithLabelValues(string(direction)).Inc()
	m.movedUnits.WithLabelValues(string(direction)).Add(float64(quantity))
}

func (m *Metrics) DerivedAppendFailed(op, record string) {
	m.derivedFailures.WithLabelValues(op, record).Inc()
}

// ObserveRequest registra una petición HTTP; route es el patrón, no la URL concreta.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry para tests y para colectores adicionales.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler sirve el formato de exposición de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
