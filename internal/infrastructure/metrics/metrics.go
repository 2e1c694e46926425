// Package metrics expone contadores Prometheus de mutaciones y la latencia HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/stockboard/internal/application/usecase"
)

// Nombres de las métricas.
const (
	MetricMutationsTotal      = "stockboard_mutations_total"
	MetricMutationsRejected   = "stockboard_mutations_rejected_total"
	MetricHTTPRequestsTotal   = "stockboard_http_requests_total"
	MetricHTTPRequestDuration = "stockboard_http_request_duration_seconds"
)

// Recorder agrupa las métricas en un registro propio (no el global), de modo que
// cada instancia de la app y cada test parte de cero.
type Recorder struct {
	registry        *prometheus.Registry
	mutations       *prometheus.CounterVec
	rejected        *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var _ usecase.MutationObserver = (*Recorder)(nil)

// NewRecorder registra las métricas junto con los collectors de proceso y runtime de Go.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricMutationsTotal,
			Help: "Mutaciones aplicadas por entidad y operación",
		}, []string{"entity", "op"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricMutationsRejected,
			Help: "Mutaciones rechazadas por entidad, operación y motivo",
		}, []string{"entity", "op", "reason"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricHTTPRequestsTotal,
			Help: "Peticiones HTTP atendidas",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricHTTPRequestDuration,
			Help:    "Latencia de las peticiones HTTP",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
	r.registry.MustRegister(
		r.mutations,
		r.rejected,
		r.requests,
		r.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// MutationApplied implementa usecase.MutationObserver.
func (r *Recorder) MutationApplied(entity, op string) {
	r.mutations.WithLabelValues(entity, op).Inc()
}

// MutationRejected implementa usecase.MutationObserver.
func (r *Recorder) MutationRejected(entity, op, reason string) {
	r.rejected.WithLabelValues(entity, op, reason).Inc()
}

// ObserveRequest registra una petición HTTP. path es la ruta registrada (p. ej. /api/items/:id), no la URL.
func (r *Recorder) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	r.requests.WithLabelValues(method, path, code).Inc()
	r.requestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

// Handler handler net/http para GET /metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry expone el registro (tests).
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }
