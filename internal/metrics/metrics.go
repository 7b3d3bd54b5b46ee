package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vetcare"

// Metrics agrupa los collectors del servicio. Cada router tiene su propio
// registry para que los tests puedan crear varios sin colisiones.
type Metrics struct {
	registry *prometheus.Registry

	httpDuration *prometheus.HistogramVec
	chatReplies  *prometheus.CounterVec
	diagnoses    *prometheus.CounterVec
	emergency    *prometheus.CounterVec
	uploads      *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.005, 0.025, 0.1, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route", "status"},
		),
		chatReplies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chat_replies_total",
				Help:      "Chat replies by matched intent",
			},
			[]string{"intent"},
		),
		diagnoses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "diagnoses_total",
				Help:      "Mock diagnoses generated by category and severity",
			},
			[]string{"category", "severity"},
		),
		emergency: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "emergency_lookups_total",
				Help:      "Emergency protocol lookups by outcome",
			},
			[]string{"outcome"},
		),
		uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "uploads_rejected_total",
				Help:      "Rejected detection uploads by reason",
			},
			[]string{"reason"},
		),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpDuration,
		m.chatReplies,
		m.diagnoses,
		m.emergency,
		m.uploads,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware mide duración por patrón de ruta chi (no por path crudo, para no
// explotar la cardinalidad con IDs).
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.httpDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) ChatReply(intent string) {
	m.chatReplies.WithLabelValues(intent).Inc()
}

func (m *Metrics) DiagnosisGenerated(category, severity string) {
	m.diagnoses.WithLabelValues(category, severity).Inc()
}

func (m *Metrics) EmergencyLookup(found bool) {
	outcome := "resolved"
	if !found {
		outcome = "empty"
	}
	m.emergency.WithLabelValues(outcome).Inc()
}

func (m *Metrics) UploadRejected(reason string) {
	m.uploads.WithLabelValues(reason).Inc()
}
