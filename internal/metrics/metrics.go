package metrics

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
	OutcomeSkipped  = "skipped"
)

// Metrics holds the app's collectors on a private registry.
type Metrics struct {
	Registry    *prometheus.Registry
	Validations *prometheus.CounterVec
	Copies      *prometheus.CounterVec
	Duration    prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textvalidator_validations_total",
				Help: "Validation attempts by outcome",
			},
			[]string{"outcome"},
		),
		Copies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textvalidator_copies_total",
				Help: "Clipboard copy attempts by outcome",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "textvalidator_validation_duration_seconds",
				Help:    "Round trip time of validation requests",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	m.Registry.MustRegister(m.Validations, m.Copies, m.Duration)
	return m
}

func (m *Metrics) ObserveValidation(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Validations.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		m.Duration.Observe(elapsed.Seconds())
	}
}

func (m *Metrics) ObserveCopy(outcome string) {
	if m == nil {
		return
	}
	m.Copies.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until the server fails or is closed.
func (m *Metrics) Serve(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("starting metrics server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
	return srv
}
