package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pitwall"

// Metrics owns a private registry so tests and multiple servers in one
// process never collide on the global one.
type Metrics struct {
	registry          *prometheus.Registry
	interactions      *prometheus.CounterVec
	signatureFailures prometheus.Counter
	commandDuration   *prometheus.HistogramVec
	noticesSent       prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		interactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interactions_total",
			Help:      "Verified Discord interactions by kind",
		}, []string{"kind"}),
		signatureFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signature_failures_total",
			Help:      "Interaction requests rejected for a bad signature",
		}),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Time spent answering a slash command",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3},
		}, []string{"command"}),
		noticesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "race_week_notices_sent_total",
			Help:      "Race week notices delivered to subscribed channels",
		}),
	}
	m.registry.MustRegister(
		m.interactions,
		m.signatureFailures,
		m.commandDuration,
		m.noticesSent,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) InteractionReceived(kind string) {
	m.interactions.WithLabelValues(kind).Inc()
}

func (m *Metrics) SignatureRejected() {
	m.signatureFailures.Inc()
}

func (m *Metrics) CommandHandled(name string, elapsed time.Duration) {
	m.commandDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}

func (m *Metrics) NoticesSent(n int) {
	m.noticesSent.Add(float64(n))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
}
