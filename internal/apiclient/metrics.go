package apiclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "shramikadmin"
	subsystem = "api"
)

// Metrics counts outgoing API calls. A nil *Metrics records nothing.
type Metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	unauthorized prometheus.Counter
}

// NewMetrics registers the adapter's collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		// Labels:
		//   - method: HTTP verb
		//   - code: status code, or "error" for transport failures
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "requests_total",
				Help:      "Total number of API requests issued, by method and status code.",
			},
			[]string{"method", "code"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "request_duration_seconds",
				Help:      "API request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		unauthorized: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "unauthorized_total",
				Help:      "Responses with status 401 that cleared the session.",
			},
		),
	}
}

func (m *Metrics) observe(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, code).Inc()
	m.duration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Metrics) sessionRevoked() {
	if m == nil {
		return
	}
	m.unauthorized.Inc()
}
