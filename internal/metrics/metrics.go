package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	KindDomain = "domain"
	KindIP     = "ip"

	OutcomeFound     = "found"
	OutcomeNotFound  = "not_found"
	OutcomeNoServer  = "no_server"
	OutcomeMalformed = "malformed"
	OutcomeTransport = "transport"
	OutcomeSkipped   = "skipped"
)

// Metrics records registry lookups and produced notifications. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	Lookups       *prometheus.CounterVec
	LookupLatency *prometheus.HistogramVec
	Notifications *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phishabuser_registry_lookups_total",
			Help: "Registry lookups by kind and outcome",
		}, []string{"kind", "outcome"}),

		LookupLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "phishabuser_registry_lookup_duration_seconds",
			Help:    "Duration of registry lookups including bootstrap and generalization",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"kind"}),

		Notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phishabuser_notifications_total",
			Help: "Abuse notifications produced by subject kind",
		}, []string{"kind"}),
	}
}

func (m *Metrics) ObserveLookup(kind, outcome string, d time.Duration) {
	if m != nil {
		m.Lookups.WithLabelValues(kind, outcome).Inc()
		if outcome != OutcomeSkipped {
			m.LookupLatency.WithLabelValues(kind).Observe(d.Seconds())
		}
	}
}

func (m *Metrics) IncrementNotification(kind string) {
	if m != nil {
		m.Notifications.WithLabelValues(kind).Inc()
	}
}
