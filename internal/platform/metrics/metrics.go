package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	UsersRegistered prometheus.Counter
	UsersDeleted    prometheus.Counter
	Logins          prometheus.Counter
	AuthFailures    prometheus.Counter
	EndpointLatency *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "doorman_users_registered_total",
			Help: "Total number of users registered",
		}),
		UsersDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "doorman_users_deleted_total",
			Help: "Total number of users deleted",
		}),
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "doorman_logins_total",
			Help: "Total number of successful logins",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "doorman_auth_failures_total",
			Help: "Total number of authentication failures",
		}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "doorman_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

// IncrementUsersRegistered increments the registered-users counter.
func (m *Metrics) IncrementUsersRegistered() {
	m.UsersRegistered.Inc()
}

// IncrementUsersDeleted increments the deleted-users counter.
func (m *Metrics) IncrementUsersDeleted() {
	m.UsersDeleted.Inc()
}

// IncrementLogins increments the successful-logins counter.
func (m *Metrics) IncrementLogins() {
	m.Logins.Inc()
}

// IncrementAuthFailures increments the auth-failures counter.
func (m *Metrics) IncrementAuthFailures() {
	m.AuthFailures.Inc()
}

// ObserveEndpointLatency records request latency for an endpoint.
func (m *Metrics) ObserveEndpointLatency(endpoint string, seconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(seconds)
}
