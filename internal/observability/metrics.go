// Package observability holds the Prometheus instrumentation shared by the
// HTTP server and background jobs.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates the collectors the service exports on /metrics.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	JobsAcceptedTotal        prometheus.Counter
	AssignmentConflictsTotal prometheus.Counter
	OrdersCreatedTotal       prometheus.Counter

	DigestRunsTotal   prometheus.Counter
	DigestJobsGauge   prometheus.Gauge
	DigestErrorsTotal prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "moveout_http_requests_total",
			Help: "HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "moveout_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		JobsAcceptedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "moveout_jobs_accepted_total",
			Help: "Jobs successfully claimed by movers.",
		}),
		AssignmentConflictsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "moveout_assignment_conflicts_total",
			Help: "Job claims lost to a competing mover.",
		}),
		OrdersCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "moveout_orders_created_total",
			Help: "Storage orders created.",
		}),
		DigestRunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "moveout_digest_runs_total",
			Help: "Completed runs of the available-jobs digest.",
		}),
		DigestJobsGauge: factory.NewGauge(prometheus.GaugeOpts{
			Name: "moveout_digest_available_jobs",
			Help: "Available jobs seen by the last digest run.",
		}),
		DigestErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "moveout_digest_errors_total",
			Help: "Failed runs of the available-jobs digest.",
		}),
	}
}
