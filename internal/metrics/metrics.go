// Package metrics provides Prometheus metrics for the villa service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the registry served on /metrics.
	Registry = prometheus.NewRegistry()

	// HTTPRequestsTotal counts HTTP requests by method, route and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "villa_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "villa_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInFlight tracks requests currently being served.
	HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "villa_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// StoreQueriesTotal counts entity store queries; tracked reports the caller's change-tracking intent.
	StoreQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "villa_store_queries_total",
			Help: "Entity store queries by entity and tracking mode",
		},
		[]string{"entity", "tracked"},
	)

	// StoreWritesTotal counts entity store writes by entity, operation and outcome.
	StoreWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "villa_store_writes_total",
			Help: "Entity store writes by entity, operation and outcome",
		},
		[]string{"entity", "op", "outcome"},
	)

	initOnce sync.Once
	initErr  error
)

// Init registers every collector with Registry. Safe to call more than once.
func Init() error {
	initOnce.Do(func() {
		for _, c := range []prometheus.Collector{
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			HTTPRequestsTotal,
			HTTPRequestDuration,
			HTTPRequestsInFlight,
			StoreQueriesTotal,
			StoreWritesTotal,
		} {
			if err := Registry.Register(c); err != nil {
				initErr = err
				return
			}
		}
	})
	return initErr
}

// Handler serves the metrics in Registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveQuery records one store query.
func ObserveQuery(entity string, tracked bool) {
	label := "false"
	if tracked {
		label = "true"
	}
	StoreQueriesTotal.WithLabelValues(entity, label).Inc()
}

// ObserveWrite records one store write; err decides the outcome label.
func ObserveWrite(entity, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	StoreWritesTotal.WithLabelValues(entity, op, outcome).Inc()
}
