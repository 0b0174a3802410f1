// Package metrics provides Prometheus collectors for the brainfeed front end.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "brainfeed"

var (
	// FetchTotal counts content API calls by outcome.
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Total number of content API fetches, labeled by resource and outcome",
		},
		[]string{"resource", "outcome"},
	)

	// FetchDuration measures content API latency, timeouts included.
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of content API fetches in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 1.5, 2, 3},
		},
		[]string{"resource"},
	)

	// QueryJoinsTotal counts callers that attached to an in-flight query.
	QueryJoinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_joins_total",
			Help:      "Callers served by an already outstanding identical query",
		},
		[]string{"resource"},
	)

	// PageResolutions counts the display state every page resolved to.
	PageResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_resolutions_total",
			Help:      "Page data resolutions, labeled by page and state",
		},
		[]string{"page", "state"},
	)

	// BookmarkOps counts bookmark store mutations.
	BookmarkOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookmark_operations_total",
			Help:      "Bookmark store operations, labeled by operation and status",
		},
		[]string{"op", "status"},
	)
)

// ObserveFetch records one executor call.
func ObserveFetch(resource, outcome string, d time.Duration) {
	FetchTotal.WithLabelValues(resource, outcome).Inc()
	FetchDuration.WithLabelValues(resource).Observe(d.Seconds())
}

func ObserveQueryJoin(resource string) {
	QueryJoinsTotal.WithLabelValues(resource).Inc()
}

func ObservePage(page, state string) {
	PageResolutions.WithLabelValues(page, state).Inc()
}

func ObserveBookmark(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	BookmarkOps.WithLabelValues(op, status).Inc()
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
