// Package metrics provides Prometheus metrics for content listing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "genonaut"

var (
	// QueryDuration measures store round trips per operation.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "content_query_duration_seconds",
			Help:      "Duration of unified content queries in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 15},
		},
		[]string{"operation", "status"},
	)

	// PlansTotal counts planned queries by tag strategy.
	PlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_query_plans_total",
			Help:      "Total number of planned content queries by tag filter strategy",
		},
		[]string{"strategy"},
	)

	// CountSkippedTotal counts listings that returned without a total count.
	CountSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_count_skipped_total",
			Help:      "Total number of listings served without a total count",
		},
	)

	// StoreTimeoutsTotal counts statements cancelled by the statement timeout.
	StoreTimeoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_store_timeouts_total",
			Help:      "Total number of content store statements that exceeded their timeout",
		},
		[]string{"operation"},
	)

	// ShortCircuitTotal counts requests answered without touching the store.
	ShortCircuitTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_query_short_circuit_total",
			Help:      "Total number of listings with an empty source selection",
		},
	)

	// PageSize observes the number of items returned per page.
	PageSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "content_page_items",
			Help:      "Distribution of items returned per page",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)
)

// RecordQuery records one store operation.
func RecordQuery(operation, status string, seconds float64) {
	QueryDuration.WithLabelValues(operation, status).Observe(seconds)
}

// RecordPlan records the tag strategy chosen for a query.
func RecordPlan(strategy string) {
	PlansTotal.WithLabelValues(strategy).Inc()
}

// RecordTimeout records a statement timeout.
func RecordTimeout(operation string) {
	StoreTimeoutsTotal.WithLabelValues(operation).Inc()
}
