// Package metrics exposes Prometheus instrumentation for HTTP traffic, recipe composition
// writes and shopping list exports.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "foodgram"

var (
	// HTTPRequestsTotal counts handled requests by route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes request latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// HTTPActiveRequests tracks in-flight requests.
	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_active_requests",
			Help:      "Current number of in-flight HTTP requests",
		},
	)

	// RateLimitHits counts rejected requests by limiter.
	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_hits_total",
			Help:      "Total number of requests rejected by a rate limiter",
		},
		[]string{"limiter"},
	)

	// CompositionWrites counts association rows written by the reconciler.
	CompositionWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "composition_writes_total",
			Help:      "Recipe tag and ingredient rows written by reconciliation",
		},
		[]string{"table", "op"},
	)

	// Reconciliations counts reconciliation runs by outcome: changed, unchanged or failed.
	Reconciliations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliations_total",
			Help:      "Recipe composition reconciliations by outcome",
		},
		[]string{"outcome"},
	)

	// ShoppingListItems observes the number of distinct lines per exported list.
	ShoppingListItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shopping_list_items",
			Help:      "Distinct ingredient lines per exported shopping list",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)
)

// CompositionCounts is the per-kind row count of one reconciliation.
type CompositionCounts struct {
	TagsAdded, TagsRemoved                    int
	LinesInserted, LinesUpdated, LinesDeleted int
}

// RecordReconciliation records the outcome of one reconciliation.
func RecordReconciliation(c CompositionCounts, err error) {
	if err != nil {
		Reconciliations.WithLabelValues("failed").Inc()
		return
	}

	add := func(table, op string, n int) {
		if n > 0 {
			CompositionWrites.WithLabelValues(table, op).Add(float64(n))
		}
	}
	add("recipe_tags", "insert", c.TagsAdded)
	add("recipe_tags", "delete", c.TagsRemoved)
	add("recipe_ingredients", "insert", c.LinesInserted)
	add("recipe_ingredients", "update", c.LinesUpdated)
	add("recipe_ingredients", "delete", c.LinesDeleted)

	if c.TagsAdded+c.TagsRemoved+c.LinesInserted+c.LinesUpdated+c.LinesDeleted == 0 {
		Reconciliations.WithLabelValues("unchanged").Inc()
		return
	}
	Reconciliations.WithLabelValues("changed").Inc()
}

// RecordShoppingList records one export.
func RecordShoppingList(items int) {
	ShoppingListItems.Observe(float64(items))
}

// RecordRateLimitHit records a request rejected by the named limiter.
func RecordRateLimitHit(limiter string) {
	RateLimitHits.WithLabelValues(limiter).Inc()
}

// Middleware records request count and latency labelled by chi route pattern, so path
// parameters do not explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		HTTPActiveRequests.Inc()
		defer HTTPActiveRequests.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
