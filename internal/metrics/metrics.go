// Package metrics exposes prometheus instrumentation for the signup service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Signups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_signups_total",
			Help: "Total signup attempts by activity and outcome",
		},
		[]string{"activity", "outcome"},
	)

	Removals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_removals_total",
			Help: "Total removal attempts by activity and outcome",
		},
		[]string{"activity", "outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
)

// Middleware records a duration sample for every request, labelled with the
// chi route pattern rather than the raw path so activity names do not blow up
// the label space.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		RequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
	})
}
