// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the service collectors so tests can use a private registry.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	Interactions    *prometheus.CounterVec
	BookmarkToggles *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Interactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gig_interactions_total",
			Help: "Recorded gig interactions by action.",
		}, []string{"action"}),
		BookmarkToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gig_bookmark_toggles_total",
			Help: "Bookmark toggles by result (added/removed).",
		}, []string{"result"}),
	}

	if reg != nil {
		reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.Interactions, m.BookmarkToggles)
	}

	return m
}

// Nop returns unregistered collectors, handy in tests.
func Nop() *Metrics {
	return New(nil)
}
