package notion

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes for the metrics labels
const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskapp",
		Subsystem: "notion",
		Name:      "requests_total",
		Help:      "Outbound API requests, labelled by verb and outcome.",
	}, []string{"verb", "outcome"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "taskapp",
		Subsystem: "notion",
		Name:      "request_duration_seconds",
		Help:      "Outbound API request latency by verb.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"verb"})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration)
}

// observeRequest records one API round trip.
func observeRequest(verb, outcome string, duration time.Duration) {
	requestsTotal.WithLabelValues(verb, outcome).Inc()
	requestDuration.WithLabelValues(verb).Observe(duration.Seconds())
}
