package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "erp"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Incoming HTTP requests by route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Incoming HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	outgoingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outgoing_requests_total",
		Help:      "Requests to third-party providers by host and result.",
	}, []string{"host", "result"})

	jobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_runs_total",
		Help:      "Background job runs by name and result.",
	}, []string{"job", "result"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func ObserveOutgoing(host string, err error, status int) {
	result := "ok"

	switch {
	case err != nil:
		result = "error"
	case status >= http.StatusBadRequest:
		result = strconv.Itoa(status)
	}

	outgoingRequests.WithLabelValues(host, result).Inc()
}

func ObserveJob(name string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	jobRuns.WithLabelValues(name, result).Inc()
}
