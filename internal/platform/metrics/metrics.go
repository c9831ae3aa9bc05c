package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// AllocationRuns counts allocation runs by outcome (ok, conflict, error).
	AllocationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "allocation_runs_total", Help: "Allocation runs by outcome."},
		[]string{"status"},
	)

	// AllocationRows counts emitted route rows by kind
	// (assigned, unassigned-delivery, unassigned-driver).
	AllocationRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "allocation_rows_total", Help: "Emitted route rows by kind."},
		[]string{"kind"},
	)
)

var regOnce sync.Once

// Register installs all collectors on the dedicated registry, plus the
// standard Go and process collectors.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(AllocationRuns)
		Registry.MustRegister(AllocationRows)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Handler serves the exposition endpoint for the dedicated registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
