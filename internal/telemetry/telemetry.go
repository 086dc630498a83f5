// Package telemetry exposes Prometheus metrics for the dashboard: HTTP
// request counts and latencies, plus instrumentation of the upstream
// candidate-store fetches.
package telemetry

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all dashboard Prometheus metrics.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	StorePagesTotal    prometheus.Counter
	StoreRecordsTotal  prometheus.Counter
	StoreErrorsTotal   prometheus.Counter
	StoreFetchDuration prometheus.Histogram
}

// promauto registers against the global registry, so the metrics set is a
// process-wide singleton; repeated NewMetrics calls (tests) return the same
// instance instead of panicking on duplicate registration.
var (
	once     sync.Once
	instance *Metrics
)

// NewMetrics returns the process metrics set, creating it on first use.
func NewMetrics() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "dashboard_http_requests_total",
				Help: "Total HTTP requests by path and status",
			}, []string{"path", "status"}),
			RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "dashboard_http_request_duration_seconds",
				Help:    "HTTP request latency by path",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			}, []string{"path"}),
			StorePagesTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "dashboard_store_pages_fetched_total",
				Help: "Total result pages fetched from the candidate store",
			}),
			StoreRecordsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "dashboard_store_records_fetched_total",
				Help: "Total records fetched from the candidate store",
			}),
			StoreErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "dashboard_store_fetch_errors_total",
				Help: "Total failed candidate store requests",
			}),
			StoreFetchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "dashboard_store_fetch_duration_seconds",
				Help:    "Full paginated fetch latency against the candidate store",
				Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
			}),
		}
	})
	return instance
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

// PageFetched records one fetched result page.
func (m *Metrics) PageFetched(records int) {
	m.StorePagesTotal.Inc()
	m.StoreRecordsTotal.Add(float64(records))
}

// FetchFailed records one failed store request.
func (m *Metrics) FetchFailed() {
	m.StoreErrorsTotal.Inc()
}

// FetchCompleted records the latency of one full paginated fetch.
func (m *Metrics) FetchCompleted(d time.Duration) {
	m.StoreFetchDuration.Observe(d.Seconds())
}

// Middleware returns gin middleware recording request counts and latencies.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		m.RequestsTotal.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}
