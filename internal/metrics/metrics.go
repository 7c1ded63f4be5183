package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upload outcomes used as the "outcome" label
const (
	UploadProcessed = "processed"
	UploadRejected  = "rejected"
	UploadFailed    = "failed"
)

var (
	responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sheetdesk_http_response_seconds",
			Help:    "http response time by route.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"route"},
	)

	totalHTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "sheetdesk_http_requests_total", Help: "http requests by code, method and route"},
		[]string{"code", "method", "route"},
	)

	registeredUsers = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "sheetdesk_registered_users", Help: "users currently held in the registry"},
	)

	uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "sheetdesk_uploads_total", Help: "spreadsheet uploads by outcome"},
		[]string{"outcome"},
	)

	uploadRecords = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sheetdesk_upload_records",
			Help:    "data records extracted per processed upload.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(
		responseTime,
		totalHTTPRequests,
		registeredUsers,
		uploads,
		uploadRecords,
	)
}

// ObserveRequest records one served request
func ObserveRequest(code, method, route string, seconds float64) {
	totalHTTPRequests.WithLabelValues(code, method, route).Inc()
	responseTime.WithLabelValues(route).Observe(seconds)
}

// SetRegisteredUsers publishes the registry size
func SetRegisteredUsers(n int) {
	registeredUsers.Set(float64(n))
}

// ObserveUpload counts an upload outcome; records is only observed for processed uploads
func ObserveUpload(outcome string, records int) {
	uploads.WithLabelValues(outcome).Inc()
	if outcome == UploadProcessed {
		uploadRecords.Observe(float64(records))
	}
}

// Handler serves the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.Handler()
}
