package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce      sync.Once
	apiRequestsTotal  *prometheus.CounterVec
	apiLatencySeconds *prometheus.HistogramVec
	apiErrorsTotal    *prometheus.CounterVec
	verifikasiTotal   *prometheus.CounterVec
	laporanTotal      *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "izakod_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "izakod_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "izakod_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		verifikasiTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "izakod_verifikasi_total",
			Help: "Verification decisions applied, labelled by resulting status.",
		}, []string{"status"})

		laporanTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "izakod_laporan_total",
			Help: "Reports created, labelled by initial status.",
		}, []string{"status"})

		prometheus.MustRegister(apiRequestsTotal, apiLatencySeconds, apiErrorsTotal, verifikasiTotal, laporanTotal)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the counter for API error responses.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// VerifikasiTotal exposes the counter for verification decisions.
func VerifikasiTotal() *prometheus.CounterVec {
	RegisterMetrics()
	return verifikasiTotal
}

// LaporanTotal exposes the counter for created reports.
func LaporanTotal() *prometheus.CounterVec {
	RegisterMetrics()
	return laporanTotal
}
