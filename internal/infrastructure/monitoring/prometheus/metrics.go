// Package prometheus registers and exposes the service metrics.
package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the instrument handles. One instance is shared by the HTTP
// middleware and the domain services.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	resolutionsTotal *prometheus.CounterVec
	searchesTotal    *prometheus.CounterVec
	conversionsTotal *prometheus.CounterVec

	catalogRecords prometheus.Gauge
}

// NewMetrics builds and registers all instruments on a private registry.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	m.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	m.resolutionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolutions_total",
		Help:      "Identifier resolutions by matched channel.",
	}, []string{"channel"})

	m.searchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Search queries by type.",
	}, []string{"type"})

	m.conversionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conversions_total",
		Help:      "External notation conversions by converter and outcome.",
	}, []string{"converter", "outcome"})

	m.catalogRecords = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_records",
		Help:      "Number of records in the loaded catalog snapshot.",
	})

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.resolutionsTotal,
		m.searchesTotal,
		m.conversionsTotal,
		m.catalogRecords,
	)
	return m
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveResolution records one existence-check outcome. channel must come
// from the fixed channel set, never from request-derived text.
func (m *Metrics) ObserveResolution(channel string) {
	m.resolutionsTotal.WithLabelValues(channel).Inc()
}

// ObserveSearch records one search query.
func (m *Metrics) ObserveSearch(searchType string) {
	m.searchesTotal.WithLabelValues(searchType).Inc()
}

// ObserveConversion records one external conversion attempt.
func (m *Metrics) ObserveConversion(converter, outcome string) {
	m.conversionsTotal.WithLabelValues(converter, outcome).Inc()
}

// SetCatalogRecords publishes the catalog size after load.
func (m *Metrics) SetCatalogRecords(n int) {
	m.catalogRecords.Set(float64(n))
}
