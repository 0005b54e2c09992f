package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService : prometheus метрики HTTP, кэша и шаринга, все методы безопасны для nil
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	grantsTotal     prometheus.Counter
	publicLinks     prometheus.Counter
	accessDenied    *prometheus.CounterVec
	uploadedBytes   prometheus.Counter
}

func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "document_cache_hits_total",
		Help: "Document cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "document_cache_misses_total",
		Help: "Document cache misses",
	})

	grantsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sharing_grants_total",
		Help: "Direct grants created",
	})

	publicLinks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sharing_public_links_total",
		Help: "Public links issued or regenerated",
	})

	accessDenied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sharing_access_denied_total",
		Help: "Operations rejected by the access rules",
	}, []string{"operation"})

	uploadedBytes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "documents_uploaded_bytes_total",
		Help: "Bytes of PDF content accepted for storage",
	})

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		requestDuration,
		requestTotal,
		cacheHits,
		cacheMisses,
		grantsTotal,
		publicLinks,
		accessDenied,
		uploadedBytes,
	)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		grantsTotal:     grantsTotal,
		publicLinks:     publicLinks,
		accessDenied:    accessDenied,
		uploadedBytes:   uploadedBytes,
	}
}

// Handler : отдаёт метрики для /metrics
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return m.handler
}

func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest : path это шаблон маршрута chi, а не сырой URL
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{"method": method, "path": path, "status": strconv.Itoa(status)}
	m.requestTotal.With(labels).Inc()
	m.requestDuration.With(labels).Observe(duration.Seconds())
}

func (m *MetricsService) RecordCacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *MetricsService) RecordCacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}

func (m *MetricsService) RecordGrant() {
	if m == nil {
		return
	}
	m.grantsTotal.Inc()
}

func (m *MetricsService) RecordPublicLink() {
	if m == nil {
		return
	}
	m.publicLinks.Inc()
}

func (m *MetricsService) RecordAccessDenied(operation string) {
	if m == nil {
		return
	}
	m.accessDenied.WithLabelValues(operation).Inc()
}

func (m *MetricsService) RecordUpload(size int64) {
	if m == nil {
		return
	}
	m.uploadedBytes.Add(float64(size))
}
