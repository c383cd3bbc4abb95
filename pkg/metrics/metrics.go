// Package metrics содержит Prometheus метрики сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	dbQueryDuration  *prometheus.HistogramVec
	dbConnections    *prometheus.GaugeVec
	validations      *prometheus.CounterVec
	validationErrors *prometheus.CounterVec
	bookingsCreated  *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
}

// New регистрирует метрики в стандартном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation.",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: constLabels,
		}, []string{"operation", "success"}),
		dbConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state.",
			ConstLabels: constLabels,
		}, []string{"state"}),
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_validations_total",
			Help:        "Booking validations by outcome.",
			ConstLabels: constLabels,
		}, []string{"package_type", "outcome"}),
		validationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_validation_errors_total",
			Help:        "Business rule violations by code.",
			ConstLabels: constLabels,
		}, []string{"code"}),
		bookingsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings persisted by package type.",
			ConstLabels: constLabels,
		}, []string{"package_type", "last_minute"}),
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_lookups_total",
			Help:        "Cache lookups by cache and result.",
			ConstLabels: constLabels,
		}, []string{"cache", "result"}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation, strconv.FormatBool(err == nil)).Observe(duration.Seconds())
}

// SetDBStats обновляет состояние пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	m.dbConnections.WithLabelValues("wait_count").Set(float64(stats.WaitCount))
}

// IncValidation фиксирует результат проверки бронирования и коды нарушений
func (m *Metrics) IncValidation(packageType string, bookable bool, codes []string) {
	if m == nil {
		return
	}
	outcome := "rejected"
	if bookable {
		outcome = "bookable"
	}
	m.validations.WithLabelValues(packageType, outcome).Inc()
	for _, code := range codes {
		m.validationErrors.WithLabelValues(code).Inc()
	}
}

// IncBookingCreated фиксирует созданное бронирование
func (m *Metrics) IncBookingCreated(packageType string, lastMinute bool) {
	if m == nil {
		return
	}
	m.bookingsCreated.WithLabelValues(packageType, strconv.FormatBool(lastMinute)).Inc()
}

// IncCacheLookup фиксирует попадание или промах кэша
func (m *Metrics) IncCacheLookup(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(cache, result).Inc()
}
