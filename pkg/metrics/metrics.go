package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus collectors of the booking service.
// Each instance owns its registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database
	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBWaitCount        prometheus.Gauge

	// Booking
	SlotsGenerated      *prometheus.CounterVec
	AppointmentsCreated prometheus.Counter
	BookingConflicts    *prometheus.CounterVec
	RateLimited         prometheus.Counter
	EmailsSent          *prometheus.CounterVec
}

// New создает и регистрирует все метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query latency",
				ConstLabels: constLabels,
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),
		DBQueryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_query_errors_total",
				Help:        "Total number of failed database queries",
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		SlotsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "availability_slots_generated_total",
				Help:        "Total number of generated slots by availability",
				ConstLabels: constLabels,
			},
			[]string{"available"},
		),
		AppointmentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Total number of created appointments",
			ConstLabels: constLabels,
		}),
		BookingConflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "booking_conflicts_total",
				Help:        "Total number of rejected bookings due to conflicts",
				ConstLabels: constLabels,
			},
			[]string{"stage"},
		),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "rate_limited_requests_total",
			Help:        "Total number of requests rejected by the rate limiter",
			ConstLabels: constLabels,
		}),
		EmailsSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "emails_sent_total",
				Help:        "Total number of notification emails",
				ConstLabels: constLabels,
			},
			[]string{"kind", "status"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.SlotsGenerated,
		m.AppointmentsCreated,
		m.BookingConflicts,
		m.RateLimited,
		m.EmailsSent,
	)

	return m
}

// Handler возвращает http.Handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает registry с метриками сервиса
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Методы ниже безопасны для nil-получателя: метрики могут быть выключены в конфиге

// ObserveSlots учитывает результат генерации слотов
func (m *Metrics) ObserveSlots(available, unavailable int) {
	if m == nil {
		return
	}
	m.SlotsGenerated.WithLabelValues("true").Add(float64(available))
	m.SlotsGenerated.WithLabelValues("false").Add(float64(unavailable))
}

// IncAppointmentsCreated учитывает созданную запись
func (m *Metrics) IncAppointmentsCreated() {
	if m == nil {
		return
	}
	m.AppointmentsCreated.Inc()
}

// IncBookingConflict учитывает отклоненную из-за конфликта запись
// stage: "grid" (слот недоступен при генерации), "validator" (финальная проверка), "storage" (уникальный индекс)
func (m *Metrics) IncBookingConflict(stage string) {
	if m == nil {
		return
	}
	m.BookingConflicts.WithLabelValues(stage).Inc()
}

// IncRateLimited учитывает отклоненный лимитером запрос
func (m *Metrics) IncRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}

// IncEmail учитывает отправку письма
func (m *Metrics) IncEmail(kind string, ok bool) {
	if m == nil {
		return
	}
	status := "success"
	if !ok {
		status = "error"
	}
	m.EmailsSent.WithLabelValues(kind, status).Inc()
}
