package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	AvailabilityChecks *prometheus.CounterVec
	BookingsCreated    *prometheus.CounterVec
	ReservationsTotal  *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"service", "operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),

		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		AvailabilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_checks_total",
			Help: "Availability checks by result",
		}, []string{"service", "result"}),

		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Created house bookings",
		}, []string{"service"}),

		ReservationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reservations_total",
			Help: "Created reservations by kind (table, event, course)",
		}, []string{"service", "kind"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.AvailabilityChecks,
		m.BookingsCreated,
		m.ReservationsTotal,
	)

	return m
}

// Recorder бизнес-метрики, которые пишут usecase и сервисы
// nil-получатель допустим - метрики в этом случае не пишутся
type Recorder struct {
	m       *Metrics
	service string
}

// NewRecorder создает Recorder. m может быть nil, если метрики выключены
func NewRecorder(m *Metrics, service string) *Recorder {
	return &Recorder{m: m, service: service}
}

// AvailabilityChecked отмечает результат проверки доступности
func (r *Recorder) AvailabilityChecked(available bool) {
	if r == nil || r.m == nil {
		return
	}
	result := "unavailable"
	if available {
		result = "available"
	}
	r.m.AvailabilityChecks.WithLabelValues(r.service, result).Inc()
}

// BookingCreated отмечает созданное бронирование дома
func (r *Recorder) BookingCreated() {
	if r == nil || r.m == nil {
		return
	}
	r.m.BookingsCreated.WithLabelValues(r.service).Inc()
}

// ReservationCreated отмечает созданную резервацию (table, event, course)
func (r *Recorder) ReservationCreated(kind string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.ReservationsTotal.WithLabelValues(r.service, kind).Inc()
}
