package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/WailSalutem-Health-Care/clinic-office-service"

// Metrics holds all custom metrics for the service
type Metrics struct {
	HTTPRequestsTotal metric.Int64Counter
	HTTPDurationMs    metric.Float64Histogram

	PatientTotal      metric.Int64Counter
	DoctorTotal       metric.Int64Counter
	AppointmentTotal  metric.Int64Counter
	HistoryTotal      metric.Int64Counter
	ConsultationTotal metric.Int64Counter
}

// InitMetrics creates the instruments on the global meter provider.
func InitMetrics() (*Metrics, error) {
	return NewMetrics(otel.Meter(instrumentationName))
}

// NewMetrics creates the instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	httpRequestsTotal, err := meter.Int64Counter(
		"http_server_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	httpDurationMs, err := meter.Float64Histogram(
		"http_server_duration_milliseconds",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		HTTPRequestsTotal: httpRequestsTotal,
		HTTPDurationMs:    httpDurationMs,
	}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&m.PatientTotal, "patient_total", "Total number of patient operations"},
		{&m.DoctorTotal, "doctor_total", "Total number of doctor operations"},
		{&m.AppointmentTotal, "appointment_total", "Total number of appointment operations"},
		{&m.HistoryTotal, "history_total", "Total number of clinical history operations"},
		{&m.ConsultationTotal, "consultation_total", "Total number of quick consultation operations"},
	}
	for _, c := range counters {
		counter, err := meter.Int64Counter(c.name,
			metric.WithDescription(c.desc),
			metric.WithUnit("{operation}"),
		)
		if err != nil {
			return nil, err
		}
		*c.dst = counter
	}

	return m, nil
}

// RecordHTTPRequest records an HTTP request metric. All Record methods are
// no-ops on a nil *Metrics.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("http_method", method),
		attribute.String("http_route", route),
		attribute.Int("http_status_code", statusCode),
	)

	m.HTTPRequestsTotal.Add(ctx, 1, attrs)
	m.HTTPDurationMs.Record(ctx, durationMs, attrs)
}

func operation(op string) metric.AddOption {
	return metric.WithAttributes(attribute.String("operation", op))
}

func (m *Metrics) RecordPatientOperation(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.PatientTotal.Add(ctx, 1, operation(op))
}

func (m *Metrics) RecordDoctorOperation(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.DoctorTotal.Add(ctx, 1, operation(op))
}

func (m *Metrics) RecordAppointmentOperation(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.AppointmentTotal.Add(ctx, 1, operation(op))
}

func (m *Metrics) RecordHistoryOperation(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.HistoryTotal.Add(ctx, 1, operation(op))
}

func (m *Metrics) RecordConsultationOperation(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.ConsultationTotal.Add(ctx, 1, operation(op))
}
