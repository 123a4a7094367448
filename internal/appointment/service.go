package appointment

import (
	"context"
	"fmt"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/validation"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("github.com/WailSalutem-Health-Care/clinic-office-service/appointment")

type Service struct {
	repo      RepositoryInterface
	resolver  Resolver
	publisher messaging.PublisherInterface
	metrics   MetricsRecorder
	logger    zerolog.Logger
}

func NewService(repo RepositoryInterface, resolver Resolver, publisher messaging.PublisherInterface, metrics MetricsRecorder, logger zerolog.Logger) *Service {
	if publisher == nil {
		publisher = messaging.NoopPublisher{}
	}
	return &Service{
		repo:      repo,
		resolver:  resolver,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger.With().Str("resource", "appointment").Logger(),
	}
}

func (s *Service) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error) {
	ctx, span := tracer.Start(ctx, "appointment.Create")
	defer span.End()

	if err := validation.Required(
		validation.Field{Name: "patientId", Value: req.PatientID},
		validation.Field{Name: "doctorId", Value: req.DoctorID},
		validation.Field{Name: "dateTime", Value: req.DateTime},
		validation.Field{Name: "reason", Value: req.Reason},
	); err != nil {
		return nil, err
	}

	names, err := s.resolver.Resolve(ctx, req.PatientID, req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve appointment references: %w", err)
	}

	appointment, err := s.repo.CreateAppointment(ctx, Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		PatientName: names.PatientName,
		DoctorName:  names.DoctorName,
		DateTime:    req.DateTime,
		Reason:      req.Reason,
		Status:      StatusScheduled,
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	span.SetAttributes(
		attribute.String("appointment.id", appointment.ID),
		attribute.String("patient.id", appointment.PatientID),
		attribute.String("doctor.id", appointment.DoctorID),
	)

	s.record(ctx, "create")
	s.publish(ctx, messaging.EventAppointmentCreated, appointment)
	s.logger.Info().
		Str("appointment_id", appointment.ID).
		Str("patient_id", appointment.PatientID).
		Str("doctor_id", appointment.DoctorID).
		Msg("appointment scheduled")

	return appointment, nil
}

func (s *Service) ListAppointments(ctx context.Context) ([]Appointment, error) {
	appointments, err := s.repo.ListAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	s.record(ctx, "list")
	return appointments, nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	appointment, err := s.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	s.record(ctx, "get")
	return appointment, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id string, req UpdateAppointmentRequest) (*Appointment, error) {
	ctx, span := tracer.Start(ctx, "appointment.Update")
	defer span.End()
	span.SetAttributes(attribute.String("appointment.id", id))

	// An unknown id is reported before a malformed body.
	if _, err := s.repo.GetAppointment(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	if req.Status != nil {
		if err := validation.OneOf("status", *req.Status, Statuses...); err != nil {
			return nil, err
		}
	}

	appointment, err := s.repo.UpdateAppointment(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	s.record(ctx, "update")
	s.publish(ctx, messaging.EventAppointmentUpdated, appointment)
	return appointment, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) (*Appointment, error) {
	ctx, span := tracer.Start(ctx, "appointment.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("appointment.id", id))

	appointment, err := s.repo.DeleteAppointment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete appointment: %w", err)
	}

	s.record(ctx, "delete")
	s.publish(ctx, messaging.EventAppointmentDeleted, appointment)
	s.logger.Info().Str("appointment_id", id).Msg("appointment deleted")
	return appointment, nil
}

func (s *Service) record(ctx context.Context, op string) {
	if s.metrics != nil {
		s.metrics.RecordAppointmentOperation(ctx, op)
	}
}

func (s *Service) publish(ctx context.Context, routingKey string, a *Appointment) {
	evt := messaging.AppointmentEvent{
		BaseEvent: messaging.NewBaseEvent(routingKey),
		Data: messaging.AppointmentEventData{
			AppointmentID: a.ID,
			PatientID:     a.PatientID,
			DoctorID:      a.DoctorID,
			DateTime:      a.DateTime,
			Status:        a.Status,
		},
	}
	if err := s.publisher.Publish(ctx, routingKey, evt); err != nil {
		s.logger.Warn().Err(err).Str("routing_key", routingKey).Msg("failed to publish event")
	}
}
