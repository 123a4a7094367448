package patient

import (
	"context"
	"fmt"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/validation"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("github.com/WailSalutem-Health-Care/clinic-office-service/patient")

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
	metrics   MetricsRecorder
	logger    zerolog.Logger
}

// NewService wires the patient service. publisher and metrics may be nil.
func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface, metrics MetricsRecorder, logger zerolog.Logger) *Service {
	if publisher == nil {
		publisher = messaging.NoopPublisher{}
	}
	return &Service{
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger.With().Str("resource", "patient").Logger(),
	}
}

func (s *Service) CreatePatient(ctx context.Context, req CreatePatientRequest) (*Patient, error) {
	ctx, span := tracer.Start(ctx, "patient.Create")
	defer span.End()

	if err := validation.Required(
		validation.Field{Name: "firstName", Value: req.FirstName},
		validation.Field{Name: "lastName", Value: req.LastName},
		validation.Field{Name: "email", Value: req.Email},
		validation.Field{Name: "phone", Value: req.Phone},
	); err != nil {
		return nil, err
	}

	patient, err := s.repo.CreatePatient(ctx, Patient{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Address:     req.Address,
		MedicalID:   req.MedicalID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	span.SetAttributes(attribute.String("patient.id", patient.ID))

	s.record(ctx, "create")
	s.publish(ctx, messaging.EventPatientCreated, patient)
	s.logger.Info().Str("patient_id", patient.ID).Msg("patient created")

	return patient, nil
}

func (s *Service) ListPatients(ctx context.Context) ([]Patient, error) {
	patients, err := s.repo.ListPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	s.record(ctx, "list")
	return patients, nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	patient, err := s.repo.GetPatient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	s.record(ctx, "get")
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id string, req UpdatePatientRequest) (*Patient, error) {
	ctx, span := tracer.Start(ctx, "patient.Update")
	defer span.End()
	span.SetAttributes(attribute.String("patient.id", id))

	patient, err := s.repo.UpdatePatient(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	s.record(ctx, "update")
	s.publish(ctx, messaging.EventPatientUpdated, patient)
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id string) (*Patient, error) {
	ctx, span := tracer.Start(ctx, "patient.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("patient.id", id))

	patient, err := s.repo.DeletePatient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete patient: %w", err)
	}

	s.record(ctx, "delete")
	s.publish(ctx, messaging.EventPatientDeleted, patient)
	s.logger.Info().Str("patient_id", id).Msg("patient deleted")
	return patient, nil
}

func (s *Service) record(ctx context.Context, op string) {
	if s.metrics != nil {
		s.metrics.RecordPatientOperation(ctx, op)
	}
}

// publish never fails the request: the store has already changed.
func (s *Service) publish(ctx context.Context, routingKey string, p *Patient) {
	evt := messaging.PatientEvent{
		BaseEvent: messaging.NewBaseEvent(routingKey),
		Data: messaging.PatientEventData{
			PatientID: p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			MedicalID: p.MedicalID,
		},
	}
	if err := s.publisher.Publish(ctx, routingKey, evt); err != nil {
		s.logger.Warn().Err(err).Str("routing_key", routingKey).Msg("failed to publish event")
	}
}
