package consultation

import (
	"context"
	"fmt"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/reference"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/validation"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("github.com/WailSalutem-Health-Care/clinic-office-service/consultation")

type ServiceInterface interface {
	CreateConsultation(ctx context.Context, req CreateConsultationRequest) (*Consultation, error)
	ListConsultations(ctx context.Context) ([]Consultation, error)
	GetConsultation(ctx context.Context, id string) (*Consultation, error)
	UpdateConsultation(ctx context.Context, id string, req UpdateConsultationRequest) (*Consultation, error)
	DeleteConsultation(ctx context.Context, id string) (*Consultation, error)
}

type Resolver interface {
	Resolve(ctx context.Context, patientID, doctorID string) (reference.Names, error)
}

type MetricsRecorder interface {
	RecordConsultationOperation(ctx context.Context, operation string)
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	repo      RepositoryInterface
	resolver  Resolver
	publisher messaging.PublisherInterface
	metrics   MetricsRecorder
	logger    zerolog.Logger
	now       func() time.Time
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
		logger:    logger.With().Str("resource", "consultation").Logger(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) CreateConsultation(ctx context.Context, req CreateConsultationRequest) (*Consultation, error) {
	ctx, span := tracer.Start(ctx, "consultation.Create")
	defer span.End()

	if err := validation.Required(
		validation.Field{Name: "patientId", Value: req.PatientID},
		validation.Field{Name: "doctorId", Value: req.DoctorID},
		validation.Field{Name: "notes", Value: req.Notes},
	); err != nil {
		return nil, err
	}

	names, err := s.resolver.Resolve(ctx, req.PatientID, req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve consultation references: %w", err)
	}

	consultation, err := s.repo.CreateConsultation(ctx, Consultation{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		PatientName: names.PatientName,
		DoctorName:  names.DoctorName,
		Date:        s.now(),
		Notes:       req.Notes,
		Status:      StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}
	span.SetAttributes(attribute.String("consultation.id", consultation.ID))

	s.record(ctx, "create")
	s.publish(ctx, messaging.EventConsultationCreated, consultation)
	s.logger.Info().
		Str("consultation_id", consultation.ID).
		Str("patient_id", consultation.PatientID).
		Msg("consultation started")

	return consultation, nil
}

func (s *Service) ListConsultations(ctx context.Context) ([]Consultation, error) {
	consultations, err := s.repo.ListConsultations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	s.record(ctx, "list")
	return consultations, nil
}

func (s *Service) GetConsultation(ctx context.Context, id string) (*Consultation, error) {
	consultation, err := s.repo.GetConsultation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}
	s.record(ctx, "get")
	return consultation, nil
}

func (s *Service) UpdateConsultation(ctx context.Context, id string, req UpdateConsultationRequest) (*Consultation, error) {
	ctx, span := tracer.Start(ctx, "consultation.Update")
	defer span.End()
	span.SetAttributes(attribute.String("consultation.id", id))

	// An unknown id is reported before a malformed body.
	if _, err := s.repo.GetConsultation(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to update consultation: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	consultation, err := s.repo.UpdateConsultation(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update consultation: %w", err)
	}

	s.record(ctx, "update")
	s.publish(ctx, messaging.EventConsultationUpdated, consultation)
	return consultation, nil
}

func (s *Service) DeleteConsultation(ctx context.Context, id string) (*Consultation, error) {
	ctx, span := tracer.Start(ctx, "consultation.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("consultation.id", id))

	consultation, err := s.repo.DeleteConsultation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete consultation: %w", err)
	}

	s.record(ctx, "delete")
	s.publish(ctx, messaging.EventConsultationDeleted, consultation)
	return consultation, nil
}

func (s *Service) record(ctx context.Context, op string) {
	if s.metrics != nil {
		s.metrics.RecordConsultationOperation(ctx, op)
	}
}

func (s *Service) publish(ctx context.Context, routingKey string, c *Consultation) {
	evt := messaging.ConsultationEvent{
		BaseEvent: messaging.NewBaseEvent(routingKey),
		Data: messaging.ConsultationEventData{
			ConsultationID: c.ID,
			PatientID:      c.PatientID,
			DoctorID:       c.DoctorID,
			Status:         c.Status,
		},
	}
	if err := s.publisher.Publish(ctx, routingKey, evt); err != nil {
		s.logger.Warn().Err(err).Str("routing_key", routingKey).Msg("failed to publish event")
	}
}
