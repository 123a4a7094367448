package history

import (
	"context"
	"fmt"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/validation"
	"github.com/rs/zerolog"
)

// ServiceInterface defines the contract for clinical history operations.
type ServiceInterface interface {
	ListEntries(ctx context.Context) ([]Entry, error)
	ListByPatient(ctx context.Context, patientID string) ([]Entry, error)
	CreateEntry(ctx context.Context, req CreateEntryRequest) (*Entry, error)
}

// PatientNamer looks up the display name of a patient, if the patient exists.
type PatientNamer interface {
	PatientName(ctx context.Context, patientID string) (string, bool)
}

type MetricsRecorder interface {
	RecordHistoryOperation(ctx context.Context, operation string)
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	repo      RepositoryInterface
	names     PatientNamer
	publisher messaging.PublisherInterface
	metrics   MetricsRecorder
	logger    zerolog.Logger
	now       func() time.Time
}

func NewService(repo RepositoryInterface, names PatientNamer, publisher messaging.PublisherInterface, metrics MetricsRecorder, logger zerolog.Logger) *Service {
	if publisher == nil {
		publisher = messaging.NoopPublisher{}
	}
	return &Service{
		repo:      repo,
		names:     names,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger.With().Str("resource", "history").Logger(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) ListEntries(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	s.record(ctx, "list")
	return entries, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]Entry, error) {
	entries, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history for patient %s: %w", patientID, err)
	}
	s.record(ctx, "list_by_patient")
	return entries, nil
}

// CreateEntry does not require the patient to exist. The patient name falls
// back to the stored patient's name and then to "Patient {id}".
func (s *Service) CreateEntry(ctx context.Context, req CreateEntryRequest) (*Entry, error) {
	if err := validation.Required(
		validation.Field{Name: "patientId", Value: req.PatientID},
		validation.Field{Name: "diagnosis", Value: req.Diagnosis},
		validation.Field{Name: "treatment", Value: req.Treatment},
		validation.Field{Name: "notes", Value: req.Notes},
	); err != nil {
		return nil, err
	}

	entry, err := s.repo.CreateEntry(ctx, Entry{
		PatientID:   req.PatientID,
		PatientName: s.patientName(ctx, req),
		Date:        s.now(),
		Diagnosis:   req.Diagnosis,
		Treatment:   req.Treatment,
		Notes:       req.Notes,
		DoctorName:  orDefault(req.DoctorName, UnknownDoctor),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create history entry: %w", err)
	}

	s.record(ctx, "create")
	evt := messaging.HistoryEntryCreatedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventHistoryEntryCreated),
		Data: messaging.HistoryEntryData{
			EntryID:   entry.ID,
			PatientID: entry.PatientID,
			Diagnosis: entry.Diagnosis,
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventHistoryEntryCreated, evt); err != nil {
		s.logger.Warn().Err(err).Str("routing_key", messaging.EventHistoryEntryCreated).Msg("failed to publish event")
	}
	s.logger.Info().Str("entry_id", entry.ID).Str("patient_id", entry.PatientID).Msg("history entry created")

	return entry, nil
}

func (s *Service) patientName(ctx context.Context, req CreateEntryRequest) string {
	if req.PatientName != "" {
		return req.PatientName
	}
	if s.names != nil {
		if name, ok := s.names.PatientName(ctx, req.PatientID); ok {
			return name
		}
	}
	return "Patient " + req.PatientID
}

func (s *Service) record(ctx context.Context, op string) {
	if s.metrics != nil {
		s.metrics.RecordHistoryOperation(ctx, op)
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
