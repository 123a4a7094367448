package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type Service struct {
	repo    RepositoryInterface
	metrics MetricsRecorder
	logger  zerolog.Logger
}

func NewService(repo RepositoryInterface, metrics MetricsRecorder, logger zerolog.Logger) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
		logger:  logger.With().Str("resource", "doctor").Logger(),
	}
}

func (s *Service) ListDoctors(ctx context.Context) ([]Doctor, error) {
	doctors, err := s.repo.ListDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	s.record(ctx, "list")
	return doctors, nil
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	doctor, err := s.repo.GetDoctor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	s.record(ctx, "get")
	return doctor, nil
}

func (s *Service) ListBySpecialty(ctx context.Context, term string) ([]Doctor, error) {
	doctors, err := s.repo.FindBySpecialty(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, fmt.Errorf("failed to filter doctors: %w", err)
	}
	s.record(ctx, "list_by_specialty")
	s.logger.Debug().Str("specialty", term).Int("matches", len(doctors)).Msg("filtered doctors by specialty")
	return doctors, nil
}

func (s *Service) record(ctx context.Context, op string) {
	if s.metrics != nil {
		s.metrics.RecordDoctorOperation(ctx, op)
	}
}
