// Package app builds the stores, services and HTTP handler of the service
// from its configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/config"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/consultation"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/dashboard"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/history"
	httpapi "github.com/WailSalutem-Health-Care/clinic-office-service/internal/http"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/reference"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/seed"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/telemetry"
	"github.com/rs/zerolog"
)

type App struct {
	Handler http.Handler

	publisher messaging.PublisherInterface
	telemetry *telemetry.Provider
	logger    zerolog.Logger
}

// New wires a fresh set of stores, seeds them from the fixture and returns
// the ready-to-serve application.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	a := &App{logger: logger, publisher: messaging.NoopPublisher{}}

	if cfg.TelemetryEnabled {
		provider, err := telemetry.InitProvider(ctx, telemetry.Config{
			ServiceName:      cfg.ServiceName,
			ServiceNamespace: cfg.ServiceNamespace,
			ServiceVersion:   cfg.ServiceVersion,
			Environment:      cfg.Env,
			OTLPEndpoint:     cfg.OTLPEndpoint,
			TracesSampler:    cfg.TracesSampler,
			MetricsInterval:  cfg.MetricsInterval,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		a.telemetry = provider
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	if cfg.EventsEnabled {
		publisher, err := messaging.NewPublisher(cfg.RabbitMQURL, logger)
		if err != nil {
			// Events are best effort; the API keeps working without a broker.
			logger.Warn().Err(err).Msg("event publishing disabled")
		} else {
			a.publisher = publisher
		}
	}

	fixture, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, err
	}

	a.Handler, err = Build(ctx, Deps{
		Fixture:        fixture,
		Publisher:      a.publisher,
		Metrics:        metrics,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		PingMessage:    cfg.PingMessage,
		Now:            time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Deps are the inputs of Build. Publisher and Metrics may be nil.
type Deps struct {
	Fixture        *seed.Fixture
	Publisher      messaging.PublisherInterface
	Metrics        *telemetry.Metrics
	Logger         zerolog.Logger
	AllowedOrigins []string
	PingMessage    string
	// Now anchors the fixture's relative dates.
	Now time.Time
}

// Build creates empty stores, applies the fixture and returns the routed
// handler. Each call yields an independent set of stores.
func Build(ctx context.Context, d Deps) (http.Handler, error) {
	patientRepo := patient.NewRepository()
	doctorRepo := doctor.NewRepository()
	appointmentRepo := appointment.NewRepository()
	historyRepo := history.NewRepository()
	consultationRepo := consultation.NewRepository()

	if d.Fixture != nil {
		err := d.Fixture.Apply(ctx, seed.Targets{
			Patients:      patientRepo,
			Doctors:       doctorRepo,
			Appointments:  appointmentRepo,
			History:       historyRepo,
			Consultations: consultationRepo,
		}, d.Now)
		if err != nil {
			return nil, err
		}
	}
	d.Logger.Info().
		Int("patients", patientRepo.Count(ctx)).
		Int("doctors", doctorRepo.Count(ctx)).
		Int("appointments", appointmentRepo.Count(ctx)).
		Int("history", historyRepo.Count(ctx)).
		Int("consultations", consultationRepo.Count(ctx)).
		Msg("stores seeded")

	resolver := reference.NewResolver(patientRepo, doctorRepo)
	publisher, metrics, logger := d.Publisher, d.Metrics, d.Logger

	handlers := httpapi.Handlers{
		Patients:      patient.NewHandler(patient.NewService(patientRepo, publisher, metrics, logger)),
		Doctors:       doctor.NewHandler(doctor.NewService(doctorRepo, metrics, logger)),
		Appointments:  appointment.NewHandler(appointment.NewService(appointmentRepo, resolver, publisher, metrics, logger)),
		History:       history.NewHandler(history.NewService(historyRepo, resolver, publisher, metrics, logger)),
		Consultations: consultation.NewHandler(consultation.NewService(consultationRepo, resolver, publisher, metrics, logger)),
		Dashboard:     dashboard.NewHandler(dashboard.NewService(patientRepo, doctorRepo, appointmentRepo, historyRepo, consultationRepo)),
	}

	return httpapi.SetupRouter(handlers, httpapi.Options{
		Logger:         logger,
		AllowedOrigins: d.AllowedOrigins,
		PingMessage:    d.PingMessage,
		Metrics:        metrics,
	}), nil
}

// Shutdown closes the event publisher and flushes telemetry.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.publisher.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close publisher: %w", err))
	}
	if a.telemetry != nil {
		if err := a.telemetry.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown telemetry: %w", err))
		}
	}
	return errors.Join(errs...)
}
