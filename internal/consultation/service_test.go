package consultation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/reference"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/testutil"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/validation"
	"github.com/rs/zerolog"
)

var fixedNow = time.Date(2025, 4, 10, 14, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, publisher messaging.PublisherInterface) (*Service, *Repository) {
	t.Helper()
	ctx := context.Background()

	patients := patient.NewRepository()
	if _, err := patients.CreatePatient(ctx, patient.Patient{FirstName: "Jane", LastName: "Smith"}); err != nil {
		t.Fatalf("Failed to seed patient: %v", err)
	}
	doctors := doctor.NewRepository()
	if _, err := doctors.CreateDoctor(ctx, doctor.Doctor{FirstName: "Michael", LastName: "Brown"}); err != nil {
		t.Fatalf("Failed to seed doctor: %v", err)
	}

	repo := NewRepository()
	s := NewService(repo, reference.NewResolver(patients, doctors), publisher, nil, zerolog.Nop())
	s.now = func() time.Time { return fixedNow }
	return s, repo
}

func TestCreateConsultation_Success(t *testing.T) {
	publisher := testutil.NewMockPublisher()
	service, _ := newTestService(t, publisher)

	c, err := service.CreateConsultation(context.Background(), CreateConsultationRequest{
		PatientID: "1",
		DoctorID:  "1",
		Notes:     "Quick check-in regarding symptoms",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if c.Status != StatusActive {
		t.Errorf("Expected status '%s', got '%s'", StatusActive, c.Status)
	}
	if c.PatientName != "Jane Smith" || c.DoctorName != "Dr. Brown" {
		t.Errorf("Unexpected names: '%s' / '%s'", c.PatientName, c.DoctorName)
	}
	if !c.Date.Equal(fixedNow) {
		t.Errorf("Expected date %v, got %v", fixedNow, c.Date)
	}
	publisher.AssertEventCount(t, messaging.EventConsultationCreated, 1)
}

func TestCreateConsultation_UnknownDoctor(t *testing.T) {
	publisher := testutil.NewMockPublisher()
	service, repo := newTestService(t, publisher)

	_, err := service.CreateConsultation(context.Background(), CreateConsultationRequest{
		PatientID: "1",
		DoctorID:  "99",
		Notes:     "n",
	})
	if !errors.Is(err, reference.ErrReferenceNotFound) {
		t.Fatalf("Expected ErrReferenceNotFound, got %v", err)
	}
	if repo.Count(context.Background()) != 0 {
		t.Error("Expected nothing to be stored")
	}
	publisher.AssertNoEvents(t)
}

func TestCreateConsultation_MissingFields(t *testing.T) {
	service, _ := newTestService(t, nil)

	_, err := service.CreateConsultation(context.Background(), CreateConsultationRequest{})

	var missing *validation.MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingFieldsError, got %v", err)
	}
	if len(missing.Fields) != 3 {
		t.Errorf("Expected 3 missing fields, got %v", missing.Fields)
	}
}

func TestUpdateConsultation(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t, nil)

	created, _ := service.CreateConsultation(ctx, CreateConsultationRequest{PatientID: "1", DoctorID: "1", Notes: "n"})

	status := StatusCompleted
	notes := "Resolved"
	updated, err := service.UpdateConsultation(ctx, created.ID, UpdateConsultationRequest{Status: &status, Notes: &notes})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Status != StatusCompleted || updated.Notes != "Resolved" {
		t.Errorf("Unexpected update result: %+v", updated)
	}
	if updated.PatientName != created.PatientName || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Expected non-updatable fields unchanged")
	}

	bad := "cancelled"
	if _, err := service.UpdateConsultation(ctx, created.ID, UpdateConsultationRequest{Status: &bad}); err == nil {
		t.Error("Expected error for status outside the consultation enum")
	}

	if _, err := service.UpdateConsultation(ctx, "42", UpdateConsultationRequest{Notes: &notes}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdateConsultation_Date(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t, nil)

	created, _ := service.CreateConsultation(ctx, CreateConsultationRequest{PatientID: "1", DoctorID: "1", Notes: "n"})

	local := "2025-02-20T16:30"
	updated, err := service.UpdateConsultation(ctx, created.ID, UpdateConsultationRequest{Date: &local})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := time.Date(2025, 2, 20, 16, 30, 0, 0, time.UTC)
	if !updated.Date.Equal(want) {
		t.Errorf("Expected date %v, got %v", want, updated.Date)
	}

	bad := "next week"
	_, err = service.UpdateConsultation(ctx, created.ID, UpdateConsultationRequest{Date: &bad})
	var invalid *validation.InvalidValueError
	if !errors.As(err, &invalid) || invalid.Field != "date" {
		t.Fatalf("Expected InvalidValueError for date, got %v", err)
	}
	stored, _ := service.GetConsultation(ctx, created.ID)
	if !stored.Date.Equal(want) {
		t.Errorf("Expected date unchanged after rejected update, got %v", stored.Date)
	}
}

func TestUpdateConsultation_UnknownIDBeforeValidation(t *testing.T) {
	publisher := testutil.NewMockPublisher()
	service, _ := newTestService(t, publisher)

	bad := "paused"
	_, err := service.UpdateConsultation(context.Background(), "999", UpdateConsultationRequest{Status: &bad})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	publisher.AssertNoEvents(t)
}

func TestDeleteConsultation(t *testing.T) {
	ctx := context.Background()
	publisher := testutil.NewMockPublisher()
	service, _ := newTestService(t, publisher)

	created, _ := service.CreateConsultation(ctx, CreateConsultationRequest{PatientID: "1", DoctorID: "1", Notes: "n"})

	removed, err := service.DeleteConsultation(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if removed.ID != created.ID {
		t.Errorf("Expected removed '%s', got '%s'", created.ID, removed.ID)
	}
	if _, err := service.GetConsultation(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	publisher.AssertEventCount(t, messaging.EventConsultationDeleted, 1)
}
