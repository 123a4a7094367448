package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/testutil"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/validation"
	"github.com/rs/zerolog"
)

type stubNamer map[string]string

func (s stubNamer) PatientName(ctx context.Context, patientID string) (string, bool) {
	name, ok := s[patientID]
	return name, ok
}

func newTestService(publisher messaging.PublisherInterface) *Service {
	s := NewService(NewRepository(), stubNamer{"1": "John Doe"}, publisher, nil, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestCreateEntry_NameFallbacks(t *testing.T) {
	testCases := []struct {
		name                string
		req                 CreateEntryRequest
		expectedPatientName string
		expectedDoctorName  string
	}{
		{
			name:                "Body values win",
			req:                 CreateEntryRequest{PatientID: "1", PatientName: "Johnny", DoctorName: "Dr. House"},
			expectedPatientName: "Johnny",
			expectedDoctorName:  "Dr. House",
		},
		{
			name:                "Resolved patient name",
			req:                 CreateEntryRequest{PatientID: "1"},
			expectedPatientName: "John Doe",
			expectedDoctorName:  UnknownDoctor,
		},
		{
			name:                "Unknown patient placeholder",
			req:                 CreateEntryRequest{PatientID: "99"},
			expectedPatientName: "Patient 99",
			expectedDoctorName:  UnknownDoctor,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := newTestService(nil)
			req := tc.req
			req.Diagnosis = "Flu"
			req.Treatment = "Rest"
			req.Notes = "Follow up in a week"

			entry, err := service.CreateEntry(context.Background(), req)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if entry.PatientName != tc.expectedPatientName {
				t.Errorf("Expected patient name '%s', got '%s'", tc.expectedPatientName, entry.PatientName)
			}
			if entry.DoctorName != tc.expectedDoctorName {
				t.Errorf("Expected doctor name '%s', got '%s'", tc.expectedDoctorName, entry.DoctorName)
			}
			if !entry.Date.Equal(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)) {
				t.Errorf("Expected date to be set to now, got %v", entry.Date)
			}
		})
	}
}

func TestCreateEntry_MissingFields(t *testing.T) {
	publisher := testutil.NewMockPublisher()
	service := newTestService(publisher)

	_, err := service.CreateEntry(context.Background(), CreateEntryRequest{PatientID: "1", Diagnosis: "Flu"})

	var missing *validation.MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingFieldsError, got %v", err)
	}
	if missing.Error() != "Missing required fields: treatment, notes" {
		t.Errorf("Unexpected message: %s", missing.Error())
	}
	publisher.AssertNoEvents(t)
}

func TestCreateEntry_PublishesEvent(t *testing.T) {
	publisher := testutil.NewMockPublisher()
	service := newTestService(publisher)

	_, err := service.CreateEntry(context.Background(), CreateEntryRequest{
		PatientID: "1", Diagnosis: "Flu", Treatment: "Rest", Notes: "n",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	publisher.AssertEventCount(t, messaging.EventHistoryEntryCreated, 1)
}

func TestListByPatient_PreservesOrder(t *testing.T) {
	ctx := context.Background()
	service := newTestService(nil)

	for _, req := range []CreateEntryRequest{
		{PatientID: "1", Diagnosis: "A", Treatment: "t", Notes: "n"},
		{PatientID: "2", Diagnosis: "B", Treatment: "t", Notes: "n"},
		{PatientID: "1", Diagnosis: "C", Treatment: "t", Notes: "n"},
	} {
		if _, err := service.CreateEntry(ctx, req); err != nil {
			t.Fatalf("Failed to create entry: %v", err)
		}
	}

	entries, err := service.ListByPatient(ctx, "1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(entries) != 2 || entries[0].Diagnosis != "A" || entries[1].Diagnosis != "C" {
		t.Errorf("Unexpected entries: %+v", entries)
	}

	none, _ := service.ListByPatient(ctx, "42")
	if none == nil || len(none) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", none)
	}
}
