package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/consultation"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/history"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/patient"
)

func TestSummary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 20, 15, 0, 0, 0, time.UTC)

	patients := patient.NewRepository()
	patients.CreatePatient(ctx, patient.Patient{FirstName: "A"})
	patients.CreatePatient(ctx, patient.Patient{FirstName: "B"})

	doctors := doctor.NewRepository()
	doctors.CreateDoctor(ctx, doctor.Doctor{LastName: "Wilson"})

	appointments := appointment.NewRepository()
	appointments.CreateAppointment(ctx, appointment.Appointment{DateTime: "2025-02-20T09:00:00Z", Status: appointment.StatusScheduled})
	appointments.CreateAppointment(ctx, appointment.Appointment{DateTime: "2025-02-20T10:00:00Z", Status: appointment.StatusCancelled})
	appointments.CreateAppointment(ctx, appointment.Appointment{DateTime: "2025-02-21T09:00:00Z", Status: appointment.StatusScheduled})
	appointments.CreateAppointment(ctx, appointment.Appointment{DateTime: "tomorrow", Status: appointment.StatusScheduled})
	appointments.CreateAppointment(ctx, appointment.Appointment{DateTime: "2025-02-20T16:30", Status: appointment.StatusScheduled})
	appointments.CreateAppointment(ctx, appointment.Appointment{DateTime: "2025-02-20T08:15:00", Status: appointment.StatusScheduled})
	appointments.CreateAppointment(ctx, appointment.Appointment{DateTime: "2025-02-19T23:59", Status: appointment.StatusScheduled})

	entries := history.NewRepository()

	consultations := consultation.NewRepository()
	consultations.CreateConsultation(ctx, consultation.Consultation{Date: now.Add(-time.Hour), Status: consultation.StatusActive})
	consultations.CreateConsultation(ctx, consultation.Consultation{Date: now.Add(-2 * time.Hour), Status: consultation.StatusCompleted})
	consultations.CreateConsultation(ctx, consultation.Consultation{Date: now.Add(-24 * time.Hour), Status: consultation.StatusActive})

	service := NewService(patients, doctors, appointments, entries, consultations)
	service.now = func() time.Time { return now }

	handler := NewHandler(service)
	rr := httptest.NewRecorder()
	handler.GetSummary(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var got Summary
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	expected := Summary{
		Patients:                   2,
		Doctors:                    1,
		Appointments:               7,
		History:                    0,
		Consultations:              3,
		ScheduledAppointmentsToday: 3,
		ActiveConsultationsToday:   1,
	}
	if got != expected {
		t.Errorf("Unexpected summary.\nwant %+v\ngot  %+v", expected, got)
	}
}
