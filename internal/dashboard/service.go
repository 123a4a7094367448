// Package dashboard aggregates the resource counters shown on the office
// dashboard.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/consultation"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/validation"
)

type Counter interface {
	Count(ctx context.Context) int
}

type AppointmentLister interface {
	Counter
	ListAppointments(ctx context.Context) ([]appointment.Appointment, error)
}

type ConsultationLister interface {
	Counter
	ListConsultations(ctx context.Context) ([]consultation.Consultation, error)
}

// Summary is the dashboard payload. "Today" is the current UTC calendar day.
type Summary struct {
	Patients                   int `json:"patients"`
	Doctors                    int `json:"doctors"`
	Appointments               int `json:"appointments"`
	History                    int `json:"history"`
	Consultations              int `json:"consultations"`
	ScheduledAppointmentsToday int `json:"scheduledAppointmentsToday"`
	ActiveConsultationsToday   int `json:"activeConsultationsToday"`
}

type Service struct {
	patients      Counter
	doctors       Counter
	appointments  AppointmentLister
	history       Counter
	consultations ConsultationLister
	now           func() time.Time
}

func NewService(patients, doctors Counter, appointments AppointmentLister, history Counter, consultations ConsultationLister) *Service {
	return &Service{
		patients:      patients,
		doctors:       doctors,
		appointments:  appointments,
		history:       history,
		consultations: consultations,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	appointments, err := s.appointments.ListAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	consultations, err := s.consultations.ListConsultations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}

	today := s.now()
	summary := &Summary{
		Patients:      s.patients.Count(ctx),
		Doctors:       s.doctors.Count(ctx),
		Appointments:  len(appointments),
		History:       s.history.Count(ctx),
		Consultations: len(consultations),
	}

	for _, a := range appointments {
		// dateTime is client supplied; unparseable values are skipped.
		at, err := validation.DateTime("dateTime", a.DateTime)
		if err == nil && a.Status == appointment.StatusScheduled && sameDay(at, today) {
			summary.ScheduledAppointmentsToday++
		}
	}
	for _, c := range consultations {
		if c.Status == consultation.StatusActive && sameDay(c.Date, today) {
			summary.ActiveConsultationsToday++
		}
	}

	return summary, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
