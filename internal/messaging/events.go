package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Event routing keys
const (
	EventPatientCreated = "patient.created"
	EventPatientUpdated = "patient.updated"
	EventPatientDeleted = "patient.deleted"

	EventAppointmentCreated = "appointment.created"
	EventAppointmentUpdated = "appointment.updated"
	EventAppointmentDeleted = "appointment.deleted"

	EventHistoryEntryCreated = "history.created"

	EventConsultationCreated = "consultation.created"
	EventConsultationUpdated = "consultation.updated"
	EventConsultationDeleted = "consultation.deleted"
)

// ServiceName is stamped on every event.
const ServiceName = "clinic-office-service"

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// PatientEvent is published for patient create, update and delete.
type PatientEvent struct {
	BaseEvent
	Data PatientEventData `json:"data"`
}

type PatientEventData struct {
	PatientID string `json:"patient_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	MedicalID string `json:"medical_id,omitempty"`
}

// AppointmentEvent is published for appointment create, update and delete.
type AppointmentEvent struct {
	BaseEvent
	Data AppointmentEventData `json:"data"`
}

type AppointmentEventData struct {
	AppointmentID string `json:"appointment_id"`
	PatientID     string `json:"patient_id"`
	DoctorID      string `json:"doctor_id"`
	DateTime      string `json:"date_time"`
	Status        string `json:"status"`
}

// HistoryEntryCreatedEvent is published when a clinical history entry is added.
type HistoryEntryCreatedEvent struct {
	BaseEvent
	Data HistoryEntryData `json:"data"`
}

type HistoryEntryData struct {
	EntryID   string `json:"entry_id"`
	PatientID string `json:"patient_id"`
	Diagnosis string `json:"diagnosis"`
}

// ConsultationEvent is published for quick consultation create, update and delete.
type ConsultationEvent struct {
	BaseEvent
	Data ConsultationEventData `json:"data"`
}

type ConsultationEventData struct {
	ConsultationID string `json:"consultation_id"`
	PatientID      string `json:"patient_id"`
	DoctorID       string `json:"doctor_id"`
	Status         string `json:"status"`
}

// NewBaseEvent creates a base event with common fields
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ServiceName: ServiceName,
	}
}
