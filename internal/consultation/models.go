package consultation

import (
	"time"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"
	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/validation"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

var Statuses = []string{StatusActive, StatusCompleted}

// Consultation is a quick, unscheduled consultation between a patient and a
// doctor.
type Consultation struct {
	store.Meta
	PatientID   string    `json:"patientId"`
	DoctorID    string    `json:"doctorId"`
	PatientName string    `json:"patientName"`
	DoctorName  string    `json:"doctorName"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
}

type CreateConsultationRequest struct {
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
	Notes     string `json:"notes"`
}

// UpdateConsultationRequest carries date as text so zone-less values from
// datetime-local inputs are accepted alongside RFC 3339.
type UpdateConsultationRequest struct {
	Date   *string `json:"date,omitempty"`
	Notes  *string `json:"notes,omitempty"`
	Status *string `json:"status,omitempty"`
}

// Validate checks the fields that have a constrained format.
func (req UpdateConsultationRequest) Validate() error {
	if req.Date != nil {
		if _, err := validation.DateTime("date", *req.Date); err != nil {
			return err
		}
	}
	if req.Status != nil {
		return validation.OneOf("status", *req.Status, Statuses...)
	}
	return nil
}

// Apply merges the supplied fields into c. A date that does not parse is
// ignored; callers run Validate first.
func (req UpdateConsultationRequest) Apply(c *Consultation) {
	if req.Date != nil {
		if date, err := validation.DateTime("date", *req.Date); err == nil {
			c.Date = date
		}
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
}

type ConsultationListResponse struct {
	Consultations []Consultation `json:"consultations"`
	Count         int            `json:"count"`
}
