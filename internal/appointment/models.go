package appointment

import "github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Statuses lists every accepted appointment status.
var Statuses = []string{StatusScheduled, StatusCompleted, StatusCancelled}

// Appointment is a scheduled visit. PatientName and DoctorName are copied
// from the referenced records when the appointment is created.
type Appointment struct {
	store.Meta
	PatientID   string `json:"patientId"`
	DoctorID    string `json:"doctorId"`
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
	DateTime    string `json:"dateTime"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
}

type CreateAppointmentRequest struct {
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
	DateTime  string `json:"dateTime"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

// UpdateAppointmentRequest carries the mutable fields of an appointment.
// References and denormalized names are fixed at creation.
type UpdateAppointmentRequest struct {
	DateTime *string `json:"dateTime,omitempty"`
	Reason   *string `json:"reason,omitempty"`
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (req UpdateAppointmentRequest) Apply(a *Appointment) {
	if req.DateTime != nil {
		a.DateTime = *req.DateTime
	}
	if req.Reason != nil {
		a.Reason = *req.Reason
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}
}

type AppointmentListResponse struct {
	Appointments []Appointment `json:"appointments"`
	Count        int           `json:"count"`
}
