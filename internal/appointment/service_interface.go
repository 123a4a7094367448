package appointment

import (
	"context"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/reference"
)

// ServiceInterface defines the contract for appointment business logic operations
type ServiceInterface interface {
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error)
	ListAppointments(ctx context.Context) ([]Appointment, error)
	GetAppointment(ctx context.Context, id string) (*Appointment, error)
	UpdateAppointment(ctx context.Context, id string, req UpdateAppointmentRequest) (*Appointment, error)
	DeleteAppointment(ctx context.Context, id string) (*Appointment, error)
}

// Resolver checks the referenced patient and doctor exist and returns the
// names to copy into the appointment.
type Resolver interface {
	Resolve(ctx context.Context, patientID, doctorID string) (reference.Names, error)
}

type MetricsRecorder interface {
	RecordAppointmentOperation(ctx context.Context, operation string)
}

var _ ServiceInterface = (*Service)(nil)
