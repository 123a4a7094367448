package appointment

import "context"

type RepositoryInterface interface {
	CreateAppointment(ctx context.Context, a Appointment) (*Appointment, error)
	ListAppointments(ctx context.Context) ([]Appointment, error)
	GetAppointment(ctx context.Context, id string) (*Appointment, error)
	UpdateAppointment(ctx context.Context, id string, req UpdateAppointmentRequest) (*Appointment, error)
	DeleteAppointment(ctx context.Context, id string) (*Appointment, error)
	Count(ctx context.Context) int
}

var _ RepositoryInterface = (*Repository)(nil)
