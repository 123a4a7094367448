package doctor

import "context"

// ServiceInterface defines the contract for doctor business logic operations
type ServiceInterface interface {
	ListDoctors(ctx context.Context) ([]Doctor, error)
	GetDoctor(ctx context.Context, id string) (*Doctor, error)
	ListBySpecialty(ctx context.Context, term string) ([]Doctor, error)
}

type MetricsRecorder interface {
	RecordDoctorOperation(ctx context.Context, operation string)
}

var _ ServiceInterface = (*Service)(nil)
