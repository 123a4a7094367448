package patient

import "context"

// ServiceInterface defines the contract for patient business logic operations
type ServiceInterface interface {
	CreatePatient(ctx context.Context, req CreatePatientRequest) (*Patient, error)
	ListPatients(ctx context.Context) ([]Patient, error)
	GetPatient(ctx context.Context, id string) (*Patient, error)
	UpdatePatient(ctx context.Context, id string, req UpdatePatientRequest) (*Patient, error)
	DeletePatient(ctx context.Context, id string) (*Patient, error)
}

// MetricsRecorder records patient operation counts.
type MetricsRecorder interface {
	RecordPatientOperation(ctx context.Context, operation string)
}

var _ ServiceInterface = (*Service)(nil)
