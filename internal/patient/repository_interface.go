package patient

import "context"

// RepositoryInterface defines the contract for patient data access
type RepositoryInterface interface {
	CreatePatient(ctx context.Context, p Patient) (*Patient, error)
	ListPatients(ctx context.Context) ([]Patient, error)
	GetPatient(ctx context.Context, id string) (*Patient, error)
	UpdatePatient(ctx context.Context, id string, req UpdatePatientRequest) (*Patient, error)
	DeletePatient(ctx context.Context, id string) (*Patient, error)
	Count(ctx context.Context) int
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
