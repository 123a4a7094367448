package doctor

import "context"

// RepositoryInterface defines the contract for doctor data access
type RepositoryInterface interface {
	CreateDoctor(ctx context.Context, d Doctor) (*Doctor, error)
	ListDoctors(ctx context.Context) ([]Doctor, error)
	GetDoctor(ctx context.Context, id string) (*Doctor, error)
	FindBySpecialty(ctx context.Context, term string) ([]Doctor, error)
	Count(ctx context.Context) int
}

var _ RepositoryInterface = (*Repository)(nil)
