package history

import (
	"context"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"
)

// RepositoryInterface defines the contract for clinical history data access.
type RepositoryInterface interface {
	CreateEntry(ctx context.Context, e Entry) (*Entry, error)
	ListEntries(ctx context.Context) ([]Entry, error)
	ListByPatient(ctx context.Context, patientID string) ([]Entry, error)
	Count(ctx context.Context) int
}

var _ RepositoryInterface = (*Repository)(nil)

type Repository struct {
	store *store.Store[Entry, *Entry]
}

func NewRepository(opts ...store.Option) *Repository {
	return &Repository{store: store.New[Entry](opts...)}
}

func (r *Repository) CreateEntry(ctx context.Context, e Entry) (*Entry, error) {
	created := r.store.Append(e)
	return &created, nil
}

func (r *Repository) ListEntries(ctx context.Context) ([]Entry, error) {
	return r.store.List(), nil
}

func (r *Repository) ListByPatient(ctx context.Context, patientID string) ([]Entry, error) {
	return r.store.Filter(func(e Entry) bool {
		return e.PatientID == patientID
	}), nil
}

func (r *Repository) Count(ctx context.Context) int {
	return r.store.Len()
}
