package patient

import (
	"context"
	"errors"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"
)

// Repository keeps patients in an in-memory store.
type Repository struct {
	store *store.Store[Patient, *Patient]
}

func NewRepository(opts ...store.Option) *Repository {
	return &Repository{store: store.New[Patient](opts...)}
}

func (r *Repository) CreatePatient(ctx context.Context, p Patient) (*Patient, error) {
	created := r.store.Append(p)
	return &created, nil
}

func (r *Repository) ListPatients(ctx context.Context) ([]Patient, error) {
	return r.store.List(), nil
}

func (r *Repository) GetPatient(ctx context.Context, id string) (*Patient, error) {
	p, err := r.store.Get(id)
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *Repository) UpdatePatient(ctx context.Context, id string, req UpdatePatientRequest) (*Patient, error) {
	p, err := r.store.Update(id, req.Apply)
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *Repository) DeletePatient(ctx context.Context, id string) (*Patient, error) {
	p, err := r.store.Delete(id)
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *Repository) Count(ctx context.Context) int {
	return r.store.Len()
}

func translate(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
