package appointment

import (
	"context"
	"errors"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"
)

type Repository struct {
	store *store.Store[Appointment, *Appointment]
}

func NewRepository(opts ...store.Option) *Repository {
	return &Repository{store: store.New[Appointment](opts...)}
}

func (r *Repository) CreateAppointment(ctx context.Context, a Appointment) (*Appointment, error) {
	created := r.store.Append(a)
	return &created, nil
}

func (r *Repository) ListAppointments(ctx context.Context) ([]Appointment, error) {
	return r.store.List(), nil
}

func (r *Repository) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	a, err := r.store.Get(id)
	return wrap(a, err)
}

func (r *Repository) UpdateAppointment(ctx context.Context, id string, req UpdateAppointmentRequest) (*Appointment, error) {
	a, err := r.store.Update(id, req.Apply)
	return wrap(a, err)
}

func (r *Repository) DeleteAppointment(ctx context.Context, id string) (*Appointment, error) {
	a, err := r.store.Delete(id)
	return wrap(a, err)
}

func (r *Repository) Count(ctx context.Context) int {
	return r.store.Len()
}

func wrap(a Appointment, err error) (*Appointment, error) {
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
