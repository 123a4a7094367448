package doctor

import (
	"context"
	"errors"
	"strings"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"
)

type Repository struct {
	store *store.Store[Doctor, *Doctor]
}

func NewRepository(opts ...store.Option) *Repository {
	return &Repository{store: store.New[Doctor](opts...)}
}

// CreateDoctor is used by seeding only; the API exposes no write route.
func (r *Repository) CreateDoctor(ctx context.Context, d Doctor) (*Doctor, error) {
	created := r.store.Append(d)
	return &created, nil
}

func (r *Repository) ListDoctors(ctx context.Context) ([]Doctor, error) {
	return r.store.List(), nil
}

func (r *Repository) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	d, err := r.store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindBySpecialty matches term as a case-insensitive substring of the
// specialty. An empty term matches every doctor.
func (r *Repository) FindBySpecialty(ctx context.Context, term string) ([]Doctor, error) {
	term = strings.ToLower(term)
	return r.store.Filter(func(d Doctor) bool {
		return strings.Contains(strings.ToLower(d.Specialty), term)
	}), nil
}

func (r *Repository) Count(ctx context.Context) int {
	return r.store.Len()
}
