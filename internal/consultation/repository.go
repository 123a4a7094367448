package consultation

import (
	"context"
	"errors"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"
)

type RepositoryInterface interface {
	CreateConsultation(ctx context.Context, c Consultation) (*Consultation, error)
	ListConsultations(ctx context.Context) ([]Consultation, error)
	GetConsultation(ctx context.Context, id string) (*Consultation, error)
	UpdateConsultation(ctx context.Context, id string, req UpdateConsultationRequest) (*Consultation, error)
	DeleteConsultation(ctx context.Context, id string) (*Consultation, error)
	Count(ctx context.Context) int
}

var _ RepositoryInterface = (*Repository)(nil)

type Repository struct {
	store *store.Store[Consultation, *Consultation]
}

func NewRepository(opts ...store.Option) *Repository {
	return &Repository{store: store.New[Consultation](opts...)}
}

func (r *Repository) CreateConsultation(ctx context.Context, c Consultation) (*Consultation, error) {
	created := r.store.Append(c)
	return &created, nil
}

func (r *Repository) ListConsultations(ctx context.Context) ([]Consultation, error) {
	return r.store.List(), nil
}

func (r *Repository) GetConsultation(ctx context.Context, id string) (*Consultation, error) {
	c, err := r.store.Get(id)
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *Repository) UpdateConsultation(ctx context.Context, id string, req UpdateConsultationRequest) (*Consultation, error) {
	c, err := r.store.Update(id, req.Apply)
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *Repository) DeleteConsultation(ctx context.Context, id string) (*Consultation, error) {
	c, err := r.store.Delete(id)
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
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
