// Package store holds records of one entity kind in process memory.
//
// A Store keeps an ordered sequence and a monotonic id counter. Ids are the
// decimal form of the counter, starting at 1, and are never reused within the
// lifetime of the process. Nothing is persisted: a restart starts from the
// seed data again.
package store

import (
	"errors"
	"strconv"
	"sync"
	"time"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("not found")

// Meta carries the identity fields shared by every entity.
// Both fields are assigned by the store and cannot be changed afterwards.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Metadata gives the store access to the identity fields of an entity that
// embeds Meta.
func (m *Meta) Metadata() *Meta { return m }

// Entity is satisfied by a pointer to any struct embedding Meta.
type Entity[T any] interface {
	*T
	Metadata() *Meta
}

type options struct {
	now func() time.Time
}

// Option configures a Store.
type Option func(*options)

// WithClock overrides the clock used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Store is an ordered, mutex-guarded sequence of records.
// Every method is atomic with respect to the others.
type Store[T any, P Entity[T]] struct {
	mu     sync.RWMutex
	items  []T
	nextID int
	now    func() time.Time
}

// New creates an empty store whose first id will be "1".
func New[T any, P Entity[T]](opts ...Option) *Store[T, P] {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T, P]{
		items:  make([]T, 0),
		nextID: 1,
		now:    o.now,
	}
}

// List returns a copy of every record in insertion order.
func (s *Store[T, P]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Filter returns the records for which keep reports true, in insertion order.
func (s *Store[T, P]) Filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0)
	for _, item := range s.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of stored records.
func (s *Store[T, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the record with the given id.
func (s *Store[T, P]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	return s.items[i], nil
}

// Append assigns the next id and the creation time to rec, stores it at the
// end of the sequence and returns the stored value. Any id or creation time
// already present on rec is overwritten.
func (s *Store[T, P]) Append(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := P(&rec).Metadata()
	meta.ID = strconv.Itoa(s.nextID)
	meta.CreatedAt = s.now()
	s.nextID++

	s.items = append(s.items, rec)
	return rec
}

// Update applies mutate to a copy of the record with the given id and stores
// the result at the same position. The identity fields are restored after
// mutate runs. mutate is called with the store locked and must not call back
// into the store.
func (s *Store[T, P]) Update(id string, mutate func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}

	rec := s.items[i]
	meta := *P(&rec).Metadata()
	mutate(&rec)
	*P(&rec).Metadata() = meta

	s.items[i] = rec
	return rec, nil
}

// Delete removes the record with the given id and returns it.
func (s *Store[T, P]) Delete(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}

	removed := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return removed, nil
}

func (s *Store[T, P]) indexOf(id string) int {
	for i := range s.items {
		if P(&s.items[i]).Metadata().ID == id {
			return i
		}
	}
	return -1
}
