package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"uni-seeder/internal/model"
)

var ErrRecordNotFound = errors.New("record not found")

// Repository is an in-memory table. Ids are sequential integers starting at
// 1 and entities are returned in insertion order.
type Repository[T any] struct {
	mu     sync.RWMutex
	items  []T
	nextID int64
	idOf   func(*T) *model.ID
}

func newRepository[T any](idOf func(*T) *model.ID) *Repository[T] {
	return &Repository[T]{idOf: idOf}
}

// Create assigns the next id to entity and stores a copy of it.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	*r.idOf(entity) = model.ID(strconv.FormatInt(r.nextID, 10))
	r.items = append(r.items, *entity)
	return nil
}

func (r *Repository[T]) FindById(ctx context.Context, entity *T, id model.ID) error {
	return r.FindBy(ctx, entity, func(item *T) bool { return *r.idOf(item) == id })
}

func (r *Repository[T]) CountById(ctx context.Context, id model.ID) int64 {
	return r.CountBy(ctx, func(item *T) bool { return *r.idOf(item) == id })
}

// FindBy copies the first entity matching match into entity.
func (r *Repository[T]) FindBy(ctx context.Context, entity *T, match func(*T) bool) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if match(&r.items[i]) {
			*entity = r.items[i]
			return nil
		}
	}
	return ErrRecordNotFound
}

func (r *Repository[T]) CountBy(ctx context.Context, match func(*T) bool) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for i := range r.items {
		if match(&r.items[i]) {
			total++
		}
	}
	return total
}

// FindAll returns every entity matching match, or all of them when match is nil.
func (r *Repository[T]) FindAll(ctx context.Context, match func(*T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.items))
	for i := range r.items {
		if match == nil || match(&r.items[i]) {
			out = append(out, r.items[i])
		}
	}
	return out
}
