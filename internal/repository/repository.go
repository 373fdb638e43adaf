package repository

import (
	"context"
	"errors"
	"fmt"

	"villa-api-backend/internal/model"
	"villa-api-backend/internal/store"
)

// Repository is a typed facade over one entity store. It holds no state between calls.
type Repository[T any] struct {
	store store.Store[T]
}

// New wraps s in a Repository.
func New[T any](s store.Store[T]) *Repository[T] {
	return &Repository[T]{store: s}
}

// Create inserts entity. Any store failure comes back as model.ErrPersistence carrying the original message.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.store.Insert(ctx, entity); err != nil {
		if errors.Is(err, model.ErrPersistence) {
			return err
		}
		return fmt.Errorf("%w: %w", model.ErrPersistence, err)
	}
	return nil
}

// GetAll returns every entity matching scope (all entities when scope is nil).
// pageSize 0 disables pagination; pageNumber is 1-based.
func (r *Repository[T]) GetAll(ctx context.Context, scope store.Scope, pageSize, pageNumber int) ([]T, error) {
	out := make([]T, 0)
	for item, err := range r.store.Query(ctx, scope, store.Page{Size: pageSize, Number: pageNumber}, true) {
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Get returns the first entity matching scope, or nil when nothing matches.
// Absence is not an error.
func (r *Repository[T]) Get(ctx context.Context, scope store.Scope, tracked bool) (*T, error) {
	for item, err := range r.store.Query(ctx, scope, store.Page{Size: 1, Number: 1}, tracked) {
		if err != nil {
			return nil, err
		}
		return &item, nil
	}
	return nil, nil
}

// Update replaces the stored entity with the same identity.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	return r.store.Update(ctx, entity)
}

// Remove deletes the stored entity with the same identity.
func (r *Repository[T]) Remove(ctx context.Context, entity *T) error {
	return r.store.Remove(ctx, entity)
}
