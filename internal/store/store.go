package store

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync/atomic"

	"gorm.io/gorm"

	"villa-api-backend/internal/metrics"
	"villa-api-backend/internal/model"
)

// ErrSequenceConsumed is yielded when a query sequence is ranged over a second time.
var ErrSequenceConsumed = errors.New("store: query sequence already consumed")

// Scope narrows a query. It is the typed predicate accepted by Query.
type Scope func(*gorm.DB) *gorm.DB

// Page selects a window of a query result. Size 0 disables pagination.
// Numbers are 1-based; values below 1 are treated as page 1.
type Page struct {
	Size   int
	Number int
}

// window returns LIMIT/OFFSET values, or ok=false when the page does not paginate.
func (p Page) window() (limit, offset int, ok bool) {
	if p.Size <= 0 {
		return 0, 0, false
	}
	n := p.Number
	if n < 1 {
		n = 1
	}
	return p.Size, (n - 1) * p.Size, true
}

// Store is a persistent collection of entities of one type.
type Store[T any] interface {
	// Insert persists entity, filling in a store-generated identity if the schema has one.
	Insert(ctx context.Context, entity *T) error
	// Remove deletes the row matching the entity's identity. Removing a missing row is ErrNotFound.
	Remove(ctx context.Context, entity *T) error
	// Update replaces every mutable column of the row matching the entity's identity.
	Update(ctx context.Context, entity *T) error
	// Query yields the entities matching scope in insertion order, sliced to page.
	// tracked reports whether the caller intends to mutate the results; it never changes the data.
	Query(ctx context.Context, scope Scope, page Page, tracked bool) iter.Seq2[T, error]
}

// gormStore implements Store using GORM.
type gormStore[T any] struct {
	db     *gorm.DB
	entity string
	order  string
}

// NewGormStore creates a GORM-backed store. order is the ORDER BY clause that reproduces insertion order.
func NewGormStore[T any](db *gorm.DB, order string) Store[T] {
	entity := fmt.Sprintf("%T", *new(T))
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err == nil {
		entity = stmt.Schema.Table
	}
	return &gormStore[T]{db: db, entity: entity, order: order}
}

func (s *gormStore[T]) Insert(ctx context.Context, entity *T) error {
	err := s.db.WithContext(ctx).Create(entity).Error
	metrics.ObserveWrite(s.entity, "insert", err)
	if err != nil {
		return fmt.Errorf("%w: insert into %s: %w", model.ErrPersistence, s.entity, err)
	}
	return nil
}

func (s *gormStore[T]) Remove(ctx context.Context, entity *T) error {
	res := s.db.WithContext(ctx).Delete(entity)
	metrics.ObserveWrite(s.entity, "remove", res.Error)
	if res.Error != nil {
		return fmt.Errorf("%w: delete from %s: %w", model.ErrPersistence, s.entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s row to delete", model.ErrNotFound, s.entity)
	}
	return nil
}

func (s *gormStore[T]) Update(ctx context.Context, entity *T) error {
	// Select("*") writes zero values too; CreatedAt is set once at insert.
	res := s.db.WithContext(ctx).Model(entity).Select("*").Omit("CreatedAt").Updates(entity)
	metrics.ObserveWrite(s.entity, "update", res.Error)
	if res.Error != nil {
		return fmt.Errorf("%w: update %s: %w", model.ErrPersistence, s.entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s row to update", model.ErrNotFound, s.entity)
	}
	return nil
}

func (s *gormStore[T]) Query(ctx context.Context, scope Scope, page Page, tracked bool) iter.Seq2[T, error] {
	var consumed atomic.Bool
	return func(yield func(T, error) bool) {
		var zero T
		if consumed.Swap(true) {
			yield(zero, ErrSequenceConsumed)
			return
		}
		metrics.ObserveQuery(s.entity, tracked)

		tx := s.db.WithContext(ctx).Model(new(T))
		if scope != nil {
			tx = tx.Scopes(scope)
		}
		if s.order != "" {
			tx = tx.Order(s.order)
		}
		if limit, offset, ok := page.window(); ok {
			tx = tx.Limit(limit).Offset(offset)
		}

		rows, err := tx.Rows()
		if err != nil {
			yield(zero, fmt.Errorf("%w: query %s: %w", model.ErrPersistence, s.entity, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var item T
			if err := s.db.ScanRows(rows, &item); err != nil {
				yield(zero, fmt.Errorf("%w: scan %s: %w", model.ErrPersistence, s.entity, err))
				return
			}
			if !yield(item, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(zero, fmt.Errorf("%w: query %s: %w", model.ErrPersistence, s.entity, err))
		}
	}
}
