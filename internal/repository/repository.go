package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// CRUD is the data-access contract shared by every entity repository.
// Absent rows are signaled as nil results, not errors; each call runs as a
// single implicit transaction at the storage layer. Composing calls
// atomically (sale + stock decrement) is the service's job via DB().
type CRUD[T any] interface {
	Create(ctx context.Context, e *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, filter map[string]any, page, perPage int) ([]T, int64, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id uint) (bool, error)
	Exists(ctx context.Context, fields map[string]any) (bool, error)
	Count(ctx context.Context, filter map[string]any) (int64, error)
	// DB exposes the underlying handle so services can open transactions.
	DB() *gorm.DB
}

// Repository is the GORM implementation of CRUD, instantiated once per
// entity type. Entity-specific repositories embed it and add their own
// queries.
type Repository[T any] struct{ db *gorm.DB }

func NewRepository[T any](db *gorm.DB) *Repository[T] { return &Repository[T]{db: db} }

func (r *Repository[T]) DB() *gorm.DB { return r.db }

func (r *Repository[T]) Create(ctx context.Context, e *T) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *Repository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var e T
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List applies filter as an exact-match AND conjunction and paginates with
// offsets. Out-of-range pages return an empty slice with the real total.
func (r *Repository[T]) List(ctx context.Context, filter map[string]any, page, perPage int) ([]T, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	q := r.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		q = q.Where(filter)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []T
	err := q.Order("id").Offset((page - 1) * perPage).Limit(perPage).Find(&items).Error
	return items, total, err
}

// Update merges fields into the row and returns the refreshed entity, or
// nil when the id has no matching row.
func (r *Repository[T]) Update(ctx context.Context, id uint, fields map[string]any) (*T, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(existing).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *Repository[T]) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository[T]) Exists(ctx context.Context, fields map[string]any) (bool, error) {
	n, err := r.Count(ctx, fields)
	return n > 0, err
}

func (r *Repository[T]) Count(ctx context.Context, filter map[string]any) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		q = q.Where(filter)
	}
	err := q.Count(&n).Error
	return n, err
}
