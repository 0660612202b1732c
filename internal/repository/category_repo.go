package repository

import (
	"context"
	"errors"

	"stockroom/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	CRUD[model.Category]
	FindByName(ctx context.Context, name string) (*model.Category, error)
	// NameExists checks name uniqueness, optionally ignoring one id (for updates).
	NameExists(ctx context.Context, name string, excludeID uint) (bool, error)
	Subcategories(ctx context.Context, parentID uint) ([]model.Category, error)
	Roots(ctx context.Context) ([]model.Category, error)
}

type categoryRepo struct{ *Repository[model.Category] }

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{NewRepository[model.Category](db)}
}

func (r *categoryRepo) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *categoryRepo) Subcategories(ctx context.Context, parentID uint) ([]model.Category, error) {
	var cats []model.Category
	err := r.db.WithContext(ctx).Where("parent_category_id = ?", parentID).Order("name").Find(&cats).Error
	return cats, err
}

func (r *categoryRepo) Roots(ctx context.Context) ([]model.Category, error) {
	var cats []model.Category
	err := r.db.WithContext(ctx).Where("parent_category_id IS NULL").Order("name").Find(&cats).Error
	return cats, err
}
