package repository

import (
	"context"

	"stockroom/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	CRUD[model.Supplier]
	Search(ctx context.Context, term string, page, perPage int) ([]model.Supplier, int64, error)
}

type supplierRepo struct{ *Repository[model.Supplier] }

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepo{NewRepository[model.Supplier](db)}
}

func (r *supplierRepo) Search(ctx context.Context, term string, page, perPage int) ([]model.Supplier, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	pattern := "%" + term + "%"
	q := r.db.WithContext(ctx).Model(&model.Supplier{}).
		Where("name ILIKE ? OR contact_person ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var suppliers []model.Supplier
	err := q.Order("name").Offset((page - 1) * perPage).Limit(perPage).Find(&suppliers).Error
	return suppliers, total, err
}
