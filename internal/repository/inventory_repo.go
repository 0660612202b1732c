package repository

import (
	"context"

	"stockroom/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	CRUD[model.InventoryTransaction]
	// CreateTx appends an audit row inside a service-managed transaction,
	// alongside the stock change it records.
	CreateTx(ctx context.Context, tx *gorm.DB, t *model.InventoryTransaction) error
	ListByProduct(ctx context.Context, productID uint, page, perPage int) ([]model.InventoryTransaction, int64, error)
}

type inventoryRepo struct{ *Repository[model.InventoryTransaction] }

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{NewRepository[model.InventoryTransaction](db)}
}

func (r *inventoryRepo) CreateTx(ctx context.Context, tx *gorm.DB, t *model.InventoryTransaction) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(t).Error
}

func (r *inventoryRepo) ListByProduct(ctx context.Context, productID uint, page, perPage int) ([]model.InventoryTransaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	q := r.db.WithContext(ctx).Model(&model.InventoryTransaction{}).
		Where("product_id = ?", productID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txns []model.InventoryTransaction
	err := q.Order("transaction_date DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&txns).Error
	return txns, total, err
}
