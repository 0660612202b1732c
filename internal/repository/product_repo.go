package repository

import (
	"context"
	"errors"

	"stockroom/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	CRUD[model.Product]
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	// SKUExists checks SKU uniqueness, optionally ignoring one id (for updates).
	SKUExists(ctx context.Context, sku string, excludeID uint) (bool, error)
	Search(ctx context.Context, term string, page, perPage int) ([]model.Product, int64, error)
	LowStock(ctx context.Context) ([]model.Product, error)
	InventoryValue(ctx context.Context) (decimal.Decimal, error)

	// Used inside service-managed transactions — callers pass the tx handle.
	// FindByIDForUpdate takes a FOR UPDATE row lock so the stock check and
	// the later decrement are atomic with respect to concurrent sales.
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*model.Product, error)
	AdjustStockTx(ctx context.Context, tx *gorm.DB, id uint, delta int) error
}

type productRepo struct{ *Repository[model.Product] }

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{NewRepository[model.Product](db)}
}

// FindByID shadows the generic lookup to preload the relations the API
// returns alongside a product.
func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Supplier").Preload("Creator").
		First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) SKUExists(ctx context.Context, sku string, excludeID uint) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("sku = ?", sku)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *productRepo) Search(ctx context.Context, term string, page, perPage int) ([]model.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	pattern := "%" + term + "%"
	q := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("name ILIKE ? OR sku ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := q.Order("name").Offset((page - 1) * perPage).Limit(perPage).Find(&products).Error
	return products, total, err
}

func (r *productRepo) LowStock(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("quantity_in_stock <= reorder_level").
		Order("quantity_in_stock").
		Find(&products).Error
	return products, err
}

func (r *productRepo) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("COALESCE(SUM(quantity_in_stock * cost_price), 0)").
		Scan(&value).Error
	return value, err
}

func (r *productRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*model.Product, error) {
	if tx == nil {
		tx = r.db
	}
	var p model.Product
	err := tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) AdjustStockTx(ctx context.Context, tx *gorm.DB, id uint, delta int) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).
		Update("quantity_in_stock", gorm.Expr("quantity_in_stock + ?", delta)).Error
}
