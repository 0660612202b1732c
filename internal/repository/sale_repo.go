package repository

import (
	"context"
	"errors"
	"time"

	"stockroom/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleFilter narrows sale listings. Nil bounds mean unbounded; both bounds
// are inclusive.
type SaleFilter struct {
	Start     *time.Time
	End       *time.Time
	ProductID *uint
	Page      int
	PerPage   int
}

type SaleRepository interface {
	CRUD[model.Sale]
	// CreateTx and DeleteTx run inside a service-managed transaction.
	CreateTx(ctx context.Context, tx *gorm.DB, s *model.Sale) error
	DeleteTx(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	ListFiltered(ctx context.Context, f SaleFilter) ([]model.Sale, int64, error)
	SumTotals(ctx context.Context, start, end *time.Time) (decimal.Decimal, error)
}

type saleRepo struct{ *Repository[model.Sale] }

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepo{NewRepository[model.Sale](db)}
}

func (r *saleRepo) FindByID(ctx context.Context, id uint) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Product").Preload("User").First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepo) CreateTx(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) DeleteTx(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	if tx == nil {
		tx = r.db
	}
	res := tx.WithContext(ctx).Delete(&model.Sale{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *saleRepo) ListFiltered(ctx context.Context, f SaleFilter) ([]model.Sale, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 20
	}

	q := r.db.WithContext(ctx).Model(&model.Sale{})
	if f.Start != nil {
		q = q.Where("sale_date >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("sale_date <= ?", *f.End)
	}
	if f.ProductID != nil {
		q = q.Where("product_id = ?", *f.ProductID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []model.Sale
	err := q.Preload("Product").Preload("User").
		Order("sale_date DESC").
		Offset((f.Page - 1) * f.PerPage).Limit(f.PerPage).
		Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) SumTotals(ctx context.Context, start, end *time.Time) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)")
	if start != nil {
		q = q.Where("sale_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("sale_date <= ?", *end)
	}
	var total decimal.Decimal
	err := q.Scan(&total).Error
	return total, err
}
