package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an inventory item. Stock can never go negative: services check
// before decrementing and the DB check constraint is the backstop.
type Product struct {
	ID              uint             `gorm:"primaryKey"`
	Name            string           `gorm:"size:200;not null;index"`
	SKU             string           `gorm:"size:50;uniqueIndex;not null"`
	Description     *string          `gorm:"type:text"`
	CategoryID      *uint            `gorm:"index"`
	Price           decimal.Decimal  `gorm:"type:decimal(10,2);not null;check:chk_price_positive,price > 0"`
	CostPrice       *decimal.Decimal `gorm:"type:decimal(10,2)"`
	QuantityInStock int              `gorm:"not null;default:0;check:chk_quantity_non_negative,quantity_in_stock >= 0"`
	ReorderLevel    int              `gorm:"not null;default:10"`
	SupplierID      *uint            `gorm:"index"`
	Barcode         *string          `gorm:"size:100;uniqueIndex"`
	IsActive        bool             `gorm:"not null;default:true"`
	CreatedBy       *uint
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL"`
	Creator  *User     `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`
}

// IsLowStock reports whether stock has fallen to or below the reorder level.
func (p *Product) IsLowStock() bool {
	return p.QuantityInStock <= p.ReorderLevel
}

// ProfitMargin returns the margin percentage over cost price, or nil when no
// cost price is set.
func (p *Product) ProfitMargin() *decimal.Decimal {
	if p.CostPrice == nil || p.CostPrice.IsZero() {
		return nil
	}
	m := p.Price.Sub(*p.CostPrice).Div(*p.CostPrice).Mul(decimal.NewFromInt(100))
	return &m
}
