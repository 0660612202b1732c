package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records one product sold. Creating a sale decrements the product's
// stock by QuantitySold inside the same transaction; deleting it restores
// the stock. Deleting a product cascades to its sales.
type Sale struct {
	ID           uint            `gorm:"primaryKey"`
	ProductID    uint            `gorm:"not null;index"`
	QuantitySold int             `gorm:"not null;check:chk_quantity_sold_positive,quantity_sold > 0"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SaleDate     time.Time       `gorm:"not null;index"`
	CustomerName *string         `gorm:"size:100"`
	UserID       *uint

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}
