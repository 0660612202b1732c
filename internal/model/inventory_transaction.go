package model

import "time"

// Inventory transaction types. IN adds stock, OUT removes it, ADJUSTMENT
// applies the signed quantity as-is.
const (
	TransactionIn         = "IN"
	TransactionOut        = "OUT"
	TransactionAdjustment = "ADJUSTMENT"
)

// ValidTransactionType reports whether t is one of the known movement types.
func ValidTransactionType(t string) bool {
	return t == TransactionIn || t == TransactionOut || t == TransactionAdjustment
}

// InventoryTransaction is an append-only audit record of a stock movement.
// Rows are created alongside the stock change in one transaction and are
// never mutated afterwards.
type InventoryTransaction struct {
	ID              uint      `gorm:"primaryKey"`
	ProductID       uint      `gorm:"not null;index"`
	Type            string    `gorm:"size:20;not null;column:transaction_type"`
	Quantity        int       `gorm:"not null"`
	TransactionDate time.Time `gorm:"not null;index"`
	UserID          *uint
	Notes           *string `gorm:"type:text"`
	ReferenceNumber *string `gorm:"size:50;index"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}
