package model

import "time"

// Category classifies products and supports a self-referential tree via
// ParentCategoryID. A category that still has children cannot be deleted.
type Category struct {
	ID               uint    `gorm:"primaryKey"`
	Name             string  `gorm:"size:100;uniqueIndex;not null"`
	Description      *string `gorm:"type:text"`
	ParentCategoryID *uint   `gorm:"index"`
	CreatedAt        time.Time

	Parent *Category `gorm:"foreignKey:ParentCategoryID;constraint:OnDelete:SET NULL"`
}
