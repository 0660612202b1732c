package model

import "time"

// Supplier holds contact data for a product source. No uniqueness is
// enforced on the name; two suppliers may share it.
type Supplier struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:150;not null;index"`
	ContactPerson *string `gorm:"size:100"`
	Email         *string `gorm:"size:100"`
	Phone         *string `gorm:"size:20"`
	Address       *string `gorm:"type:text"`
	CreatedAt     time.Time
}
