package model

import "time"

// Valid user roles. Role checks on endpoints are flat membership — there is
// no ordinal hierarchy between them.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleStaff
}

// User is a local account linked to an externally-verified identity.
// Authentication happens at the identity provider; IdentityUID is the
// provider's subject identifier.
type User struct {
	ID          uint   `gorm:"primaryKey"`
	IdentityUID string `gorm:"size:128;uniqueIndex;not null"`
	Username    string `gorm:"size:50;uniqueIndex;not null"`
	Email       string `gorm:"size:100;uniqueIndex;not null"`
	FullName    string `gorm:"size:100;not null"`
	Role        string `gorm:"size:20;not null;default:'staff'"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
