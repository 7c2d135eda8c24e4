package model

import "github.com/google/uuid"

// Role codes as constants
const (
	RoleAdmin        = "admin"
	RoleLegalOfficer = "legal_officer"
)

// UserRole stores the authoritative role of a user, one row per user
type UserRole struct {
	ID     uint      `gorm:"primaryKey" json:"-"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Role   string    `gorm:"type:varchar(50);not null" json:"role"`
}

// ValidRole reports whether code is a known role
func ValidRole(code string) bool {
	return code == RoleAdmin || code == RoleLegalOfficer
}
