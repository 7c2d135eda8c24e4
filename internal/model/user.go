package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is the identity record. Display name, department and role live in
// Profile and UserRole; provisioning writes the three tables as separate
// steps and the store cascades profile/role rows on user deletion.
type User struct {
	BaseModel
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password     string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	TokenVersion string     `gorm:"type:varchar(255);default:''" json:"-"` // For single session enforcement
	LastSeenAt   *time.Time `json:"last_seen_at,omitempty"`

	Profile *Profile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Role    *UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"role,omitempty"`
}

// Profile holds the user-facing fields of an account
type Profile struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FullName   string    `gorm:"type:varchar(255)" json:"full_name"`
	Email      string    `gorm:"type:varchar(255)" json:"email"`
	Department string    `gorm:"type:varchar(100);default:'Legal'" json:"department"`
	AvatarURL  string    `gorm:"type:varchar(512)" json:"avatar_url,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// RoleCode returns the resolved role, or "" when no role row exists.
// Downstream gates treat "" as no elevated access.
func (u *User) RoleCode() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Role
}

// DisplayName returns the profile full name, falling back to the email
func (u *User) DisplayName() string {
	if u.Profile != nil && u.Profile.FullName != "" {
		return u.Profile.FullName
	}
	return u.Email
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	FullName   string     `json:"fullName"`
	Role       string     `json:"role"`
	Department string     `json:"department"`
	AvatarURL  string     `json:"avatar_url,omitempty"`
	IsActive   bool       `json:"is_active"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	resp := UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.RoleCode(),
		IsActive:   u.IsActive,
		LastSeenAt: u.LastSeenAt,
	}
	if u.Profile != nil {
		resp.FullName = u.Profile.FullName
		resp.Department = u.Profile.Department
		resp.AvatarURL = u.Profile.AvatarURL
	}
	return resp
}
