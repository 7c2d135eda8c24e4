package repository

import (
	"errors"

	"go-legal-cms/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository interface {
	FindByUserID(userID uuid.UUID) (*model.UserRole, error)
	Create(role *model.UserRole) error
	Upsert(userID uuid.UUID, role string) error
	Delete(userID uuid.UUID) error
	HasAdmin() (bool, error)
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) FindByUserID(userID uuid.UUID) (*model.UserRole, error) {
	var role model.UserRole
	if err := r.db.Where("user_id = ?", userID).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) Create(role *model.UserRole) error {
	return r.db.Create(role).Error
}

// Upsert sets the user's role in a single statement so there is never a
// window with no role row.
func (r *roleRepo) Upsert(userID uuid.UUID, role string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"role": role}),
	}).Create(&model.UserRole{UserID: userID, Role: role}).Error
}

func (r *roleRepo) Delete(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.UserRole{}).Error
}

// HasAdmin reports whether any admin role row exists. Used by the
// bootstrap guard.
func (r *roleRepo) HasAdmin() (bool, error) {
	var role model.UserRole
	err := r.db.Where("role = ?", model.RoleAdmin).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
