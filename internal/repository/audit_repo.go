package repository

import (
	"strings"
	"time"

	"go-legal-cms/internal/model"

	"gorm.io/gorm"
)

// AuditFilter narrows the audit trail listing
type AuditFilter struct {
	Query  string
	Action string
	From   *time.Time
	To     *time.Time
}

type AuditRepository interface {
	Create(entry *model.AuditLog) error
	Find(filter AuditFilter) ([]model.AuditLog, error)
}

type auditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) AuditRepository {
	return &auditRepo{db}
}

func (r *auditRepo) Create(entry *model.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditRepo) Find(filter AuditFilter) ([]model.AuditLog, error) {
	q := r.db.Model(&model.AuditLog{})
	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		q = q.Where(
			"LOWER(user_name) LIKE ? OR LOWER(resource_id) LIKE ? OR LOWER(details) LIKE ?",
			like, like, like,
		)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.From != nil {
		q = q.Where("timestamp >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("timestamp <= ?", *filter.To)
	}

	var logs []model.AuditLog
	if err := q.Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
