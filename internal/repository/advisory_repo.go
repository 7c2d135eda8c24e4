package repository

import (
	"strings"
	"time"

	"go-legal-cms/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdvisoryFilter narrows the advisory workflow listing
type AdvisoryFilter struct {
	Query    string
	Status   string
	Priority string
}

type AdvisoryRepository interface {
	FindByID(id uuid.UUID) (*model.AdvisoryRequest, error)
	FindByRequestNumber(requestNumber string) (*model.AdvisoryRequest, error)
	Find(filter AdvisoryFilter) ([]model.AdvisoryRequest, error)
	Create(a *model.AdvisoryRequest) error
	Update(a *model.AdvisoryRequest) error
	Delete(id uuid.UUID) error
	CountByStatus(statuses ...string) (int64, error)
	EscalateOverdue(now time.Time) ([]model.AdvisoryRequest, error)
}

type advisoryRepo struct {
	db *gorm.DB
}

func NewAdvisoryRepo(db *gorm.DB) AdvisoryRepository {
	return &advisoryRepo{db}
}

func (r *advisoryRepo) FindByID(id uuid.UUID) (*model.AdvisoryRequest, error) {
	var a model.AdvisoryRequest
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *advisoryRepo) FindByRequestNumber(requestNumber string) (*model.AdvisoryRequest, error) {
	var a model.AdvisoryRequest
	if err := r.db.Where("request_number = ?", requestNumber).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *advisoryRepo) Find(filter AdvisoryFilter) ([]model.AdvisoryRequest, error) {
	q := r.db.Model(&model.AdvisoryRequest{})
	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		q = q.Where(
			"LOWER(request_number) LIKE ? OR LOWER(title) LIKE ? OR LOWER(requested_by) LIKE ?",
			like, like, like,
		)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}

	var requests []model.AdvisoryRequest
	if err := q.Order("due_date").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *advisoryRepo) Create(a *model.AdvisoryRequest) error {
	return r.db.Create(a).Error
}

func (r *advisoryRepo) Update(a *model.AdvisoryRequest) error {
	return r.db.Save(a).Error
}

func (r *advisoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.AdvisoryRequest{}, "id = ?", id).Error
}

func (r *advisoryRepo) CountByStatus(statuses ...string) (int64, error) {
	var count int64
	err := r.db.Model(&model.AdvisoryRequest{}).Where("status IN ?", statuses).Count(&count).Error
	return count, err
}

// EscalateOverdue flips open requests past their due date to Urgent and
// returns the affected rows so callers can audit each escalation.
func (r *advisoryRepo) EscalateOverdue(now time.Time) ([]model.AdvisoryRequest, error) {
	var overdue []model.AdvisoryRequest
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("due_date < ? AND status NOT IN ?", now,
			[]string{model.AdvisoryCompleted, model.AdvisoryUrgent}).Find(&overdue).Error; err != nil {
			return err
		}
		if len(overdue) == 0 {
			return nil
		}
		ids := make([]uuid.UUID, len(overdue))
		for i, a := range overdue {
			ids[i] = a.ID
		}
		return tx.Model(&model.AdvisoryRequest{}).Where("id IN ?", ids).
			Update("status", model.AdvisoryUrgent).Error
	})
	if err != nil {
		return nil, err
	}
	for i := range overdue {
		overdue[i].Status = model.AdvisoryUrgent
	}
	return overdue, nil
}
