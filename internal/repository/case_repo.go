package repository

import (
	"strings"
	"time"

	"go-legal-cms/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseFilter narrows the litigation registry listing
type CaseFilter struct {
	Query  string
	Stage  string
	Status string
}

type CaseRepository interface {
	FindByID(id uuid.UUID) (*model.LitigationCase, error)
	FindBySuitNumber(suitNumber string) (*model.LitigationCase, error)
	Find(filter CaseFilter) ([]model.LitigationCase, error)
	Create(c *model.LitigationCase) error
	Update(c *model.LitigationCase) error
	Delete(id uuid.UUID) error
	Upcoming(now time.Time, window time.Duration, limit int) ([]model.LitigationCase, error)
	HearingsInMonth(year int, month time.Month) ([]model.LitigationCase, error)
	CountTotal() (int64, error)
	CountByStatus(status string) (int64, error)
	CountClosedAtStage(stage string) (int64, error)
}

type caseRepo struct {
	db *gorm.DB
}

func NewCaseRepo(db *gorm.DB) CaseRepository {
	return &caseRepo{db}
}

func (r *caseRepo) FindByID(id uuid.UUID) (*model.LitigationCase, error) {
	var c model.LitigationCase
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caseRepo) FindBySuitNumber(suitNumber string) (*model.LitigationCase, error) {
	var c model.LitigationCase
	if err := r.db.Where("suit_number = ?", suitNumber).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caseRepo) Find(filter CaseFilter) ([]model.LitigationCase, error) {
	q := r.db.Model(&model.LitigationCase{})
	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		q = q.Where(
			"LOWER(suit_number) LIKE ? OR LOWER(case_title) LIKE ? OR LOWER(adversary_party) LIKE ? OR LOWER(assigned_counsel) LIKE ?",
			like, like, like, like,
		)
	}
	if filter.Stage != "" {
		q = q.Where("procedural_stage = ?", filter.Stage)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var cases []model.LitigationCase
	if err := q.Order("next_hearing").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *caseRepo) Create(c *model.LitigationCase) error {
	return r.db.Create(c).Error
}

func (r *caseRepo) Update(c *model.LitigationCase) error {
	return r.db.Save(c).Error
}

func (r *caseRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.LitigationCase{}, "id = ?", id).Error
}

// Upcoming returns cases whose hearing falls between now and now+window,
// soonest first.
func (r *caseRepo) Upcoming(now time.Time, window time.Duration, limit int) ([]model.LitigationCase, error) {
	var cases []model.LitigationCase
	q := r.db.Where("next_hearing > ? AND next_hearing <= ?", now, now.Add(window)).Order("next_hearing")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *caseRepo) HearingsInMonth(year int, month time.Month) ([]model.LitigationCase, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var cases []model.LitigationCase
	if err := r.db.Where("next_hearing >= ? AND next_hearing < ?", start, end).
		Order("next_hearing").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *caseRepo) CountTotal() (int64, error) {
	var count int64
	err := r.db.Model(&model.LitigationCase{}).Count(&count).Error
	return count, err
}

func (r *caseRepo) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LitigationCase{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *caseRepo) CountClosedAtStage(stage string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LitigationCase{}).
		Where("status = ? AND procedural_stage = ?", model.CaseStatusClosed, stage).
		Count(&count).Error
	return count, err
}
