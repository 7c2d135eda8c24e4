package repository

import (
	"strings"

	"go-legal-cms/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentFilter narrows the document vault listing
type DocumentFilter struct {
	Query  string
	Type   string
	Status string
	CaseID *uuid.UUID
}

type DocumentRepository interface {
	FindByID(id uuid.UUID) (*model.LegalDocument, error)
	Find(filter DocumentFilter) ([]model.LegalDocument, error)
	Create(d *model.LegalDocument) error
	Update(d *model.LegalDocument) error
	Delete(id uuid.UUID) error
	CountByType(docType string) (int64, error)
}

type documentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) DocumentRepository {
	return &documentRepo{db}
}

func (r *documentRepo) FindByID(id uuid.UUID) (*model.LegalDocument, error) {
	var d model.LegalDocument
	if err := r.db.First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *documentRepo) Find(filter DocumentFilter) ([]model.LegalDocument, error) {
	q := r.db.Model(&model.LegalDocument{})
	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(uploaded_by) LIKE ?", like, like)
	}
	if filter.Type != "" {
		q = q.Where("doc_type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CaseID != nil {
		q = q.Where("case_id = ?", *filter.CaseID)
	}

	var docs []model.LegalDocument
	if err := q.Order("uploaded_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepo) Create(d *model.LegalDocument) error {
	return r.db.Create(d).Error
}

func (r *documentRepo) Update(d *model.LegalDocument) error {
	return r.db.Save(d).Error
}

func (r *documentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.LegalDocument{}, "id = ?", id).Error
}

func (r *documentRepo) CountByType(docType string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LegalDocument{}).Where("doc_type = ?", docType).Count(&count).Error
	return count, err
}
