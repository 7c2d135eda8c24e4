package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"go-legal-cms/internal/model"
	"go-legal-cms/internal/repository"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentService interface {
	ListDocuments(filter repository.DocumentFilter) ([]model.LegalDocument, error)
	GetDocument(id uuid.UUID) (*model.LegalDocument, error)
	CreateDocument(req *DocumentRequest, uploadedBy string) (*model.LegalDocument, error)
	UpdateDocument(id uuid.UUID, req *DocumentRequest, actorID string) (*model.LegalDocument, error)
	DeleteDocument(id uuid.UUID) error
}

type DocumentRequest struct {
	Name    string     `json:"name" validate:"required"`
	DocType string     `json:"type" validate:"required,oneof=MoU 'Court Process' 'Legal Opinion' Contract Correspondence"`
	CaseID  *uuid.UUID `json:"case_id" validate:"omitempty,case_ref"`
	Version string     `json:"version"`
	Size    string     `json:"size"`
	Status  string     `json:"status" validate:"required,oneof=Draft Final Archived"`
}

type documentService struct {
	documentRepo repository.DocumentRepository
	caseRepo     repository.CaseRepository
}

func NewDocumentService(documentRepo repository.DocumentRepository, caseRepo repository.CaseRepository) DocumentService {
	return &documentService{
		documentRepo: documentRepo,
		caseRepo:     caseRepo,
	}
}

func (s *documentService) ListDocuments(filter repository.DocumentFilter) ([]model.LegalDocument, error) {
	return s.documentRepo.Find(filter)
}

func (s *documentService) GetDocument(id uuid.UUID) (*model.LegalDocument, error) {
	d, err := s.documentRepo.FindByID(id)
	if err != nil {
		return nil, ErrDocumentNotFound
	}
	return d, nil
}

func (s *documentService) CreateDocument(req *DocumentRequest, uploadedBy string) (*model.LegalDocument, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// A related case must exist when referenced
	if req.CaseID != nil {
		if _, err := s.caseRepo.FindByID(*req.CaseID); err != nil {
			return nil, ErrCaseNotFound
		}
	}

	version := req.Version
	if version == "" {
		version = "1.0"
	}

	now := time.Now()
	d := &model.LegalDocument{
		Name:         req.Name,
		DocType:      req.DocType,
		CaseID:       req.CaseID,
		Version:      version,
		UploadedBy:   uploadedBy,
		UploadedAt:   now,
		LastModified: now,
		Size:         req.Size,
		Status:       req.Status,
	}
	d.CreatedBy = uploadedBy
	d.UpdatedBy = uploadedBy

	if err := s.documentRepo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *documentService) UpdateDocument(id uuid.UUID, req *DocumentRequest, actorID string) (*model.LegalDocument, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	d, err := s.documentRepo.FindByID(id)
	if err != nil {
		return nil, ErrDocumentNotFound
	}

	if req.CaseID != nil {
		if _, err := s.caseRepo.FindByID(*req.CaseID); err != nil {
			return nil, ErrCaseNotFound
		}
	}

	d.Name = req.Name
	d.DocType = req.DocType
	d.CaseID = req.CaseID
	if req.Version != "" {
		d.Version = req.Version
	}
	d.Size = req.Size
	d.Status = req.Status
	d.LastModified = time.Now()
	d.UpdatedBy = actorID

	if err := s.documentRepo.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *documentService) DeleteDocument(id uuid.UUID) error {
	if _, err := s.documentRepo.FindByID(id); err != nil {
		return ErrDocumentNotFound
	}
	return s.documentRepo.Delete(id)
}
