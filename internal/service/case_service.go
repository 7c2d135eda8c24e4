package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"go-legal-cms/internal/model"
	"go-legal-cms/internal/repository"
)

var (
	ErrCaseNotFound    = errors.New("case not found")
	ErrSuitNumberTaken = errors.New("suit number already exists")
)

type CaseService interface {
	ListCases(filter repository.CaseFilter) ([]model.LitigationCase, error)
	GetCase(id uuid.UUID) (*model.LitigationCase, error)
	CreateCase(req *CaseRequest, actorID string) (*model.LitigationCase, error)
	UpdateCase(id uuid.UUID, req *CaseRequest, actorID string) (*model.LitigationCase, error)
	DeleteCase(id uuid.UUID) error
	Calendar(year int, month time.Month) (map[string][]model.LitigationCase, error)
}

type CaseRequest struct {
	SuitNumber      string    `json:"suit_number" validate:"required"`
	CaseTitle       string    `json:"case_title" validate:"required"`
	AdversaryParty  string    `json:"adversary_party" validate:"required"`
	ProceduralStage string    `json:"procedural_stage" validate:"required,oneof=Mention Interlocutory Trial Judgment"`
	AssignedCounsel string    `json:"assigned_counsel" validate:"required"`
	Status          string    `json:"status" validate:"required,oneof=Active Pending Closed Urgent"`
	NextHearing     time.Time `json:"next_hearing"`
	Court           string    `json:"court" validate:"required"`
	FiledDate       time.Time `json:"filed_date"`
	Description     string    `json:"description"`
}

type caseService struct {
	caseRepo repository.CaseRepository
}

func NewCaseService(caseRepo repository.CaseRepository) CaseService {
	return &caseService{caseRepo: caseRepo}
}

func (s *caseService) ListCases(filter repository.CaseFilter) ([]model.LitigationCase, error) {
	return s.caseRepo.Find(filter)
}

func (s *caseService) GetCase(id uuid.UUID) (*model.LitigationCase, error) {
	c, err := s.caseRepo.FindByID(id)
	if err != nil {
		return nil, ErrCaseNotFound
	}
	return c, nil
}

func (s *caseService) CreateCase(req *CaseRequest, actorID string) (*model.LitigationCase, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, _ := s.caseRepo.FindBySuitNumber(req.SuitNumber)
	if existing != nil {
		return nil, ErrSuitNumberTaken
	}

	c := &model.LitigationCase{
		SuitNumber:      req.SuitNumber,
		CaseTitle:       req.CaseTitle,
		AdversaryParty:  req.AdversaryParty,
		ProceduralStage: req.ProceduralStage,
		AssignedCounsel: req.AssignedCounsel,
		Status:          req.Status,
		NextHearing:     req.NextHearing,
		Court:           req.Court,
		FiledDate:       req.FiledDate,
		Description:     req.Description,
	}
	c.CreatedBy = actorID
	c.UpdatedBy = actorID

	if err := s.caseRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *caseService) UpdateCase(id uuid.UUID, req *CaseRequest, actorID string) (*model.LitigationCase, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	c, err := s.caseRepo.FindByID(id)
	if err != nil {
		return nil, ErrCaseNotFound
	}

	if req.SuitNumber != c.SuitNumber {
		existing, _ := s.caseRepo.FindBySuitNumber(req.SuitNumber)
		if existing != nil {
			return nil, ErrSuitNumberTaken
		}
	}

	c.SuitNumber = req.SuitNumber
	c.CaseTitle = req.CaseTitle
	c.AdversaryParty = req.AdversaryParty
	c.ProceduralStage = req.ProceduralStage
	c.AssignedCounsel = req.AssignedCounsel
	c.Status = req.Status
	c.NextHearing = req.NextHearing
	c.Court = req.Court
	c.FiledDate = req.FiledDate
	c.Description = req.Description
	c.UpdatedBy = actorID

	if err := s.caseRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *caseService) DeleteCase(id uuid.UUID) error {
	if _, err := s.caseRepo.FindByID(id); err != nil {
		return ErrCaseNotFound
	}
	return s.caseRepo.Delete(id)
}

// Calendar buckets the month's hearings by day ("2026-08-14" keys)
func (s *caseService) Calendar(year int, month time.Month) (map[string][]model.LitigationCase, error) {
	cases, err := s.caseRepo.HearingsInMonth(year, month)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]model.LitigationCase)
	for _, c := range cases {
		day := c.NextHearing.Format("2006-01-02")
		byDay[day] = append(byDay[day], c)
	}
	return byDay, nil
}
