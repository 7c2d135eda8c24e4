package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"go-legal-cms/internal/model"
	"go-legal-cms/internal/repository"
)

var (
	ErrAdvisoryNotFound   = errors.New("advisory request not found")
	ErrRequestNumberTaken = errors.New("request number already exists")
)

type AdvisoryService interface {
	ListRequests(filter repository.AdvisoryFilter) ([]model.AdvisoryRequest, error)
	GetRequest(id uuid.UUID) (*model.AdvisoryRequest, error)
	CreateRequest(req *AdvisoryRequestInput, actorID string) (*model.AdvisoryRequest, error)
	UpdateRequest(id uuid.UUID, req *AdvisoryRequestInput, actorID string) (*model.AdvisoryRequest, error)
	DeleteRequest(id uuid.UUID) error
	Board(filter repository.AdvisoryFilter) (map[string][]model.AdvisoryRequest, error)
}

type AdvisoryRequestInput struct {
	RequestNumber string    `json:"request_number" validate:"required"`
	Title         string    `json:"title" validate:"required"`
	RequestedBy   string    `json:"requested_by" validate:"required"`
	Department    string    `json:"department" validate:"required"`
	DateReceived  time.Time `json:"date_received"`
	DueDate       time.Time `json:"due_date"`
	Status        string    `json:"status" validate:"required,oneof=Pending 'In Progress' Completed Urgent"`
	AssignedTo    string    `json:"assigned_to"`
	Priority      string    `json:"priority" validate:"required,oneof=Low Medium High Critical"`
	Description   string    `json:"description"`
}

type advisoryService struct {
	advisoryRepo repository.AdvisoryRepository
}

func NewAdvisoryService(advisoryRepo repository.AdvisoryRepository) AdvisoryService {
	return &advisoryService{advisoryRepo: advisoryRepo}
}

func (s *advisoryService) ListRequests(filter repository.AdvisoryFilter) ([]model.AdvisoryRequest, error) {
	return s.advisoryRepo.Find(filter)
}

func (s *advisoryService) GetRequest(id uuid.UUID) (*model.AdvisoryRequest, error) {
	a, err := s.advisoryRepo.FindByID(id)
	if err != nil {
		return nil, ErrAdvisoryNotFound
	}
	return a, nil
}

func (s *advisoryService) CreateRequest(req *AdvisoryRequestInput, actorID string) (*model.AdvisoryRequest, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, _ := s.advisoryRepo.FindByRequestNumber(req.RequestNumber)
	if existing != nil {
		return nil, ErrRequestNumberTaken
	}

	a := &model.AdvisoryRequest{
		RequestNumber: req.RequestNumber,
		Title:         req.Title,
		RequestedBy:   req.RequestedBy,
		Department:    req.Department,
		DateReceived:  req.DateReceived,
		DueDate:       req.DueDate,
		Status:        req.Status,
		AssignedTo:    req.AssignedTo,
		Priority:      req.Priority,
		Description:   req.Description,
	}
	a.CreatedBy = actorID
	a.UpdatedBy = actorID

	if err := s.advisoryRepo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *advisoryService) UpdateRequest(id uuid.UUID, req *AdvisoryRequestInput, actorID string) (*model.AdvisoryRequest, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	a, err := s.advisoryRepo.FindByID(id)
	if err != nil {
		return nil, ErrAdvisoryNotFound
	}

	if req.RequestNumber != a.RequestNumber {
		existing, _ := s.advisoryRepo.FindByRequestNumber(req.RequestNumber)
		if existing != nil {
			return nil, ErrRequestNumberTaken
		}
	}

	a.RequestNumber = req.RequestNumber
	a.Title = req.Title
	a.RequestedBy = req.RequestedBy
	a.Department = req.Department
	a.DateReceived = req.DateReceived
	a.DueDate = req.DueDate
	a.Status = req.Status
	a.AssignedTo = req.AssignedTo
	a.Priority = req.Priority
	a.Description = req.Description
	a.UpdatedBy = actorID

	if err := s.advisoryRepo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *advisoryService) DeleteRequest(id uuid.UUID) error {
	if _, err := s.advisoryRepo.FindByID(id); err != nil {
		return ErrAdvisoryNotFound
	}
	return s.advisoryRepo.Delete(id)
}

// Board groups the filtered requests by status for the kanban view
func (s *advisoryService) Board(filter repository.AdvisoryFilter) (map[string][]model.AdvisoryRequest, error) {
	requests, err := s.advisoryRepo.Find(filter)
	if err != nil {
		return nil, err
	}

	board := map[string][]model.AdvisoryRequest{
		model.AdvisoryUrgent:     {},
		model.AdvisoryPending:    {},
		model.AdvisoryInProgress: {},
		model.AdvisoryCompleted:  {},
	}
	for _, a := range requests {
		board[a.Status] = append(board[a.Status], a)
	}
	return board, nil
}
