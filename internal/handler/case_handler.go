package handler

import (
	"errors"
	"strconv"
	"time"

	"go-legal-cms/internal/audit"
	"go-legal-cms/internal/model"
	"go-legal-cms/internal/repository"
	"go-legal-cms/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CaseHandler struct {
	caseService service.CaseService
	recorder    *audit.Recorder
}

func NewCaseHandler(caseService service.CaseService, recorder *audit.Recorder) *CaseHandler {
	return &CaseHandler{
		caseService: caseService,
		recorder:    recorder,
	}
}

// record enqueues an audit entry attributed to the request's caller
func record(c *fiber.Ctx, recorder *audit.Recorder, action, resource, resourceID, details string) {
	userID, _ := c.Locals("user_id").(string)
	userName, _ := c.Locals("user_name").(string)
	recorder.Record(model.AuditLog{
		UserID:     userID,
		UserName:   userName,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  c.IP(),
		Details:    details,
	})
}

// ListCases returns the litigation registry, filtered
// GET /api/v1/cases?q=&stage=&status=
func (h *CaseHandler) ListCases(c *fiber.Ctx) error {
	filter := repository.CaseFilter{
		Query:  c.Query("q"),
		Stage:  c.Query("stage"),
		Status: c.Query("status"),
	}

	cases, err := h.caseService.ListCases(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch cases"})
	}

	return c.JSON(fiber.Map{
		"items": cases,
		"count": len(cases),
	})
}

// GetCase returns a single case
// GET /api/v1/cases/:id
func (h *CaseHandler) GetCase(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid case ID"})
	}

	litCase, err := h.caseService.GetCase(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Case not found"})
	}

	record(c, h.recorder, model.ActionView, model.ResourceCase, litCase.SuitNumber, "Viewed case "+litCase.SuitNumber)
	return c.JSON(litCase)
}

// CreateCase registers a new suit
// POST /api/v1/cases
func (h *CaseHandler) CreateCase(c *fiber.Ctx) error {
	var req service.CaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	userID, _ := c.Locals("user_id").(string)
	litCase, err := h.caseService.CreateCase(&req, userID)
	if err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrSuitNumberTaken) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create case"})
	}

	record(c, h.recorder, model.ActionCreate, model.ResourceCase, litCase.SuitNumber, "Registered case "+litCase.SuitNumber)
	return c.Status(201).JSON(fiber.Map{
		"message": "Case created successfully",
		"data":    litCase,
	})
}

// UpdateCase updates a suit
// PUT /api/v1/cases/:id
func (h *CaseHandler) UpdateCase(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid case ID"})
	}

	var req service.CaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	userID, _ := c.Locals("user_id").(string)
	litCase, err := h.caseService.UpdateCase(id, &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrCaseNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Case not found"})
		}
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrSuitNumberTaken) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update case"})
	}

	record(c, h.recorder, model.ActionUpdate, model.ResourceCase, litCase.SuitNumber, "Updated case "+litCase.SuitNumber)
	return c.JSON(fiber.Map{
		"message": "Case updated successfully",
		"data":    litCase,
	})
}

// DeleteCase removes a suit from the registry (admin only)
// DELETE /api/v1/cases/:id
func (h *CaseHandler) DeleteCase(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid case ID"})
	}

	if err := h.caseService.DeleteCase(id); err != nil {
		if errors.Is(err, service.ErrCaseNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Case not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete case"})
	}

	record(c, h.recorder, model.ActionDelete, model.ResourceCase, id.String(), "Deleted case")
	return c.JSON(fiber.Map{"message": "Case deleted successfully"})
}

// Calendar buckets the month's hearings by day
// GET /api/v1/cases/calendar?year=2026&month=8
func (h *CaseHandler) Calendar(c *fiber.Ctx) error {
	now := time.Now()

	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid year"})
	}
	month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid month"})
	}

	byDay, err := h.caseService.Calendar(year, time.Month(month))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch calendar"})
	}

	return c.JSON(fiber.Map{
		"year":  year,
		"month": month,
		"days":  byDay,
	})
}
