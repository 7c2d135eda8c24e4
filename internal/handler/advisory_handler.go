package handler

import (
	"errors"

	"go-legal-cms/internal/audit"
	"go-legal-cms/internal/model"
	"go-legal-cms/internal/repository"
	"go-legal-cms/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdvisoryHandler struct {
	advisoryService service.AdvisoryService
	recorder        *audit.Recorder
}

func NewAdvisoryHandler(advisoryService service.AdvisoryService, recorder *audit.Recorder) *AdvisoryHandler {
	return &AdvisoryHandler{
		advisoryService: advisoryService,
		recorder:        recorder,
	}
}

// ListRequests returns the advisory workflow, filtered
// GET /api/v1/advisory?q=&status=&priority=
func (h *AdvisoryHandler) ListRequests(c *fiber.Ctx) error {
	filter := repository.AdvisoryFilter{
		Query:    c.Query("q"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}

	requests, err := h.advisoryService.ListRequests(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch advisory requests"})
	}

	return c.JSON(fiber.Map{
		"items": requests,
		"count": len(requests),
	})
}

// Board returns requests grouped by status for the kanban view
// GET /api/v1/advisory/board?q=&priority=
func (h *AdvisoryHandler) Board(c *fiber.Ctx) error {
	filter := repository.AdvisoryFilter{
		Query:    c.Query("q"),
		Priority: c.Query("priority"),
	}

	board, err := h.advisoryService.Board(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch advisory board"})
	}

	return c.JSON(board)
}

// GetRequest returns a single advisory request
// GET /api/v1/advisory/:id
func (h *AdvisoryHandler) GetRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	request, err := h.advisoryService.GetRequest(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Advisory request not found"})
	}

	record(c, h.recorder, model.ActionView, model.ResourceAdvisory, request.RequestNumber, "Viewed advisory request "+request.RequestNumber)
	return c.JSON(request)
}

// CreateRequest registers a new advisory request
// POST /api/v1/advisory
func (h *AdvisoryHandler) CreateRequest(c *fiber.Ctx) error {
	var req service.AdvisoryRequestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	userID, _ := c.Locals("user_id").(string)
	request, err := h.advisoryService.CreateRequest(&req, userID)
	if err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrRequestNumberTaken) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create advisory request"})
	}

	record(c, h.recorder, model.ActionCreate, model.ResourceAdvisory, request.RequestNumber, "Created advisory request "+request.RequestNumber)
	return c.Status(201).JSON(fiber.Map{
		"message": "Advisory request created successfully",
		"data":    request,
	})
}

// UpdateRequest updates an advisory request
// PUT /api/v1/advisory/:id
func (h *AdvisoryHandler) UpdateRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	var req service.AdvisoryRequestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	userID, _ := c.Locals("user_id").(string)
	request, err := h.advisoryService.UpdateRequest(id, &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrAdvisoryNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Advisory request not found"})
		}
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrRequestNumberTaken) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update advisory request"})
	}

	record(c, h.recorder, model.ActionUpdate, model.ResourceAdvisory, request.RequestNumber, "Updated advisory request "+request.RequestNumber)
	return c.JSON(fiber.Map{
		"message": "Advisory request updated successfully",
		"data":    request,
	})
}

// DeleteRequest removes an advisory request (admin only)
// DELETE /api/v1/advisory/:id
func (h *AdvisoryHandler) DeleteRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	if err := h.advisoryService.DeleteRequest(id); err != nil {
		if errors.Is(err, service.ErrAdvisoryNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Advisory request not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete advisory request"})
	}

	record(c, h.recorder, model.ActionDelete, model.ResourceAdvisory, id.String(), "Deleted advisory request")
	return c.JSON(fiber.Map{"message": "Advisory request deleted successfully"})
}
