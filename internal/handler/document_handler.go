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

type DocumentHandler struct {
	documentService service.DocumentService
	recorder        *audit.Recorder
}

func NewDocumentHandler(documentService service.DocumentService, recorder *audit.Recorder) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		recorder:        recorder,
	}
}

// ListDocuments returns the document vault, filtered
// GET /api/v1/documents?q=&type=&status=&case_id=
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	filter := repository.DocumentFilter{
		Query:  c.Query("q"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}
	if caseIDStr := c.Query("case_id"); caseIDStr != "" {
		caseID, err := uuid.Parse(caseIDStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid case_id"})
		}
		filter.CaseID = &caseID
	}

	docs, err := h.documentService.ListDocuments(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch documents"})
	}

	return c.JSON(fiber.Map{
		"items": docs,
		"count": len(docs),
	})
}

// GetDocument returns document metadata
// GET /api/v1/documents/:id
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	doc, err := h.documentService.GetDocument(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Document not found"})
	}

	record(c, h.recorder, model.ActionView, model.ResourceDocument, doc.Name, "Viewed document "+doc.Name)
	return c.JSON(doc)
}

// CreateDocument records uploaded document metadata
// POST /api/v1/documents
func (h *DocumentHandler) CreateDocument(c *fiber.Ctx) error {
	var req service.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	userName, _ := c.Locals("user_name").(string)
	doc, err := h.documentService.CreateDocument(&req, userName)
	if err != nil {
		if errors.Is(err, service.ErrCaseNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Related case not found"})
		}
		if errors.Is(err, service.ErrValidation) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record document"})
	}

	record(c, h.recorder, model.ActionCreate, model.ResourceDocument, doc.Name, "Uploaded document "+doc.Name)
	return c.Status(201).JSON(fiber.Map{
		"message": "Document recorded successfully",
		"data":    doc,
	})
}

// UpdateDocument updates document metadata
// PUT /api/v1/documents/:id
func (h *DocumentHandler) UpdateDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	var req service.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	userID, _ := c.Locals("user_id").(string)
	doc, err := h.documentService.UpdateDocument(id, &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Document not found"})
		}
		if errors.Is(err, service.ErrCaseNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Related case not found"})
		}
		if errors.Is(err, service.ErrValidation) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update document"})
	}

	record(c, h.recorder, model.ActionUpdate, model.ResourceDocument, doc.Name, "Updated document "+doc.Name)
	return c.JSON(fiber.Map{
		"message": "Document updated successfully",
		"data":    doc,
	})
}

// DeleteDocument removes document metadata (admin only)
// DELETE /api/v1/documents/:id
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	if err := h.documentService.DeleteDocument(id); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Document not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete document"})
	}

	record(c, h.recorder, model.ActionDelete, model.ResourceDocument, id.String(), "Deleted document")
	return c.JSON(fiber.Map{"message": "Document deleted successfully"})
}

// Download returns the metadata for a download and records the access.
// File content lives outside this system.
// GET /api/v1/documents/:id/download
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	doc, err := h.documentService.GetDocument(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Document not found"})
	}

	record(c, h.recorder, model.ActionDownload, model.ResourceDocument, doc.Name, "Downloaded document "+doc.Name)
	return c.JSON(doc)
}
