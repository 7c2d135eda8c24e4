package handler

import (
	"time"

	"go-legal-cms/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AuditHandler struct {
	auditRepo repository.AuditRepository
}

func NewAuditHandler(auditRepo repository.AuditRepository) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo}
}

// ListLogs returns the audit trail, newest first
// GET /api/v1/audit?q=&action=&from=&to=
func (h *AuditHandler) ListLogs(c *fiber.Ctx) error {
	filter := repository.AuditFilter{
		Query:  c.Query("q"),
		Action: c.Query("action"),
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid 'from' timestamp, use RFC3339"})
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid 'to' timestamp, use RFC3339"})
		}
		filter.To = &to
	}

	logs, err := h.auditRepo.Find(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch audit logs"})
	}

	return c.JSON(fiber.Map{
		"items": logs,
		"count": len(logs),
	})
}
