package handler

import (
	"strconv"

	"go-legal-cms/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetMetrics returns the overview metric cards
// GET /api/v1/dashboard/metrics
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := h.service.GetMetrics()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard metrics"})
	}

	return c.JSON(metrics)
}

// UpcomingHearings returns the next hearings, soonest first
// Query params: days (default 7), limit (default 4)
func (h *DashboardHandler) UpcomingHearings(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}
	limit, err := strconv.Atoi(c.Query("limit", "4"))
	if err != nil || limit < 0 {
		limit = 4
	}

	hearings, err := h.service.UpcomingHearings(days, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch upcoming hearings"})
	}

	return c.JSON(fiber.Map{
		"period": days,
		"items":  hearings,
		"count":  len(hearings),
	})
}

// RiskMonitor returns cases with a hearing inside the urgent window
// GET /api/v1/dashboard/risk
func (h *DashboardHandler) RiskMonitor(c *fiber.Ctx) error {
	entries, err := h.service.RiskMonitor()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch risk monitor"})
	}

	return c.JSON(fiber.Map{
		"items": entries,
		"count": len(entries),
	})
}
