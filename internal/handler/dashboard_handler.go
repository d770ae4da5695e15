package handler

import (
	"time"

	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stats)
}

func (h *DashboardHandler) GetTransferMovement(c *fiber.Ctx) error {
	rangeParam := c.Query("range", "7d") // Default 7 days
	now := time.Now()
	var startDate time.Time

	switch rangeParam {
	case "7d":
		startDate = now.AddDate(0, 0, -7)
	case "1m":
		startDate = now.AddDate(0, -1, 0)
	case "3m":
		startDate = now.AddDate(0, -3, 0)
	case "6m":
		startDate = now.AddDate(0, -6, 0)
	case "12m":
		startDate = now.AddDate(0, -12, 0)
	default:
		startDate = now.AddDate(0, 0, -7)
	}

	data, err := h.service.GetTransferMovement(startDate, now)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(data)
}
