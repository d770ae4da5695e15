package handler

import (
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DockHandler struct {
	service service.DockService
}

func NewDockHandler(s service.DockService) *DockHandler {
	return &DockHandler{service: s}
}

func (h *DockHandler) GetDocks(c *fiber.Ctx) error {
	docks, err := h.service.ListDocks()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(docks)
}

func (h *DockHandler) GetDock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid dock ID"})
	}

	dock, err := h.service.GetDockByID(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dock)
}

func (h *DockHandler) CreateDock(c *fiber.Ctx) error {
	var input service.CreateDockInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	dock, err := h.service.CreateDock(&input)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Dock created", "data": dock})
}

func (h *DockHandler) UpdateDock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid dock ID"})
	}

	var input service.UpdateDockInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	ok, err := h.service.UpdateDock(id, &input)
	if err != nil {
		return handleError(c, err)
	}
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Dock not found"})
	}
	return c.JSON(fiber.Map{"message": "Dock updated"})
}

func (h *DockHandler) ClearDock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid dock ID"})
	}

	ok, err := h.service.ClearDock(id)
	if err != nil {
		return handleError(c, err)
	}
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Dock not found"})
	}
	return c.JSON(fiber.Map{"message": "Dock cleared"})
}

func (h *DockHandler) DeleteDock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid dock ID"})
	}

	deleted, err := h.service.DeleteDock(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Dock deleted", "deleted": deleted})
}
