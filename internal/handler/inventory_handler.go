package handler

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) GetInventories(c *fiber.Ctx) error {
	filter := repository.InventoryFilter{
		ItemID:     queryUint(c, "item_id"),
		LocationID: queryUint(c, "location_id"),
	}

	inventories, err := h.service.ListInventories(filter)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(inventories)
}

func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid inventory ID"})
	}

	inv, err := h.service.GetInventoryByID(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(inv)
}

func (h *InventoryHandler) CreateInventory(c *fiber.Ctx) error {
	var inv model.Inventory
	if err := c.BodyParser(&inv); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateInventory(&inv); err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Inventory created", "data": inv})
}

func (h *InventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid inventory ID"})
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateInventory(id, body.Quantity)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Inventory updated", "data": updated})
}

func (h *InventoryHandler) DeleteInventory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid inventory ID"})
	}

	if err := h.service.DeleteInventory(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Inventory deleted"})
}
