package handler

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	service service.LocationService
}

func NewLocationHandler(s service.LocationService) *LocationHandler {
	return &LocationHandler{service: s}
}

func (h *LocationHandler) GetLocations(c *fiber.Ctx) error {
	filter := repository.LocationFilter{
		WarehouseID: queryUint(c, "warehouse_id"),
		Code:        c.Query("code"),
	}

	locations, err := h.service.ListLocations(filter, parseSort(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(locations)
}

func (h *LocationHandler) GetLocation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid location ID"})
	}

	location, err := h.service.GetLocationByID(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(location)
}

func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	var location model.Location
	if err := c.BodyParser(&location); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateLocation(&location); err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Location created", "data": location})
}

func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid location ID"})
	}

	var location model.Location
	if err := c.BodyParser(&location); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateLocation(id, &location)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Location updated", "data": updated})
}

func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid location ID"})
	}

	if err := h.service.DeleteLocation(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Location deleted"})
}
