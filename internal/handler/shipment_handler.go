package handler

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ShipmentHandler struct {
	service service.ShipmentService
}

func NewShipmentHandler(s service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: s}
}

func (h *ShipmentHandler) GetShipments(c *fiber.Ctx) error {
	filter := repository.ShipmentFilter{
		Reference:   c.Query("reference"),
		CarrierCode: c.Query("carrier_code"),
		Status:      c.Query("status"),
	}

	shipments, err := h.service.ListShipments(filter, parseSort(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(shipments)
}

func (h *ShipmentHandler) GetShipment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shipment ID"})
	}

	shipment, err := h.service.GetShipmentByID(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(shipment)
}

func (h *ShipmentHandler) CreateShipment(c *fiber.Ctx) error {
	var shipment model.Shipment
	if err := c.BodyParser(&shipment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateShipment(&shipment); err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Shipment created", "data": shipment})
}

func (h *ShipmentHandler) UpdateShipment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shipment ID"})
	}

	var shipment model.Shipment
	if err := c.BodyParser(&shipment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateShipment(id, &shipment)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shipment updated", "data": updated})
}

func (h *ShipmentHandler) DeleteShipment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shipment ID"})
	}

	if err := h.service.DeleteShipment(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shipment deleted"})
}
