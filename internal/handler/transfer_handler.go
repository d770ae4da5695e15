package handler

import (
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransferHandler struct {
	service service.TransferService
}

func NewTransferHandler(s service.TransferService) *TransferHandler {
	return &TransferHandler{service: s}
}

func (h *TransferHandler) GetTransfers(c *fiber.Ctx) error {
	filter := repository.TransferFilter{
		Reference:      c.Query("reference"),
		Status:         c.Query("status"),
		FromLocationID: queryUint(c, "from_location_id"),
		ToLocationID:   queryUint(c, "to_location_id"),
	}

	transfers, err := h.service.ListTransfers(filter, parseSort(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(transfers)
}

func (h *TransferHandler) GetTransfer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transfer ID"})
	}

	transfer, err := h.service.GetTransferByID(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(transfer)
}

func (h *TransferHandler) CreateTransfer(c *fiber.Ctx) error {
	var input service.CreateTransferInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	transfer, err := h.service.CreateTransfer(&input)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Transfer created", "data": transfer})
}

func (h *TransferHandler) UpdateTransfer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transfer ID"})
	}

	var input service.UpdateTransferInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateTransfer(id, &input); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transfer updated"})
}

func (h *TransferHandler) DeleteTransfer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transfer ID"})
	}

	if err := h.service.DeleteTransfer(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transfer deleted"})
}

func (h *TransferHandler) CommitTransfer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transfer ID"})
	}

	if err := h.service.CommitTransfer(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transfer committed"})
}
