package handler

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	service service.ClientService
}

func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.service.ListClients(c.Query("name"), parseSort(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(clients)
}

func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	client, err := h.service.GetClientByID(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(client)
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var client model.Client
	if err := c.BodyParser(&client); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateClient(&client); err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Client created", "data": client})
}

func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	var client model.Client
	if err := c.BodyParser(&client); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateClient(id, &client)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Client updated", "data": updated})
}

func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	if err := h.service.DeleteClient(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Client deleted"})
}

func (h *ClientHandler) AddContact(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	var contact model.Contact
	if err := c.BodyParser(&contact); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.AddContact(id, &contact); err != nil {
		return handleError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Contact added", "data": contact})
}

func (h *ClientHandler) DeleteContact(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid contact ID"})
	}

	if err := h.service.DeleteContact(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Contact deleted"})
}
