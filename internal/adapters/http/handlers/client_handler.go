package handlers

import (
	"paydesk/internal/adapters/persistence/models"
	"paydesk/internal/core/services"
	"paydesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClientHandler handles client endpoints
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// Create creates a new client
// @Summary Create client
// @Tags Clients
// @Accept json
// @Produce json
// @Param body body services.CreateClientInput true "Client data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var input services.CreateClientInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	client, err := h.clientService.Create(c.Context(), &input)
	if err != nil {
		return translateError(c, err)
	}

	return response.Created(c, "Client created successfully", fiber.Map{
		"client": client.ToResponse(),
	})
}

// Get gets a client by ID
// @Summary Get client
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid client ID")
	}

	client, err := h.clientService.GetByID(c.Context(), id)
	if err != nil {
		return translateError(c, err)
	}

	return response.Success(c, "", fiber.Map{
		"client": client.ToResponse(),
	})
}

// List lists all clients
// @Summary List clients
// @Tags Clients
// @Produce json
// @Success 200 {object} response.Response
// @Router /clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.clientService.List(c.Context())
	if err != nil {
		return translateError(c, err)
	}

	resp := make([]*models.ClientResponse, 0, len(clients))
	for _, client := range clients {
		resp = append(resp, client.ToResponse())
	}

	return response.Success(c, "", fiber.Map{
		"clients": resp,
	})
}

// Update updates a client
// @Summary Update client
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param body body services.UpdateClientInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid client ID")
	}

	var input services.UpdateClientInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	client, err := h.clientService.Update(c.Context(), id, &input)
	if err != nil {
		return translateError(c, err)
	}

	return response.Success(c, "Client updated successfully", fiber.Map{
		"client": client.ToResponse(),
	})
}

// Delete deletes a client
// @Summary Delete client
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid client ID")
	}

	if err := h.clientService.Delete(c.Context(), id); err != nil {
		return translateError(c, err)
	}

	return response.Success(c, "Client deleted successfully", nil)
}
