package handlers

import (
	"paydesk/internal/adapters/persistence/models"
	"paydesk/internal/core/services"
	"paydesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Create creates a new payment
// @Summary Create payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param body body services.CreatePaymentInput true "Payment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var input services.CreatePaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	payment, err := h.paymentService.Create(c.Context(), &input)
	if err != nil {
		return translateError(c, err)
	}

	return response.Created(c, "Payment created successfully", fiber.Map{
		"payment": payment.ToResponse(),
	})
}

// Get gets a payment by ID with its resolved client
// @Summary Get payment
// @Tags Payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid payment ID")
	}

	payment, err := h.paymentService.GetByID(c.Context(), id)
	if err != nil {
		return translateError(c, err)
	}

	return response.Success(c, "", fiber.Map{
		"payment": payment.ToResponse(),
	})
}

// List lists all payments with their resolved clients
// @Summary List payments
// @Tags Payments
// @Produce json
// @Success 200 {object} response.Response
// @Router /payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	payments, err := h.paymentService.List(c.Context())
	if err != nil {
		return translateError(c, err)
	}

	resp := make([]*models.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		resp = append(resp, payment.ToResponse())
	}

	return response.Success(c, "", fiber.Map{
		"payments": resp,
	})
}

// Update updates a payment
// @Summary Update payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param body body services.UpdatePaymentInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /payments/{id} [put]
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid payment ID")
	}

	var input services.UpdatePaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	payment, err := h.paymentService.Update(c.Context(), id, &input)
	if err != nil {
		return translateError(c, err)
	}

	return response.Success(c, "Payment updated successfully", fiber.Map{
		"payment": payment.ToResponse(),
	})
}

// Approve approves a pending payment; approving an approved payment is a
// no-op that still succeeds
// @Summary Approve payment
// @Tags Payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payments/{id}/approve [patch]
func (h *PaymentHandler) Approve(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid payment ID")
	}

	payment, err := h.paymentService.Approve(c.Context(), id)
	if err != nil {
		return translateError(c, err)
	}

	return response.Success(c, "Payment approved", fiber.Map{
		"payment": payment.ToResponse(),
	})
}

// Delete deletes a payment
// @Summary Delete payment
// @Tags Payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid payment ID")
	}

	if err := h.paymentService.Delete(c.Context(), id); err != nil {
		return translateError(c, err)
	}

	return response.Success(c, "Payment deleted successfully", nil)
}
