package handler

import (
	"go-dropship-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	service service.LedgerService
}

func NewTransactionHandler(s service.LedgerService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// CreateTransaction handles POST /transaction
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req service.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	detail, err := h.service.CreateTransaction(&req, actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 201, detail)
}

// ListTransactions handles GET /transaction/list
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	details, err := h.service.ListTransactions()
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, details)
}

// GetTransaction handles GET /transaction/:id
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid transaction ID")
	}

	detail, err := h.service.GetTransaction(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, detail)
}

// UpdateTransaction handles PUT /transaction/:id
func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid transaction ID")
	}

	var req service.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	detail, err := h.service.UpdateTransaction(id, &req, actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, detail)
}

// DeleteTransaction handles DELETE /transaction/:id (void, row stays readable)
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid transaction ID")
	}

	if err := h.service.DeleteTransaction(id, actor(c)); err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, fiber.Map{"message": "Transaction deleted successfully"})
}
