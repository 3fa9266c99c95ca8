package handler

import (
	"go-dropship-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

// CreateSupplier handles POST /supplier
func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var req service.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	supplier, err := h.service.CreateSupplier(&req, actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, supplier)
}

// ListSuppliers handles GET /supplier/list
func (h *SupplierHandler) ListSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.ListSuppliers()
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, suppliers)
}

// GetSupplier handles GET /supplier/:id
func (h *SupplierHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid supplier ID")
	}

	supplier, err := h.service.GetSupplier(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, supplier)
}

// UpdateSupplier handles PUT /supplier/update/:id
func (h *SupplierHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid supplier ID")
	}

	var req service.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	supplier, err := h.service.UpdateSupplier(id, &req, actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, supplier)
}

// DeleteSupplier handles DELETE /supplier/delete/:id
func (h *SupplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid supplier ID")
	}

	if err := h.service.DeleteSupplier(id); err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, fiber.Map{"message": "Supplier deleted successfully"})
}
