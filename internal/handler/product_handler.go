package handler

import (
	"go-dropship-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

// CreateProduct handles POST /product
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	detail, err := h.service.CreateProduct(&req, actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return respond(c, 200, detail)
}

// ListProducts handles GET /product/list
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	details, err := h.service.ListProducts()
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, details)
}

// GetProduct handles GET /product/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid product ID")
	}

	detail, err := h.service.GetProduct(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, detail)
}

// UpdateProduct handles PUT /product/update/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid product ID")
	}

	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	detail, err := h.service.UpdateProduct(id, &req, actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, detail)
}

// DeleteProduct handles DELETE /product/delete/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid product ID")
	}

	if err := h.service.DeleteProduct(id, actor(c)); err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, fiber.Map{"message": "Product deleted successfully"})
}
