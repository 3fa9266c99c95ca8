package handler

import (
	"go-dropship-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	authService service.AuthService
	userService service.UserService
}

func NewUserHandler(authService service.AuthService, userService service.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// Register handles POST /user/register
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, user)
}

// Login handles POST /user/login and issues the JWT
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, result)
}

// ListUsers handles GET /user/list
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers()
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, users)
}

// GetUser handles GET /user/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, user)
}

// UpdateUser handles PUT /user/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	user, err := h.userService.UpdateUser(id, &req, actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, user)
}

// DeleteUser handles DELETE /user/delete/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}

	if err := h.userService.DeleteUser(id); err != nil {
		return respondServiceError(c, err)
	}
	return respond(c, 200, fiber.Map{"message": "User deleted successfully"})
}
