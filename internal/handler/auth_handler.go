package handler

import (
	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, resp)
}

type registerRequest struct {
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	FullName    string     `json:"full_name"`
	PhoneNumber string     `json:"phone_number"`
	Role        model.Role `json:"role"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	user := &model.User{
		Email:       req.Email,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	}
	created, err := h.service.Register(user, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 201, created.ToResponse())
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	if err := h.service.ResetPassword(req.Email, req.OldPassword, req.NewPassword); err != nil {
		return fail(c, err)
	}
	return ok(c, 200, true)
}

type validateTokenRequest struct {
	Token string `json:"token"`
}

func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req validateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	user, err := h.service.ValidateToken(req.Token)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, user)
}
