package middleware

import (
	"strings"

	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/repository"
	"go-depo-catalog/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// RequireAuth validates the JWT and stores the actor's Identity in Locals.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"ok": false, "error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"ok": false, "error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"ok": false, "error": "Invalid or expired token"})
		}

		// Strict session: claims must match the stored token version.
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"ok": false, "error": "User not found"})
		}
		if !user.IsActive {
			return c.Status(403).JSON(fiber.Map{"ok": false, "error": "User account is inactive"})
		}
		if user.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"ok": false, "error": "Session expired (logged in on another device)"})
		}

		c.Locals(identityKey, &model.Identity{
			UserID:   user.ID,
			Email:    user.Email,
			Name:     user.FullName,
			Role:     user.Role,
			VendorID: user.VendorID,
		})
		return c.Next()
	}
}

// IdentityFromCtx returns the Identity set by RequireAuth, or nil.
func IdentityFromCtx(c *fiber.Ctx) *model.Identity {
	identity, _ := c.Locals(identityKey).(*model.Identity)
	return identity
}

// RequireRole gates a route to the listed roles.
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFromCtx(c)
		if identity == nil {
			return c.Status(401).JSON(fiber.Map{"ok": false, "error": "Authentication required"})
		}
		for _, r := range roles {
			if identity.Role == r {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"ok": false, "error": "Forbidden: insufficient role"})
	}
}
