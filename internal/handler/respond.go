package handler

import (
	"go-depo-catalog/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func statusOf(err error) int {
	switch apperr.CodeOf(err) {
	case apperr.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case apperr.CodeForbidden:
		return fiber.StatusForbidden
	case apperr.CodeValidation:
		return fiber.StatusBadRequest
	case apperr.CodeNotFound:
		return fiber.StatusNotFound
	case apperr.CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	msg := err.Error()
	if apperr.CodeOf(err) == apperr.CodeInternal {
		// Internal details stay in the logs.
		msg = "Internal Server Error"
	}
	return c.Status(statusOf(err)).JSON(fiber.Map{"ok": false, "error": msg})
}

func ok(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{"ok": true, "data": data})
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// optionalUUID parses a query/body vendor id, returning nil when absent.
func optionalUUID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
