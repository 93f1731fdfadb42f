package handler

import (
	"go-depo-catalog/internal/middleware"
	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LookupHandler struct {
	service service.LookupService
}

func NewLookupHandler(s service.LookupService) *LookupHandler {
	return &LookupHandler{service: s}
}

func (h *LookupHandler) ListCurrencies(c *fiber.Ctx) error {
	currencies, err := h.service.ListCurrencies()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, currencies)
}

func (h *LookupHandler) CreateCurrency(c *fiber.Ctx) error {
	var currency model.Currency
	if err := c.BodyParser(&currency); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	created, err := h.service.CreateCurrency(middleware.IdentityFromCtx(c), &currency)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 201, created)
}

func (h *LookupHandler) UpdateCurrency(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid currency ID"})
	}
	var currency model.Currency
	if err := c.BodyParser(&currency); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	updated, err := h.service.UpdateCurrency(middleware.IdentityFromCtx(c), id, &currency)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, updated)
}

func (h *LookupHandler) DeleteCurrency(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid currency ID"})
	}
	if err := h.service.DeleteCurrency(middleware.IdentityFromCtx(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, 200, true)
}

func (h *LookupHandler) ListUnitTypes(c *fiber.Ctx) error {
	units, err := h.service.ListUnitTypes()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, units)
}

func (h *LookupHandler) CreateUnitType(c *fiber.Ctx) error {
	var unit model.UnitType
	if err := c.BodyParser(&unit); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	created, err := h.service.CreateUnitType(middleware.IdentityFromCtx(c), &unit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 201, created)
}

func (h *LookupHandler) UpdateUnitType(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid unit type ID"})
	}
	var unit model.UnitType
	if err := c.BodyParser(&unit); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	updated, err := h.service.UpdateUnitType(middleware.IdentityFromCtx(c), id, &unit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, updated)
}

func (h *LookupHandler) DeleteUnitType(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid unit type ID"})
	}
	if err := h.service.DeleteUnitType(middleware.IdentityFromCtx(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, 200, true)
}
