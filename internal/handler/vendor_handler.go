package handler

import (
	"go-depo-catalog/internal/middleware"
	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
)

type VendorHandler struct {
	service service.VendorService
}

func NewVendorHandler(s service.VendorService) *VendorHandler {
	return &VendorHandler{service: s}
}

func (h *VendorHandler) ListVendors(c *fiber.Ctx) error {
	vendors, err := h.service.ListVendors()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, vendors)
}

func (h *VendorHandler) GetVendor(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid vendor ID"})
	}
	vendor, err := h.service.GetVendor(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, vendor)
}

func (h *VendorHandler) CreateDepo(c *fiber.Ctx) error {
	var vendor model.Vendor
	if err := c.BodyParser(&vendor); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	created, err := h.service.CreateDepo(middleware.IdentityFromCtx(c), &vendor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 201, created)
}

func (h *VendorHandler) CreateMyStore(c *fiber.Ctx) error {
	var vendor model.Vendor
	if err := c.BodyParser(&vendor); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	created, err := h.service.CreateMyStore(middleware.IdentityFromCtx(c), &vendor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 201, created)
}

func (h *VendorHandler) UpdateVendor(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid vendor ID"})
	}
	var vendor model.Vendor
	if err := c.BodyParser(&vendor); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	updated, err := h.service.UpdateVendor(middleware.IdentityFromCtx(c), id, &vendor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, updated)
}

func (h *VendorHandler) DeleteVendor(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid vendor ID"})
	}
	if err := h.service.DeleteVendor(middleware.IdentityFromCtx(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, 200, true)
}
