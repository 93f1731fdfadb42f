package handler

import (
	"go-depo-catalog/internal/middleware"
	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// ListProducts is the vendor-dashboard listing: scope-filtered per role.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	requested, err := optionalUUID(c.Query("vendor_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid vendor ID"})
	}
	products, err := h.service.ListProducts(middleware.IdentityFromCtx(c), requested)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, products)
}

// ListPublished is the public storefront listing.
func (h *CatalogHandler) ListPublished(c *fiber.Ctx) error {
	vendorID, err := optionalUUID(c.Query("vendor_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid vendor ID"})
	}
	products, err := h.service.ListPublished(vendorID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, products)
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid product ID"})
	}
	detail, err := h.service.GetProduct(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, detail)
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	created, err := h.service.CreateProduct(middleware.IdentityFromCtx(c), &product)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 201, created)
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid product ID"})
	}
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	updated, err := h.service.UpdateProduct(middleware.IdentityFromCtx(c), id, &product)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, updated)
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid product ID"})
	}
	if err := h.service.DeleteProduct(middleware.IdentityFromCtx(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, 200, true)
}
