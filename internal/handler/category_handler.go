package handler

import (
	"go-depo-catalog/internal/middleware"
	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, categories)
}

func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid category ID"})
	}
	category, err := h.service.GetCategory(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, category)
}

// SaveCategory creates when no id is supplied and updates otherwise.
func (h *CategoryHandler) SaveCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	identity := middleware.IdentityFromCtx(c)

	if raw := c.Params("id"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid category ID"})
		}
		updated, err := h.service.UpdateCategory(identity, id, &category)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, 200, updated)
	}

	created, err := h.service.CreateCategory(identity, &category)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 201, created)
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid category ID"})
	}
	if err := h.service.DeleteCategory(middleware.IdentityFromCtx(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, 200, true)
}

func (h *CategoryHandler) ListSubCategories(c *fiber.Ctx) error {
	categoryID, err := optionalUUID(c.Query("category_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid category ID"})
	}
	subs, err := h.service.ListSubCategories(categoryID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, subs)
}

// SaveSubCategory creates when no id is supplied and updates otherwise.
func (h *CategoryHandler) SaveSubCategory(c *fiber.Ctx) error {
	var sub model.SubCategory
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid JSON"})
	}
	identity := middleware.IdentityFromCtx(c)

	if raw := c.Params("id"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid subcategory ID"})
		}
		updated, err := h.service.UpdateSubCategory(identity, id, &sub)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, 200, updated)
	}

	created, err := h.service.CreateSubCategory(identity, &sub)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 201, created)
}

func (h *CategoryHandler) DeleteSubCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Invalid subcategory ID"})
	}
	if err := h.service.DeleteSubCategory(middleware.IdentityFromCtx(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, 200, true)
}
