package handler

import (
	"go-depo-catalog/pkg/imagestore"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	images *imagestore.Store
}

func NewUploadHandler(images *imagestore.Store) *UploadHandler {
	return &UploadHandler{images: images}
}

// Upload stores an image and returns its public URL.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Missing file"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Unreadable file"})
	}
	defer file.Close()

	url, err := h.images.Upload(c.Context(), file)
	if err != nil {
		if err == imagestore.ErrNotConfigured {
			return c.Status(503).JSON(fiber.Map{"ok": false, "error": "Image store not configured"})
		}
		return c.Status(502).JSON(fiber.Map{"ok": false, "error": "Upload failed"})
	}
	return ok(c, 201, fiber.Map{"url": url})
}
