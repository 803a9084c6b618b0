package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "aura/internal/log"
	"aura/internal/services"
	"aura/internal/validate"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/catalog?q=&category=
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	q := validate.Query(c.Query("q"))
	category := c.Query("category", "All")

	products, err := h.Catalog.Filter(q, category)
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load catalog"})
	}
	return c.JSON(fiber.Map{"products": products})
}

// GET /api/v1/catalog/:id
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "this item is no longer available"})
	}
	p, err := h.Catalog.Get(id)
	if err != nil || p.ID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "this item is no longer available"})
	}
	return c.JSON(p)
}
