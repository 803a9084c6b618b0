package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"aura/internal/domain"
	"aura/internal/gemini"
	applog "aura/internal/log"
	"aura/internal/services"
	"aura/internal/sheets"
	"aura/internal/validate"
)

// AdminHandler is the back office: catalog CRUD, order history, sales
// reports, and the remote user/request registries. Every route is behind
// RequireAdmin.
type AdminHandler struct {
	Catalog  *services.CatalogService
	Order    *services.OrderService
	Report   *services.ReportService
	Sheets   *sheets.Client
	Enhancer *gemini.Enhancer
}

func parseProduct(c *fiber.Ctx) (domain.Product, string) {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return p, "bad request body"
	}
	if _, ok := validate.SKU(p.SKU); !ok {
		return p, "invalid sku"
	}
	if strings.TrimSpace(p.Name) == "" {
		return p, "name is required"
	}
	if !domain.ValidCategory(p.Category) {
		return p, "unknown category"
	}
	if p.Price < 0 {
		return p, "price must not be negative"
	}
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	return p, ""
}

// POST /api/v1/admin/products
func (h *AdminHandler) AddProduct(c *fiber.Ctx) error {
	p, msg := parseProduct(c)
	if msg != "" {
		applog.Security(c, "validation.fail", map[string]any{"field": "product", "reason": msg})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	added, err := h.Catalog.Add(c.UserContext(), p)
	if err != nil {
		applog.Error(c, "admin.product.add.fail", err, map[string]any{"sku": p.SKU})
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "could not add product"})
	}
	applog.Audit(c, "admin.product.add", map[string]any{"product": added.ID, "sku": added.SKU})
	return c.Status(fiber.StatusCreated).JSON(added)
}

// PUT /api/v1/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing id"})
	}
	p, msg := parseProduct(c)
	if msg != "" {
		applog.Security(c, "validation.fail", map[string]any{"field": "product", "reason": msg})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	p.ID = id
	updated, err := h.Catalog.Update(c.UserContext(), p)
	if err != nil {
		applog.Error(c, "admin.product.update.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "could not update product"})
	}
	applog.Audit(c, "admin.product.update", map[string]any{"product": id, "quantity": updated.Quantity})
	return c.JSON(updated)
}

// DELETE /api/v1/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing id"})
	}
	if err := h.Catalog.Remove(c.UserContext(), id); err != nil {
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not delete product"})
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	return c.JSON(fiber.Map{"ok": true})
}

// GET /api/v1/admin/orders
func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	orders, err := h.Order.All()
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load orders"})
	}
	return c.JSON(fiber.Map{"orders": orders})
}

// GET /api/v1/admin/report
func (h *AdminHandler) SalesReport(c *fiber.Ctx) error {
	report, err := h.Report.Generate(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.report.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not build report"})
	}
	applog.Audit(c, "admin.report.generated", map[string]any{"report": report.ReportID})
	return c.JSON(report)
}

// GET /api/v1/admin/users
//
// The user registry lives in the remote store; an unreachable or
// unconfigured endpoint reads as an empty list, not an error.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, _ := h.Sheets.FetchUsers(c.UserContext())
	return c.JSON(fiber.Map{"users": users})
}

// GET /api/v1/admin/requests
func (h *AdminHandler) Requests(c *fiber.Ctx) error {
	requests, _ := h.Sheets.FetchRequests(c.UserContext())
	return c.JSON(fiber.Map{"requests": requests})
}

type enhanceBody struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// POST /api/v1/admin/enhance
func (h *AdminHandler) Enhance(c *fiber.Ctx) error {
	var body enhanceBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	desc := h.Enhancer.Enhance(c.UserContext(), body.Name, body.Category)
	return c.JSON(fiber.Map{"description": desc})
}
