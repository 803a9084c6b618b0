package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "aura/internal/log"
	"aura/internal/repos"
	"aura/internal/services"
)

type OrderHandler struct {
	Order *services.OrderService
	Auth  *services.AuthService
}

func sessionUser(c *fiber.Ctx) *repos.SessionUser {
	u, _ := c.Locals("user").(*repos.SessionUser)
	return u
}

// POST /api/v1/checkout
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	u := sessionUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "sign in required"})
	}

	order, err := h.Order.Checkout(c.UserContext(), sid, u.Email)
	if errors.Is(err, services.ErrEmptyCart) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "your bag is empty"})
	}
	if err != nil {
		applog.Error(c, "order.checkout.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not place order"})
	}

	applog.Audit(c, "order.placed", map[string]any{"order": order.ID, "total": order.Total, "email": u.Email})
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GET /api/v1/orders
func (h *OrderHandler) History(c *fiber.Ctx) error {
	u := sessionUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "sign in required"})
	}
	orders, err := h.Order.History(u.Email)
	if err != nil {
		applog.Error(c, "order.history.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load orders"})
	}
	return c.JSON(fiber.Map{"orders": orders})
}
