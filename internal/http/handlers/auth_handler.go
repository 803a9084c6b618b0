package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "aura/internal/log"
	"aura/internal/services"
	"aura/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	AdminKey string `json:"adminKey"`
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body authRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	email, ok := validate.Email(body.Email)
	if !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"email": body.Email, "reason": "bad_format"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
	}

	role, err := h.Auth.Login(c.UserContext(), sid, email)
	if err != nil {
		applog.Error(c, "auth.login.fail", err, map[string]any{"email": email})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not sign in"})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email, "role": role})
	return c.JSON(fiber.Map{"email": email, "role": role})
}

// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body authRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	email, ok := validate.Email(body.Email)
	if !ok {
		applog.Security(c, "auth.signup.fail", map[string]any{"email": body.Email, "reason": "bad_format"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
	}

	role, err := h.Auth.Signup(c.UserContext(), sid, email, body.Role, body.AdminKey, body.Password)
	if errors.Is(err, services.ErrBadAdminKey) {
		applog.Security(c, "auth.signup.badkey", map[string]any{"email": email})
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid staff access key"})
	}
	if err != nil {
		applog.Error(c, "auth.signup.fail", err, map[string]any{"email": email})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not sign up"})
	}

	applog.Audit(c, "auth.signup.success", map[string]any{"email": email, "role": role})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"email": email, "role": role})
}

// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sid := c.Cookies("sid")
	if sid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not signed in"})
	}
	u, err := h.Auth.Current(sid)
	if err != nil || u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not signed in"})
	}
	return c.JSON(fiber.Map{"email": u.Email, "role": u.Role})
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.JSON(fiber.Map{"ok": true})
}
