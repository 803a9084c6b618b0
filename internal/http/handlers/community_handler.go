package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"aura/internal/domain"
	applog "aura/internal/log"
	"aura/internal/services"
	"aura/internal/validate"
)

type CommunityHandler struct {
	Community *services.CommunityService
	Auth      *services.AuthService
}

// GET /api/v1/community
func (h *CommunityHandler) List(c *fiber.Ctx) error {
	posts, err := h.Community.List()
	if err != nil {
		applog.Error(c, "community.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load stories"})
	}
	return c.JSON(fiber.Map{"posts": posts})
}

type communityPostBody struct {
	Name     string `json:"name"`
	Story    string `json:"story"`
	Category string `json:"category"`
}

// POST /api/v1/community
func (h *CommunityHandler) Add(c *fiber.Ctx) error {
	var body communityPostBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	name, ok := validate.Name(body.Name)
	if !ok || strings.TrimSpace(body.Story) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and story are required"})
	}

	email := ""
	if u, err := h.Auth.Current(c.Cookies("sid")); err == nil && u != nil {
		email = u.Email
	}

	post, err := h.Community.AddPost(c.UserContext(), name, strings.TrimSpace(body.Story), body.Category, email)
	if err != nil {
		applog.Error(c, "community.add.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not share your story"})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

type contactBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// POST /api/v1/contact
func (h *CommunityHandler) Contact(c *fiber.Ctx) error {
	var body contactBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	email, okEmail := validate.Email(body.Email)
	name, okName := validate.Name(body.Name)
	if !okEmail || !okName || strings.TrimSpace(body.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name, email and message are required"})
	}

	err := h.Community.SendMessage(c.UserContext(), domain.ContactMessage{
		Name: name, Email: email, Message: strings.TrimSpace(body.Message),
	})
	if err != nil {
		applog.Error(c, "contact.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not send your message"})
	}
	applog.Info(c, "contact.received", map[string]any{"email": email})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}
