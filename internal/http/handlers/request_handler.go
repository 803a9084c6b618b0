package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "aura/internal/log"
	"aura/internal/services"
	"aura/internal/validate"
)

// RequestHandler drives the three-step bespoke-design wizard over the
// session's draft.
type RequestHandler struct {
	Requests *services.RequestService
	Auth     *services.AuthService
}

func wizardError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrDescriptionRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "please describe your vision"})
	case errors.Is(err, services.ErrDueDateRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "please pick a due date"})
	case errors.Is(err, services.ErrWizardOutOfOrder):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "complete the previous step first"})
	default:
		applog.Error(c, "request.wizard.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save your request"})
	}
}

// GET /api/v1/request
func (h *RequestHandler) Draft(c *fiber.Ctx) error {
	d, err := h.Requests.Draft(ensureSID(c))
	if err != nil {
		return wizardError(c, err)
	}
	return c.JSON(d)
}

type wizardBody struct {
	Description string `json:"description"`
	Style       string `json:"style"`
	Quantity    int    `json:"quantity"`
	DueDate     string `json:"dueDate"`
	Image       string `json:"image"`
}

// POST /api/v1/request/step1
func (h *RequestHandler) Step1(c *fiber.Ctx) error {
	var body wizardBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	d, err := h.Requests.SubmitStep1(ensureSID(c), body.Description)
	if err != nil {
		return wizardError(c, err)
	}
	return c.JSON(d)
}

// POST /api/v1/request/step2
func (h *RequestHandler) Step2(c *fiber.Ctx) error {
	var body wizardBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	d, err := h.Requests.SubmitStep2(ensureSID(c), body.Style, body.Quantity)
	if err != nil {
		return wizardError(c, err)
	}
	return c.JSON(d)
}

// POST /api/v1/request/photo
func (h *RequestHandler) AttachPhoto(c *fiber.Ctx) error {
	var body wizardBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	uri, ok := validate.DataURI(body.Image)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "image"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported image payload"})
	}
	d, err := h.Requests.AttachPhoto(ensureSID(c), uri)
	if err != nil {
		return wizardError(c, err)
	}
	return c.JSON(d)
}

// DELETE /api/v1/request/photo
func (h *RequestHandler) RemovePhoto(c *fiber.Ctx) error {
	d, err := h.Requests.RemovePhoto(ensureSID(c))
	if err != nil {
		return wizardError(c, err)
	}
	return c.JSON(d)
}

// POST /api/v1/request/back
func (h *RequestHandler) Back(c *fiber.Ctx) error {
	d, err := h.Requests.Back(ensureSID(c))
	if err != nil {
		return wizardError(c, err)
	}
	return c.JSON(d)
}

// POST /api/v1/request/submit
func (h *RequestHandler) Submit(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body wizardBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	if body.DueDate != "" {
		if _, ok := validate.DueDate(body.DueDate); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "due date must be YYYY-MM-DD"})
		}
	}

	email := ""
	if u := sessionUser(c); u != nil {
		email = u.Email
	} else if cur, err := h.Auth.Current(sid); err == nil && cur != nil {
		email = cur.Email
	}

	req, err := h.Requests.Submit(c.UserContext(), sid, body.DueDate, email)
	if err != nil {
		return wizardError(c, err)
	}
	applog.Audit(c, "request.submitted", map[string]any{"email": email, "due": req.DueDate})
	return c.Status(fiber.StatusCreated).JSON(req)
}
