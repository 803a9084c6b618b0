package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"aura/internal/config"
	"aura/internal/http/handlers"
	"aura/internal/repos"
	"aura/internal/services"
	"aura/internal/sheets"
)

// Minimal app with the full API surface, an in-memory store, and the sheet
// client in local simulation mode.
func newAPIApp(t *testing.T) (*fiber.App, *sqlx.DB, *repos.UserRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	sh := sheets.New("")
	userRepo := repos.NewUserRepo(db)
	authSvc := services.NewAuthService(userRepo, sh, "AURA2024")

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.Current(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})

	deps := handlers.NewDeps(db, config.Config{GeminiModel: "gemini-3-flash-preview"}, sh, authSvc)
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", deps.AuthHandler.Login)
	auth.Post("/signup", deps.AuthHandler.Signup)
	auth.Post("/logout", deps.AuthHandler.Logout)
	auth.Get("/me", deps.AuthHandler.Me)

	api.Get("/catalog", deps.CatalogHandler.List)
	api.Get("/catalog/:id", deps.CatalogHandler.Detail)

	api.Post("/cart", deps.CartHandler.Add)
	api.Get("/cart", deps.CartHandler.View)
	api.Delete("/cart/:productId", deps.CartHandler.Remove)
	api.Delete("/cart", deps.CartHandler.Clear)
	api.Post("/checkout", handlers.RequireUser(authSvc), deps.OrderHandler.Checkout)
	api.Get("/orders", handlers.RequireUser(authSvc), deps.OrderHandler.History)

	req := api.Group("/request")
	req.Get("/", deps.RequestHandler.Draft)
	req.Post("/step1", deps.RequestHandler.Step1)
	req.Post("/step2", deps.RequestHandler.Step2)
	req.Post("/photo", deps.RequestHandler.AttachPhoto)
	req.Delete("/photo", deps.RequestHandler.RemovePhoto)
	req.Post("/back", deps.RequestHandler.Back)
	req.Post("/submit", deps.RequestHandler.Submit)

	api.Get("/community", deps.CommunityHandler.List)
	api.Post("/community", deps.CommunityHandler.Add)
	api.Post("/contact", deps.CommunityHandler.Contact)

	admin := api.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Post("/products", deps.AdminHandler.AddProduct)
	admin.Put("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Delete("/products/:id", deps.AdminHandler.DeleteProduct)
	admin.Get("/orders", deps.AdminHandler.Orders)
	admin.Get("/report", deps.AdminHandler.SalesReport)
	admin.Get("/users", deps.AdminHandler.Users)
	admin.Get("/requests", deps.AdminHandler.Requests)
	admin.Post("/enhance", deps.AdminHandler.Enhance)

	return app, db, userRepo
}

func jsonReq(method, target string, body any) *http.Request {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	r := httptest.NewRequest(method, target, rd)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

func withSID(r *http.Request, sid string) *http.Request {
	r.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	return r
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
