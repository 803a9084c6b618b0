package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"aura/internal/config"
	"aura/internal/http/handlers"
	applog "aura/internal/log"
	"aura/internal/repos"
	"aura/internal/services"
	"aura/internal/sheets"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	sh := sheets.New(cfg.SheetsURL)

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := services.NewAuthService(userRepo, sh, cfg.AdminSignupKey)

	// Pull the remote catalog snapshot before serving; the bundled fixture
	// catalog stands in when the endpoint is silent.
	bootCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	services.NewCatalogService(repos.NewProductRepo(db), sh).Bootstrap(bootCtx)
	cancel()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": "something went wrong, please try again"})
		},
	})
	// Bespoke-request photos arrive inline as data URIs.
	app.Server().MaxRequestBodySize = 8 << 20 // 8 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach the session user for downstream handlers and logging.
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.Current(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, sh, authSvc)
	api := app.Group("/api/v1")

	// Auth (login throttled)
	auth := api.Group("/auth")
	auth.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, please try again later"})
		},
	}), deps.AuthHandler.Login)
	auth.Post("/signup", deps.AuthHandler.Signup)
	auth.Post("/logout", deps.AuthHandler.Logout)
	auth.Get("/me", deps.AuthHandler.Me)

	// Catalog
	api.Get("/catalog", deps.CatalogHandler.List)
	api.Get("/catalog/:id", deps.CatalogHandler.Detail)

	// Cart & checkout
	api.Post("/cart", deps.CartHandler.Add)
	api.Get("/cart", deps.CartHandler.View)
	api.Delete("/cart/:productId", deps.CartHandler.Remove)
	api.Delete("/cart", deps.CartHandler.Clear)
	api.Post("/checkout", handlers.RequireUser(authSvc), deps.OrderHandler.Checkout)
	api.Get("/orders", handlers.RequireUser(authSvc), deps.OrderHandler.History)

	// Bespoke-request wizard
	req := api.Group("/request")
	req.Get("/", deps.RequestHandler.Draft)
	req.Post("/step1", deps.RequestHandler.Step1)
	req.Post("/step2", deps.RequestHandler.Step2)
	req.Post("/photo", deps.RequestHandler.AttachPhoto)
	req.Delete("/photo", deps.RequestHandler.RemovePhoto)
	req.Post("/back", deps.RequestHandler.Back)
	req.Post("/submit", deps.RequestHandler.Submit)

	// Community & contact
	api.Get("/community", deps.CommunityHandler.List)
	api.Post("/community", deps.CommunityHandler.Add)
	api.Post("/contact", deps.CommunityHandler.Contact)

	// Admin back office
	admin := api.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Post("/products", deps.AdminHandler.AddProduct)
	admin.Put("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Delete("/products/:id", deps.AdminHandler.DeleteProduct)
	admin.Get("/orders", deps.AdminHandler.Orders)
	admin.Get("/report", deps.AdminHandler.SalesReport)
	admin.Get("/users", deps.AdminHandler.Users)
	admin.Get("/requests", deps.AdminHandler.Requests)
	admin.Post("/enhance", deps.AdminHandler.Enhance)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
