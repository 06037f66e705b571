package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"tillpoint/internal/config"
	"tillpoint/internal/http/handlers"
	applog "tillpoint/internal/log"
	"tillpoint/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("POS API is running")
	})

	api := app.Group("/api")
	api.Get("/products", deps.ProductHandler.List)
	api.Post("/products", deps.ProductHandler.Create)
	api.Put("/products/:id", deps.ProductHandler.Update)
	api.Delete("/products/:id", deps.ProductHandler.Delete)
	api.Get("/low-stock", deps.ProductHandler.LowStock)

	api.Post("/checkout", deps.CheckoutHandler.Post)

	api.Get("/sales", deps.SalesHandler.List)
	api.Get("/sales-summary", deps.SalesHandler.Summary)
	api.Get("/sales/receipt/:id", deps.ReceiptHandler.Download)

	// Login throttled
	api.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many login attempts"})
		},
	}), deps.AuthHandler.Login)

	log.Fatal(app.Listen(":" + cfg.Port))
}
