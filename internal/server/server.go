package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sefazor/saas-starter/internal/config"
	"github.com/sefazor/saas-starter/internal/handler"
	"github.com/sefazor/saas-starter/internal/middleware"
	"go.uber.org/zap"
)

const CheckoutPath = "/checkout"

type Handlers struct {
	Payment *handler.PaymentHandler
	User    *handler.UserHandler
	Pricing *handler.PricingHandler
}

func NewFiberApp(cfg *config.Config, h Handlers, sessions middleware.TokenValidator, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "saas-starter",
		ErrorHandler: middleware.ErrorHandler(log),
	})

	// Global Middleware'ler önce tanımlanmalı
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     normalizeOrigins(cfg.AllowedOrigins),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST",
		AllowCredentials: true,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Stripe webhook (public, rate limit dışında)
	app.Post("/api/stripe/webhook", h.Payment.HandleStripeWebhook)

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))
	app.Use(middleware.SessionMiddleware(sessions, log))

	app.Get("/pricing", h.Pricing.Render)
	app.Post(CheckoutPath, h.Payment.Checkout)

	api := app.Group("/api")
	api.Get("/user", h.User.GetUser)
	api.Get("/team", h.User.GetTeam)

	return app
}

func normalizeOrigins(origins string) string {
	parts := strings.Split(origins, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
