package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sefazor/saas-starter/internal/config"
	"github.com/sefazor/saas-starter/internal/controller"
	"github.com/sefazor/saas-starter/internal/handler"
	"github.com/sefazor/saas-starter/internal/middleware"
	"github.com/sefazor/saas-starter/internal/models"
	"github.com/sefazor/saas-starter/internal/repository"
	"github.com/sefazor/saas-starter/internal/server"
	"github.com/sefazor/saas-starter/internal/service"
	"github.com/sefazor/saas-starter/pkg/database"
	"github.com/sefazor/saas-starter/pkg/email"
	jwtPkg "github.com/sefazor/saas-starter/pkg/jwt"
	"github.com/sefazor/saas-starter/pkg/logger"
	"github.com/sefazor/saas-starter/pkg/payment"
	"github.com/sefazor/saas-starter/pkg/utils"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := cfg.Validate(); err != nil {
		zlog.Fatal("Invalid configuration", zap.Error(err))
	}

	// Initialize database
	db, err := database.NewDatabase(cfg.DatabaseURL, gormlogger.Warn)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		zlog.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	// Stripe service
	if cfg.Stripe.SecretKey == "" {
		zlog.Warn("STRIPE_SECRET_KEY is not set, checkout will fail")
	}
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey, payment.WithLogger(zlog.Named("stripe")))

	// Email service
	var notifier service.Notifier
	if cfg.Email.ResendAPIKey != "" {
		notifier = email.NewEmailService(cfg.Email.ResendAPIKey, cfg.Email.FromAddress, cfg.Email.FromName, cfg.BaseURL, zlog)
	}

	// JWKS yenilemesi bu context iptal edilene kadar sürer
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	sessions, err := newSessionVerifier(appCtx, cfg)
	if err != nil {
		zlog.Fatal("Failed to initialize session verifier", zap.Error(err))
	}

	plans := models.DefaultPlans(cfg.Stripe.BasePriceID, cfg.Stripe.PlusPriceID)

	// Services
	paymentService := service.NewPaymentService(
		stripeService,
		userRepo,
		teamRepo,
		notifier,
		utils.NewValidator(),
		service.CheckoutSettings{
			SuccessURL: cfg.SuccessURL(),
			CancelURL:  cfg.CancelURL(),
			Plans:      plans,
		},
		zlog,
	)
	userService := service.NewUserService(userRepo, teamRepo)

	// Handlers
	app := server.NewFiberApp(cfg, server.Handlers{
		Payment: handler.NewPaymentHandler(controller.NewPaymentController(paymentService), cfg.Stripe.WebhookSecret, zlog),
		User:    handler.NewUserHandler(controller.NewUserController(userService), zlog),
		Pricing: handler.NewPricingHandler(plans, server.CheckoutPath),
	}, sessions, zlog)

	go func() {
		zlog.Info("Starting server", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Fatal("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		zlog.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// Clerk issuer varsa JWKS, yoksa AUTH_SECRET ile HMAC
func newSessionVerifier(ctx context.Context, cfg *config.Config) (middleware.TokenValidator, error) {
	if cfg.Clerk.Issuer != "" {
		return jwtPkg.NewClerkVerifier(ctx, cfg.Clerk.Issuer)
	}
	return jwtPkg.NewHMACVerifier(cfg.AuthSecret), nil
}
