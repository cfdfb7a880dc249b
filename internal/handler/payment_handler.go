package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/saas-starter/internal/controller"
	"github.com/sefazor/saas-starter/internal/middleware"
	"github.com/sefazor/saas-starter/internal/models"
	"github.com/stripe/stripe-go/v74/webhook"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	paymentController *controller.PaymentController
	webhookSecret     string
	logger            *zap.Logger
}

func NewPaymentHandler(paymentController *controller.PaymentController, webhookSecret string, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentController: paymentController,
		webhookSecret:     webhookSecret,
		logger:            logger,
	}
}

// Checkout handles the pricing-page form post. Errors are returned to the
// app's error handler; on success the browser is sent to the provider.
func (h *PaymentHandler) Checkout(c *fiber.Ctx) error {
	form := models.CheckoutForm{
		ProductID: c.FormValue("productId"),
	}

	link, err := h.paymentController.CreateCheckoutLink(c.UserContext(), form, middleware.ClerkID(c))
	if err != nil {
		return err
	}

	return c.Redirect(link.URL, fiber.StatusSeeOther)
}

func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	// Boş secret ile imza kontrolü herkesin event üretmesine izin verir
	if h.webhookSecret == "" {
		h.logger.Error("Webhook rejected, STRIPE_WEBHOOK_SECRET is not configured")
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Webhook signature verification failed"))
	}

	payload := c.Body()
	signatureHeader := c.Get("Stripe-Signature")

	// API version mismatch'i ignore et
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, h.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		h.logger.Warn("Webhook signature verification failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Webhook signature verification failed"))
	}

	if err := h.paymentController.HandleStripeWebhook(c.UserContext(), &event); err != nil {
		h.logger.Error("Webhook error",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Webhook handler failed"))
	}

	return c.JSON(models.SuccessResponse(nil, "received"))
}
