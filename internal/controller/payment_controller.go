package controller

import (
	"context"

	"github.com/sefazor/saas-starter/internal/models"
	"github.com/sefazor/saas-starter/internal/service"
	"github.com/stripe/stripe-go/v74"
)

type PaymentController struct {
	paymentService *service.PaymentService
}

func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

func (c *PaymentController) CreateCheckoutLink(ctx context.Context, form models.CheckoutForm, clientReferenceID string) (*models.CheckoutLink, error) {
	return c.paymentService.CreateCheckoutLink(ctx, form, clientReferenceID)
}

func (c *PaymentController) HandleStripeWebhook(ctx context.Context, event *stripe.Event) error {
	return c.paymentService.HandleStripeWebhook(ctx, event)
}
