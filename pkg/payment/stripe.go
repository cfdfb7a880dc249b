package payment

import (
	"context"
	"errors"
	"net/url"

	"github.com/sefazor/saas-starter/internal/models"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"go.uber.org/zap"
)

// CheckoutLinkProvider creates a hosted checkout session and returns the
// URL the buyer should be redirected to.
type CheckoutLinkProvider interface {
	CreateCheckoutLink(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutLink, error)
}

type StripeService struct {
	api *client.API
}

type Option func(*stripe.BackendConfig)

// WithBackendURL points the client at a different API host (stripe-mock,
// test servers).
func WithBackendURL(u string) Option {
	return func(c *stripe.BackendConfig) {
		c.URL = stripe.String(u)
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *stripe.BackendConfig) {
		c.LeveledLogger = logger.Sugar()
	}
}

func NewStripeService(secretKey string, opts ...Option) *StripeService {
	cfg := &stripe.BackendConfig{
		// Tekrar deneme yok, her form gönderimi tek bir çağrı
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, cfg)
	api := client.New(secretKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})

	return &StripeService{
		api: api,
	}
}

func (s *StripeService) CreateCheckoutLink(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutLink, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.ProductID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:          stripe.String(req.SuccessURL),
		AllowPromotionCodes: stripe.Bool(true),
	}
	params.Context = ctx
	params.AddMetadata("product_id", req.ProductID)

	if req.CancelURL != "" {
		params.CancelURL = stripe.String(req.CancelURL)
	}
	if req.ClientReferenceID != "" {
		params.ClientReferenceID = stripe.String(req.ClientReferenceID)
	}
	if req.TrialDays > 0 {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(int64(req.TrialDays)),
		}
	}

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, &ProviderError{Provider: "stripe", Op: "create checkout session", Err: err}
	}

	u, err := url.Parse(sess.URL)
	if err != nil || !u.IsAbs() {
		return nil, &ProviderError{
			Provider: "stripe",
			Op:       "create checkout session",
			Err:      errors.New("provider returned no usable checkout URL"),
		}
	}

	return &models.CheckoutLink{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}
