package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sefazor/saas-starter/internal/models"
	"github.com/sefazor/saas-starter/internal/repository"
	"github.com/sefazor/saas-starter/pkg/payment"
	"github.com/sefazor/saas-starter/pkg/utils"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

type UserStore interface {
	GetByClerkID(ctx context.Context, clerkID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type TeamStore interface {
	GetForUser(ctx context.Context, userID uint) (*models.Team, error)
	GetByStripeCustomerID(ctx context.Context, customerID string) (*models.Team, error)
	Update(ctx context.Context, team *models.Team) error
}

type Notifier interface {
	SendSubscriptionConfirmation(email, name, planName string) error
}

type CheckoutSettings struct {
	SuccessURL string
	CancelURL  string
	Plans      []models.Plan
}

type PaymentService struct {
	provider  payment.CheckoutLinkProvider
	userRepo  UserStore
	teamRepo  TeamStore
	notifier  Notifier
	validator *utils.Validator
	settings  CheckoutSettings
	logger    *zap.Logger
}

func NewPaymentService(
	provider payment.CheckoutLinkProvider,
	userRepo UserStore,
	teamRepo TeamStore,
	notifier Notifier,
	validator *utils.Validator,
	settings CheckoutSettings,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		provider:  provider,
		userRepo:  userRepo,
		teamRepo:  teamRepo,
		notifier:  notifier,
		validator: validator,
		settings:  settings,
		logger:    logger,
	}
}

// CreateCheckoutLink validates the submitted form and asks the provider for
// a fresh checkout session. clientReferenceID is the signed-in user's Clerk
// ID, or empty for anonymous visitors.
func (s *PaymentService) CreateCheckoutLink(ctx context.Context, form models.CheckoutForm, clientReferenceID string) (*models.CheckoutLink, error) {
	if err := s.validator.Struct(form); err != nil {
		field, msg := utils.FirstError(err)
		return nil, &ValidationError{Field: field, Message: msg}
	}

	req := models.CheckoutRequest{
		ProductID:         form.ProductID,
		SuccessURL:        s.settings.SuccessURL,
		CancelURL:         s.settings.CancelURL,
		ClientReferenceID: clientReferenceID,
	}
	// Bilinmeyen ürünler olduğu gibi gönderilir, doğrulama sağlayıcıda
	if plan, ok := models.FindPlan(s.settings.Plans, form.ProductID); ok {
		req.TrialDays = plan.TrialDays
	}

	link, err := s.provider.CreateCheckoutLink(ctx, req)
	if err != nil {
		s.logger.Error("Checkout failed",
			zap.String("product_id", form.ProductID),
			zap.Error(err),
		)
		var perr *ProviderError
		if !errors.As(err, &perr) {
			err = &ProviderError{Provider: "checkout", Op: "create checkout link", Err: err}
		}
		return nil, err
	}

	return link, nil
}

// Webhook handler for Stripe events
func (s *PaymentService) HandleStripeWebhook(ctx context.Context, event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}
		return s.handleCheckoutCompleted(ctx, &session)

	case "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return err
		}
		return s.handleSubscriptionChange(ctx, &sub, event.Type == "customer.subscription.deleted")
	}

	s.logger.Debug("Ignoring stripe event", zap.String("type", string(event.Type)))
	return nil
}

func (s *PaymentService) handleCheckoutCompleted(ctx context.Context, session *stripe.CheckoutSession) error {
	user, err := s.checkoutUser(ctx, session)
	if err != nil {
		return err
	}

	team, err := s.teamRepo.GetForUser(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("team for user %d: %w", user.ID, err)
	}

	if session.Customer != nil && session.Customer.ID != "" {
		customerID := session.Customer.ID
		team.StripeCustomerID = &customerID
	}
	if session.Subscription != nil && session.Subscription.ID != "" {
		subscriptionID := session.Subscription.ID
		team.StripeSubscriptionID = &subscriptionID
	}

	productID := session.Metadata["product_id"]
	team.StripeProductID = productID
	team.SubscriptionStatus = models.SubscriptionStatusActive
	if plan, ok := models.FindPlan(s.settings.Plans, productID); ok {
		team.PlanName = plan.Name
		if plan.TrialDays > 0 {
			team.SubscriptionStatus = models.SubscriptionStatusTrialing
		}
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return err
	}

	if s.notifier != nil {
		// Mail hatası webhook'u başarısız yapmaz
		if err := s.notifier.SendSubscriptionConfirmation(user.Email, user.Name, team.PlanName); err != nil {
			s.logger.Warn("Failed to send subscription email",
				zap.String("email", user.Email),
				zap.Error(err),
			)
		}
	}

	return nil
}

// checkoutUser finds who paid: client_reference_id first, then the email
// the buyer typed on the checkout page.
func (s *PaymentService) checkoutUser(ctx context.Context, session *stripe.CheckoutSession) (*models.User, error) {
	if session.ClientReferenceID != "" {
		return s.userRepo.GetByClerkID(ctx, session.ClientReferenceID)
	}
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		return s.userRepo.GetByEmail(ctx, session.CustomerDetails.Email)
	}
	return nil, fmt.Errorf("checkout session %s has no user reference", session.ID)
}

// handleSubscriptionChange mirrors Stripe's view of the subscription onto
// the team. Only a deletion clears the subscription; updates keep it and
// change the status (past_due, unpaid, ...) and plan.
func (s *PaymentService) handleSubscriptionChange(ctx context.Context, sub *stripe.Subscription, deleted bool) error {
	if sub.Customer == nil || sub.Customer.ID == "" {
		return fmt.Errorf("subscription %s has no customer", sub.ID)
	}

	team, err := s.teamRepo.GetByStripeCustomerID(ctx, sub.Customer.ID)
	if errors.Is(err, repository.ErrNotFound) {
		// Bizim sistemimizle ilgisi yok
		s.logger.Warn("No team for stripe customer", zap.String("customer_id", sub.Customer.ID))
		return nil
	}
	if err != nil {
		return err
	}

	if deleted {
		team.StripeSubscriptionID = nil
		team.StripeProductID = ""
		team.PlanName = ""
		team.SubscriptionStatus = models.SubscriptionStatusCanceled
		return s.teamRepo.Update(ctx, team)
	}

	subscriptionID := sub.ID
	team.StripeSubscriptionID = &subscriptionID
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		priceID := sub.Items.Data[0].Price.ID
		team.StripeProductID = priceID
		if plan, ok := models.FindPlan(s.settings.Plans, priceID); ok {
			team.PlanName = plan.Name
		}
	}
	if sub.Status != "" {
		team.SubscriptionStatus = string(sub.Status)
	}

	return s.teamRepo.Update(ctx, team)
}
