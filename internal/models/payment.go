package models

// CheckoutForm is the form posted by a pricing card.
type CheckoutForm struct {
	ProductID string `form:"productId" label:"Product ID" validate:"required"`
}

// CheckoutRequest is what gets sent to the checkout provider. It lives for a
// single form submission.
type CheckoutRequest struct {
	ProductID         string
	SuccessURL        string
	CancelURL         string
	ClientReferenceID string
	TrialDays         int
}

type CheckoutLink struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Stripe subscription durumları
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusTrialing = "trialing"
	SubscriptionStatusCanceled = "canceled"
)
