package service

import (
	"context"

	"github.com/sefazor/saas-starter/internal/models"
	"github.com/sefazor/saas-starter/internal/repository"
)

// MockProvider records every checkout request it receives.
type MockProvider struct {
	Link     *models.CheckoutLink
	Err      error
	Requests []models.CheckoutRequest
}

func (m *MockProvider) CreateCheckoutLink(_ context.Context, req models.CheckoutRequest) (*models.CheckoutLink, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Link, nil
}

type MockUserStore struct {
	ByClerkID map[string]*models.User
	ByEmail   map[string]*models.User
	Err       error
}

func (m *MockUserStore) GetByClerkID(_ context.Context, clerkID string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if u, ok := m.ByClerkID[clerkID]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if u, ok := m.ByEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

type MockTeamStore struct {
	ByUserID     map[uint]*models.Team
	ByCustomerID map[string]*models.Team
	Err          error
	Updated      []models.Team
}

func (m *MockTeamStore) GetForUser(_ context.Context, userID uint) (*models.Team, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if t, ok := m.ByUserID[userID]; ok {
		return t, nil
	}
	return nil, repository.ErrNotFound
}

func (m *MockTeamStore) GetByStripeCustomerID(_ context.Context, customerID string) (*models.Team, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if t, ok := m.ByCustomerID[customerID]; ok {
		return t, nil
	}
	return nil, repository.ErrNotFound
}

func (m *MockTeamStore) Update(_ context.Context, team *models.Team) error {
	m.Updated = append(m.Updated, *team)
	return nil
}

type MockNotifier struct {
	Sent []string
	Err  error
}

func (m *MockNotifier) SendSubscriptionConfirmation(email, _, planName string) error {
	m.Sent = append(m.Sent, email+":"+planName)
	return m.Err
}
