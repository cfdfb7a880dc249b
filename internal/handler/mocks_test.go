package handler

import (
	"context"

	"github.com/sefazor/saas-starter/internal/models"
	"github.com/sefazor/saas-starter/internal/repository"
)

type fakeProvider struct {
	link     *models.CheckoutLink
	err      error
	requests []models.CheckoutRequest
}

func (f *fakeProvider) CreateCheckoutLink(_ context.Context, req models.CheckoutRequest) (*models.CheckoutLink, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.link, nil
}

type fakeUsers struct {
	users map[string]*models.User
	err   error
}

func (f *fakeUsers) GetByClerkID(_ context.Context, clerkID string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[clerkID]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeTeams struct {
	teams   map[uint]*models.Team
	err     error
	updated []models.Team
}

func (f *fakeTeams) GetForUser(_ context.Context, userID uint) (*models.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	if t, ok := f.teams[userID]; ok {
		return t, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTeams) GetByStripeCustomerID(_ context.Context, _ string) (*models.Team, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeTeams) Update(_ context.Context, team *models.Team) error {
	f.updated = append(f.updated, *team)
	return nil
}
