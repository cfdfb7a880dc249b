package service

import (
	"context"

	"github.com/sefazor/saas-starter/internal/models"
)

const (
	msgFetchUserFailed = "Failed to fetch user"
	msgFetchTeamFailed = "Failed to fetch team"
)

type UserService struct {
	userRepo UserStore
	teamRepo TeamStore
}

func NewUserService(userRepo UserStore, teamRepo TeamStore) *UserService {
	return &UserService{
		userRepo: userRepo,
		teamRepo: teamRepo,
	}
}

// GetUser returns the signed-in user. Every failure, including a missing
// session, comes back as a *LookupError.
func (s *UserService) GetUser(ctx context.Context, clerkID string) (*models.User, error) {
	if clerkID == "" {
		return nil, &LookupError{Resource: "user", Public: msgFetchUserFailed, Err: ErrUnauthenticated}
	}

	user, err := s.userRepo.GetByClerkID(ctx, clerkID)
	if err != nil {
		return nil, &LookupError{Resource: "user", Public: msgFetchUserFailed, Err: err}
	}
	return user, nil
}

func (s *UserService) GetTeamForUser(ctx context.Context, clerkID string) (*models.Team, error) {
	if clerkID == "" {
		return nil, &LookupError{Resource: "team", Public: msgFetchTeamFailed, Err: ErrUnauthenticated}
	}

	user, err := s.userRepo.GetByClerkID(ctx, clerkID)
	if err != nil {
		return nil, &LookupError{Resource: "team", Public: msgFetchTeamFailed, Err: err}
	}

	team, err := s.teamRepo.GetForUser(ctx, user.ID)
	if err != nil {
		return nil, &LookupError{Resource: "team", Public: msgFetchTeamFailed, Err: err}
	}
	return team, nil
}
