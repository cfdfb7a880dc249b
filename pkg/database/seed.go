package database

import (
	"context"
	"errors"

	"github.com/sefazor/saas-starter/internal/models"
	"github.com/sefazor/saas-starter/internal/repository"
	"gorm.io/gorm"
)

const (
	SeedEmail   = "test@test.com"
	SeedClerkID = "user_test123" // Clerk'te gerçek bir kullanıcı değil
	SeedName    = "Test User"
	SeedTeam    = "Test Team"
)

type SeedResult struct {
	User *models.User
	Team *models.Team
}

// Seed inserts the demo user, team and owner membership. Running it twice
// leaves the database unchanged.
func Seed(ctx context.Context, db *gorm.DB) (*SeedResult, error) {
	result := &SeedResult{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		teamRepo := repository.NewTeamRepository(tx)

		user, err := userRepo.GetByClerkID(ctx, SeedClerkID)
		if errors.Is(err, repository.ErrNotFound) {
			user = &models.User{
				ClerkID: SeedClerkID,
				Email:   SeedEmail,
				Name:    SeedName,
				Role:    models.RoleOwner,
			}
			err = userRepo.Create(ctx, user)
		}
		if err != nil {
			return err
		}

		team, err := teamRepo.GetForUser(ctx, user.ID)
		if errors.Is(err, repository.ErrNotFound) {
			team = &models.Team{Name: SeedTeam}
			if err = teamRepo.Create(ctx, team); err != nil {
				return err
			}
			err = teamRepo.AddMember(ctx, &models.TeamMember{
				TeamID: team.ID,
				UserID: user.ID,
				Role:   models.RoleOwner,
			})
		}
		if err != nil {
			return err
		}

		result.User = user
		result.Team = team
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
