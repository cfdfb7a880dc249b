package repository

import (
	"context"

	"github.com/sefazor/saas-starter/internal/models"
	"gorm.io/gorm"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *TeamRepository) AddMember(ctx context.Context, member *models.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetForUser returns the first team the user belongs to, with members and
// their users loaded.
func (r *TeamRepository) GetForUser(ctx context.Context, userID uint) (*models.Team, error) {
	var member models.TeamMember
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("joined_at ASC").
		First(&member).Error
	if err != nil {
		return nil, translate(err)
	}

	var team models.Team
	err = r.db.WithContext(ctx).
		Preload("TeamMembers", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at ASC")
		}).
		Preload("TeamMembers.User").
		First(&team, member.TeamID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &team, nil
}

func (r *TeamRepository) GetByStripeCustomerID(ctx context.Context, customerID string) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).Where("stripe_customer_id = ?", customerID).First(&team).Error
	if err != nil {
		return nil, translate(err)
	}
	return &team, nil
}

// Update writes the billing columns only; members are never touched here.
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).
		Model(&models.Team{ID: team.ID}).
		Select("stripe_customer_id", "stripe_subscription_id", "stripe_product_id", "plan_name", "subscription_status").
		Updates(team).Error
}
