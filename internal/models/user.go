package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ClerkID   string         `json:"clerk_id" gorm:"uniqueIndex;not null"`
	Name      string         `json:"name"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Role      string         `json:"role" gorm:"not null;default:'member'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

type Team struct {
	ID                   uint         `json:"id" gorm:"primaryKey"`
	Name                 string       `json:"name" gorm:"not null"`
	StripeCustomerID     *string      `json:"stripe_customer_id" gorm:"uniqueIndex"`
	StripeSubscriptionID *string      `json:"stripe_subscription_id" gorm:"uniqueIndex"`
	StripeProductID      string       `json:"stripe_product_id"`
	PlanName             string       `json:"plan_name"`
	SubscriptionStatus   string       `json:"subscription_status"`
	TeamMembers          []TeamMember `json:"team_members,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// Takım üyeliği, kullanıcı bilgisiyle birlikte döner
type TeamMember struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	UserID   uint      `json:"user_id" gorm:"not null;index"`
	TeamID   uint      `json:"team_id" gorm:"not null;index"`
	Role     string    `json:"role" gorm:"not null"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`
	User     *User     `json:"user,omitempty"`
}
