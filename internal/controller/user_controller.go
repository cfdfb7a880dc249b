package controller

import (
	"context"

	"github.com/sefazor/saas-starter/internal/models"
	"github.com/sefazor/saas-starter/internal/service"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

func (c *UserController) GetUser(ctx context.Context, clerkID string) (*models.User, error) {
	return c.userService.GetUser(ctx, clerkID)
}

func (c *UserController) GetTeamForUser(ctx context.Context, clerkID string) (*models.Team, error) {
	return c.userService.GetTeamForUser(ctx, clerkID)
}
