package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/saas-starter/internal/controller"
	"github.com/sefazor/saas-starter/internal/middleware"
	"github.com/sefazor/saas-starter/internal/models"
	"github.com/sefazor/saas-starter/internal/service"
	"go.uber.org/zap"
)

type UserHandler struct {
	userController *controller.UserController
	logger         *zap.Logger
}

func NewUserHandler(userController *controller.UserController, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userController: userController,
		logger:         logger,
	}
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userController.GetUser(c.UserContext(), middleware.ClerkID(c))
	if err != nil {
		h.logger.Error("Error fetching user", zap.Error(err))
		return c.Status(service.StatusFor(err)).JSON(models.ErrorResponse(service.PublicMessage(err)))
	}

	return c.JSON(user)
}

func (h *UserHandler) GetTeam(c *fiber.Ctx) error {
	team, err := h.userController.GetTeamForUser(c.UserContext(), middleware.ClerkID(c))
	if err != nil {
		h.logger.Error("Error fetching team", zap.Error(err))
		return c.Status(service.StatusFor(err)).JSON(models.ErrorResponse(service.PublicMessage(err)))
	}

	return c.JSON(team)
}
