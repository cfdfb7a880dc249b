package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtPkg "github.com/sefazor/saas-starter/pkg/jwt"
	"go.uber.org/zap"
)

const (
	localsClerkID   = "clerkID"
	localsUserEmail = "userEmail"

	// Clerk'in oturum cookie'si
	sessionCookie = "__session"
)

type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (*jwtPkg.Identity, error)
}

// SessionMiddleware attaches the caller's identity when a valid session
// token is present. It never rejects a request: handlers decide what an
// anonymous caller gets.
func SessionMiddleware(validator TokenValidator, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := sessionToken(c)
		if tokenString == "" {
			return c.Next()
		}

		identity, err := validator.ValidateToken(c.UserContext(), tokenString)
		if err != nil {
			logger.Debug("Session token rejected",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Next()
		}

		c.Locals(localsClerkID, identity.UserID)
		c.Locals(localsUserEmail, identity.Email)

		return c.Next()
	}
}

// ClerkID returns the authenticated user's Clerk ID, or "" for anonymous
// requests.
func ClerkID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsClerkID).(string)
	return id
}

func sessionToken(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return c.Cookies(sessionCookie)
}
