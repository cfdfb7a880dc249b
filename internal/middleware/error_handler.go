package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/saas-starter/internal/service"
	"go.uber.org/zap"
)

// ErrorHandler renders errors returned from handlers as plain text. Server
// errors are logged with their cause; the client only sees the public
// message.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := service.StatusFor(err)
		if code >= fiber.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(service.PublicMessage(err))
	}
}
