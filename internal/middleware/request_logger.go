package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewRequestLoggerMiddleware logs every request once it completes. Errors from
// later handlers are passed to the app's ErrorHandler and not returned.
func NewRequestLoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// The error is rendered here so the logged status is the one sent.
		if err := c.Next(); err != nil {
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		requestID, _ := c.Locals(requestIDKey{}).(string)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("requestId", requestID),
		}

		if status >= fiber.StatusInternalServerError {
			zap.L().Error("Request failed", fields...)
		} else {
			zap.L().Info("Request handled", fields...)
		}

		return nil
	}
}
