package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"catalog-service/pkg/logger"
)

// RequestLogger logs one structured line per request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", c.IP(),
		}
		if requestID, ok := c.Locals("request_id").(string); ok {
			fields = append(fields, "request_id", requestID)
		}

		switch {
		case status >= 500:
			logger.Error("Request failed", fields...)
		case status >= 400:
			logger.Warn("Request rejected", fields...)
		default:
			logger.Info("Request completed", fields...)
		}

		return err
	}
}
