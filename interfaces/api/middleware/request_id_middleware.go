package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalog-service/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID accepts an inbound request id or mints one, echoes it on the
// response and stores it in the request context for log correlation.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDHeader, requestID)
		c.Locals("request_id", requestID)
		c.SetUserContext(logger.ContextWithRequestID(c.UserContext(), requestID))

		return c.Next()
	}
}
