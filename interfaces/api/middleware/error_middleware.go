package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"catalog-service/pkg/logger"
	"catalog-service/pkg/utils"
)

// ErrorHandler is the fiber app-level error handler. Handlers normally map
// service errors themselves; this catches what escapes (routing errors,
// body limits, panics recovered by fiber).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code == fiber.StatusNotFound {
			return utils.NotFoundResponse(c, "Route not found")
		}
		return utils.ErrorResponse(c, fiberErr.Code, utils.ErrCodeBadRequest, fiberErr.Message, nil)
	}

	logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err, "path", c.Path())
	return utils.InternalServerErrorResponse(c)
}
