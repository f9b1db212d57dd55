package utils

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"catalog-service/pkg/apperrors"
)

// ========== Response Structures ==========

type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

type PaginatedResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Meta    Meta       `json:"meta"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Meta struct {
	Count       int64   `json:"count"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
	PageSize    int     `json:"pageSize"`
	HasNext     bool    `json:"hasNext"`
	HasPrev     bool    `json:"hasPrev"`
	Next        *string `json:"next"`
	Previous    *string `json:"previous"`
}

// ========== Error Code Constants ==========

const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeInternalError = "INTERNAL_ERROR"
	ErrCodeBadRequest    = "BAD_REQUEST"
)

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func PaginatedSuccessResponse(c *fiber.Ctx, data any, total int64, page, pageSize int) error {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	meta := Meta{
		Count:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
	if meta.HasNext {
		meta.Next = pageLink(c, page+1)
	}
	if meta.HasPrev {
		meta.Previous = pageLink(c, page-1)
	}

	return c.Status(fiber.StatusOK).JSON(PaginatedResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// pageLink rebuilds the request URL with the page parameter swapped, the rest
// of the query string intact.
func pageLink(c *fiber.Ctx, page int) *string {
	values, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		values = url.Values{}
	}
	values.Set("page", strconv.Itoa(page))
	link := c.BaseURL() + c.Path() + "?" + values.Encode()
	return &link
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, code, message string, details any) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func ValidationErrorResponse(c *fiber.Ctx, details any) error {
	return ErrorResponse(
		c,
		fiber.StatusBadRequest,
		ErrCodeValidation,
		"Validation failed",
		details,
	)
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(
		c,
		fiber.StatusBadRequest,
		ErrCodeBadRequest,
		message,
		nil,
	)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(
		c,
		fiber.StatusNotFound,
		ErrCodeNotFound,
		message,
		nil,
	)
}

func ConflictResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(
		c,
		fiber.StatusConflict,
		ErrCodeConflict,
		message,
		nil,
	)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(
		c,
		fiber.StatusInternalServerError,
		ErrCodeInternalError,
		"Internal server error",
		nil,
	)
}

// AppErrorResponse maps a service-layer error onto the response envelope.
// Internal detail never reaches the caller.
func AppErrorResponse(c *fiber.Ctx, err error) error {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		details := map[string]string{}
		if field := apperrors.FieldOf(err); field != "" {
			details[field] = err.Error()
		}
		return ValidationErrorResponse(c, details)
	case apperrors.KindNotFound:
		return NotFoundResponse(c, err.Error())
	case apperrors.KindConflict:
		return ConflictResponse(c, err.Error())
	default:
		return InternalServerErrorResponse(c)
	}
}
