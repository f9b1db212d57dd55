package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct tags of req through the shared validator.
func ValidateStruct(req any) error {
	return validate.Struct(req)
}

// GetValidationErrors flattens validator errors into field -> message.
func GetValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["error"] = err.Error()
		return errors
	}

	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "min":
			errors[field] = "Value is too short or too small"
		case "max":
			errors[field] = "Value is too long or too large"
		case "oneof":
			errors[field] = "Value must be one of: " + fieldErr.Param()
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}
