package exceptions

import (
	"adhd-intake-service/internal/pkg/constvars"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatAllValidationErrors(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return constvars.ErrDevInvalidInput
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		messages = append(messages, formatFieldError(fieldErr))
	}
	return strings.Join(messages, ", ")
}

func formatFieldError(fieldErr validator.FieldError) string {
	fieldName := strings.ToLower(fieldErr.Field())
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}
