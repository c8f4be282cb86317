package models

import "fmt"

// PriceOutOfRangeMessage is reported whenever a price is missing or out of range
const PriceOutOfRangeMessage = "Price must be between 1 and 30"

// ValidationError is returned when a field value breaks an entity rule
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MissingFieldError is returned when a required key is absent from a request payload
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

// ErrorResponse is the body returned for not-found and generic failures
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body returned when a request fails validation
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates a single-error response body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates a response body listing the validation messages
func NewValidationErrorResponse(messages ...string) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: messages}
}
