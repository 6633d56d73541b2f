package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// DomainError standardizes errors returned at the HTTP boundary.
type DomainError struct {
	Code       string
	Title      string
	Message    string
	HTTPStatus int
	Details    any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, title, message string, status int, details any) *DomainError {
	return &DomainError{Code: code, Title: title, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationError reports client-correctable input. The message is repeated
// as details so clients can show it directly.
func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", "Validation Error", message, http.StatusBadRequest, message)
}

func NewAuthenticationFailed() error {
	return NewDomainError("AUTHENTICATION_FAILED", "Authentication Failed", "Invalid credentials", http.StatusUnauthorized, nil)
}

func NewAccessDenied(message string) error {
	return NewDomainError("ACCESS_DENIED", "Access Denied", message, http.StatusForbidden, nil)
}

func NewInvalidToken() error {
	return NewDomainError("INVALID_TOKEN", "Invalid Token", "Your session has expired. Please login again.", http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", "Forbidden", message, http.StatusForbidden, nil)
}

func NewNotFound(resource string) error {
	return NewDomainError("NOT_FOUND", "Not Found", fmt.Sprintf("%s not found", resource), http.StatusNotFound, nil)
}

func NewRouteNotFound(path string) error {
	return NewDomainError("NOT_FOUND", "Not Found", "The requested resource does not exist", http.StatusNotFound, map[string]any{"path": path})
}

func NewTooManyRequests(message string) error {
	return NewDomainError("RATE_LIMITED", "Too Many Requests", message, http.StatusTooManyRequests, nil)
}

func NewSubmissionFailed(err error) error {
	return &DomainError{
		Code:       "SUBMISSION_FAILED",
		Title:      "Submission Failed",
		Message:    "An error occurred while processing your request. Please try again later.",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Title:      "Internal Server Error",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError. Fiber errors keep their
// status; anything unknown becomes an internal error.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return &DomainError{
			Code:       "HTTP_ERROR",
			Title:      http.StatusText(fiberErr.Code),
			Message:    fiberErr.Message,
			HTTPStatus: fiberErr.Code,
		}
	}
	return NewInternalError(err).(*DomainError)
}
