// Package validation enforces request schemas with go-playground/validator.
//
// Only the first violated field is reported, in struct declaration order, so
// callers can surface a single actionable message.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/goldenpays/consultancy-api/internal/domain"
)

const (
	tagServiceCategory = "service_category"
	tagInquiryStatus   = "inquiry_status"
)

// Error describes the first rule a payload violated.
type Error struct {
	Field   string
	Rule    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds an Error for checks performed outside struct tags.
func NewError(field, rule, message string) *Error {
	return &Error{Field: field, Rule: rule, Message: message}
}

// IsValidationError reports whether err carries a validation failure.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// Validator wraps a configured validator.Validate.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that names fields by their json tag (or the
// lower-cased field name) and knows the domain enums.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return lowerFirst(field.Name)
		}
		return name
	})
	_ = v.RegisterValidation(tagServiceCategory, func(fl validator.FieldLevel) bool {
		return domain.ServiceCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation(tagInquiryStatus, func(fl validator.FieldLevel) bool {
		return domain.InquiryStatus(fl.Field().String()).Valid()
	})
	return &Validator{v: v}
}

// Struct validates s and returns *Error for the first failing field.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return &Error{Field: fe.Field(), Rule: fe.Tag(), Message: fieldError(fe)}
	}
	return err
}

func fieldError(fe validator.FieldError) string {
	field := fmt.Sprintf("%q", fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s length must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s length must be less than or equal to %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case tagServiceCategory:
		return fmt.Sprintf("%s must be one of [%s]", field, joinCategories())
	case tagInquiryStatus:
		return fmt.Sprintf("%s must be one of [%s]", field, joinStatuses())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func joinCategories() string {
	names := make([]string, len(domain.ServiceCategories))
	for i, c := range domain.ServiceCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func joinStatuses() string {
	names := make([]string, len(domain.InquiryStatuses))
	for i, s := range domain.InquiryStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
