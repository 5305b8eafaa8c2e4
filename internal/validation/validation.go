package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	if err := validate.RegisterValidation("url", validateURL); err != nil {
		panic(fmt.Sprintf("failed to register url validation: %v", err))
	}
}

// Validate validates a struct using tags
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ValidateURL validates a URL separately
func ValidateURL(urlStr string) error {
	return validate.Var(urlStr, "required,url")
}

// Custom validation functions

func validateURL(fl validator.FieldLevel) bool {
	urlStr := fl.Field().String()

	u, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	// URL requirements:
	// - Must have a scheme (http or https)
	// - Must have a host
	// - No fragments allowed
	return (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != "" &&
		u.Fragment == ""
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string
	Error string
}

// FormatError formats a validation error into a human-readable message
func FormatError(err error) []ValidationError {
	var validationErrors []ValidationError

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return validationErrors
	}

	for _, e := range errs {
		var message string

		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", e.Field())
		case "url":
			message = "Invalid URL format. Must be a valid http or https URL"
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", e.Field(), strings.ReplaceAll(e.Param(), " ", ", "))
		case "min", "gt":
			message = fmt.Sprintf("%s is too small", e.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
		default:
			message = fmt.Sprintf("Invalid value for %s", e.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field: strings.ToLower(e.Field()),
			Error: message,
		})
	}

	return validationErrors
}
