package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxStateNameLength   = 50
	MaxOutcomeNameLength = 50

	// State and outcome names: alphanumeric plus underscore
	namePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

func init() {
	validate = validator.New()
}

// Struct validates a struct using its `validate` tags and converts the
// result into a user-friendly error.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// ValidateStateName validates a workflow state label.
func ValidateStateName(name string) error {
	if name == "" {
		return errors.New("state name cannot be empty")
	}
	if len(name) > MaxStateNameLength {
		return fmt.Errorf("state name '%s' exceeds maximum length of %d characters", name, MaxStateNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("state name '%s' contains invalid characters (only alphanumeric and underscore allowed)", name)
	}
	return nil
}

// ValidateOutcomeName validates a categorical outcome label.
func ValidateOutcomeName(name string) error {
	if name == "" {
		return errors.New("outcome name cannot be empty")
	}
	if len(name) > MaxOutcomeNameLength {
		return fmt.Errorf("outcome name '%s' exceeds maximum length of %d characters", name, MaxOutcomeNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("outcome name '%s' contains invalid characters (only alphanumeric and underscore allowed)", name)
	}
	return nil
}

// FormatValidationError converts validator errors to a more user-friendly format
func FormatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "dive":
			return fmt.Errorf("%s: invalid element in array", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
