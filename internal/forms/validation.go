package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is a local input error shown to the user as is.
type ValidationError struct {
	Message string
	// Question is the 1-based index of the offending question, or 0.
	Question int
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) *ValidationError { return &ValidationError{Message: msg} }

func invalidQuestion(n int, format string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, n), Question: n}
}

// messages maps "Field.tag" to the text shown for that failure.
type messages map[string]string

var validate = validator.New(validator.WithRequiredStructEnabled())

// check validates v and converts the first failing field into a
// ValidationError, using msgs when it has an entry for the field and tag.
func check(v any, msgs messages) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err
	}
	fe := ve[0]
	if m, ok := msgs[fe.Field()+"."+fe.Tag()]; ok {
		return invalid(m)
	}
	return invalid(fieldError(fe))
}

// fieldError converts a FieldError into a sentence.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required."
	case "email":
		return field + " must be a valid email."
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s).", field, fe.Tag())
	}
}
