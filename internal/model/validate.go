package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a bad, missing, or out-of-range field on a write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

var validate = newValidator()

// newValidator builds a validator that reports field names by their JSON tag.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks an event against the write-time rules: required fields
// present, category in the allowed set, numeric fields within bounds, and
// schedule/ticketTypes non-empty with every entry well formed. Read paths
// never re-validate.
func (e *Event) Validate() error {
	if err := validate.Struct(e); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return err
	}
	for i, s := range e.Schedule {
		if s.Date.IsZero() {
			return &ValidationError{
				Field:  fmt.Sprintf("schedule[%d].date", i),
				Reason: "a valid date is required",
			}
		}
	}
	return nil
}

// Validate checks an account record before it is persisted.
func (u *User) Validate() error {
	if err := validate.Struct(u); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return err
	}
	return nil
}

// fieldError converts the first validator failure into a ValidationError,
// trimming the root struct name from the namespace.
func fieldError(fe validator.FieldError) *ValidationError {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	reason := "failed " + fe.Tag() + " check"
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "oneof":
		reason = "must be one of " + strings.Join(Categories, ", ")
	case "min":
		reason = "must not be empty"
	case "gte":
		reason = "must be at least " + fe.Param()
	case "email":
		reason = "must be a valid email address"
	}
	return &ValidationError{Field: field, Reason: reason}
}
