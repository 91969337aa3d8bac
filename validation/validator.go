// Package validation checks raw request parameters before they reach the usecases.
package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"genonaut/utils/constants"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrorType represents a typed validation error
type ValidationErrorType struct {
	Type   string            `json:"type"`
	Errors []ValidationError `json:"errors"`
}

func (e *ValidationErrorType) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("validation failed: %s", e.Type)
	}
	messages := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		messages = append(messages, fe.Message)
	}
	return strings.Join(messages, "; ")
}

// Validator wraps the go-playground validator with the listing rules registered.
type Validator struct {
	validate    *validator.Validate
	maxPageSize int
}

// New builds a Validator; maxPageSize <= 0 falls back to constants.MaxPageSize.
func New(maxPageSize int) *Validator {
	if maxPageSize <= 0 {
		maxPageSize = constants.MaxPageSize
	}
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	registerPaginationRules(validate, maxPageSize)

	return &Validator{validate: validate, maxPageSize: maxPageSize}
}

func (v *Validator) check(kind string, s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &ValidationErrorType{Type: kind}
	for _, fe := range fieldErrs {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fe.Field(),
			Message: v.message(fe),
			Value:   fmt.Sprint(fe.Value()),
		})
	}
	sort.SliceStable(out.Errors, func(i, j int) bool { return out.Errors[i].Field < out.Errors[j].Field })
	return out
}

func (v *Validator) message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "page_size":
		return fmt.Sprintf("%s must be an integer between 1 and %d", field, v.maxPageSize)
	case "page_number":
		return fmt.Sprintf("%s must be a positive integer", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must contain valid UUIDs", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s long", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
