// Package validation wraps go-playground/validator behind a singleton so
// struct rules are declared as tags on command and query types. The
// validator caches struct metadata, so sharing one instance matters.
package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Error carries field-level failures for a 400 response body.
type Error struct {
	details []string
}

func NewError(details ...string) *Error {
	return &Error{details: details}
}

func (e *Error) Error() string {
	return "validation failed"
}

func (e *Error) Details() []string {
	return e.details
}

// ValidateStruct runs tag validation and converts failures into an
// *Error. Non-validation errors (misused tags) pass through unchanged.
func ValidateStruct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			if fe.Param() != "" {
				details = append(details, fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			} else {
				details = append(details, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
			}
		}
		return &Error{details: details}
	}
	return err
}
