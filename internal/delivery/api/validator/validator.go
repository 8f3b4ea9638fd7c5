// Package validator adapts go-playground/validator to echo.Validator for request envelopes.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator checks request structs tagged with `validate`.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}
