// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "atlas/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates a validator for request DTOs.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as a validation
// AppError so the error middleware renders them as 400 responses.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
