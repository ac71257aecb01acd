// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "kennel/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator.Validate instance for echo.
type echoValidator struct {
	validate *validator.Validate
}

// New creates a request validator using struct tags.
func New() *echoValidator {
	return &echoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Violations surface as a 422 domain error
// so the error middleware renders them in the unified envelope.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
