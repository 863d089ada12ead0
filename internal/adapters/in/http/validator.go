package http

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's Validator hook
// so bound request DTOs are checked against their struct tags.
type RequestValidator struct {
	validate *validatorv10.Validate
}

// NewRequestValidator creates a validator for request DTOs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validatorv10.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
