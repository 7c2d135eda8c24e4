package service

import (
	"errors"
	"fmt"

	"go-legal-cms/pkg/validator"
)

// ErrValidation marks request-shape failures so handlers can map them to
// 400 while unexpected errors fall through to 500.
var ErrValidation = errors.New("validation failed")

// validateRequest runs the struct's validate tags and wraps the first
// failure in ErrValidation.
func validateRequest(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}
	return nil
}
