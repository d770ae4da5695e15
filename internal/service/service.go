package service

import (
	"errors"

	"go-warehouse-api/pkg/apperr"
	"go-warehouse-api/pkg/validator"

	"gorm.io/gorm"
)

// validateInput runs struct validation and converts the first failure into a
// client-facing validation error.
func validateInput(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return apperr.Validation("field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	return nil
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
