package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// firstInvalidField returns the struct field name of the first failed rule,
// or an empty string if err does not come from the validator.
func firstInvalidField(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return validationErrors[0].StructField()
	}

	return ""
}
