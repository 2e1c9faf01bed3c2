package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

func containsField(err error, field string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Field() == field {
			return true
		}
	}
	return false
}
