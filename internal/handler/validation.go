// internal/handler/validation.go
package handler

import (
	"errors"
	"fmt"
	"net/http"

	val "subscription-tracker/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// validateStruct returns field name → message, or nil when v is valid.
func validateStruct(v any) map[string]string {
	err := val.Validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		if _, seen := fields[e.Field()]; !seen {
			fields[e.Field()] = fieldErrorToString(e)
		}
	}
	return fields
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "isodate":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", e.Field())
	case "money_positive":
		return fmt.Sprintf("%s must be greater than 0 with at most 2 decimal places and at most %s", e.Field(), val.MaxMoney.StringFixed(2))
	case "money_nonnegative":
		return fmt.Sprintf("%s must be at least 0 with at most 2 decimal places and at most %s", e.Field(), val.MaxMoney.StringFixed(2))
	case "billing_cycle":
		return fmt.Sprintf("%s must be monthly or yearly", e.Field())
	case "category":
		return fmt.Sprintf("%s must be one of Entertainment, Productivity, Health, Shopping, Other", e.Field())
	case "usage_frequency":
		return fmt.Sprintf("%s must be one of daily, weekly, monthly, rarely, never", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

// normalizer is implemented by requests that clean their fields before
// validation.
type normalizer interface {
	normalize()
}

// bindAndValidate writes the error response itself and reports whether the
// handler may continue.
func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return false
	}
	if n, ok := req.(normalizer); ok {
		n.normalize()
	}
	if fields := validateStruct(req); fields != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": fields})
		return false
	}
	return true
}
