// internal/validator/validator.go
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"subscription-tracker/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var Validate *validator.Validate

var nonSpace = regexp.MustCompile(`\S`)

// MaxMoney is the largest amount a NUMERIC(12, 2) column holds.
var MaxMoney = decimal.RequireFromString("9999999999.99")

// parseMoney accepts amounts with at most two decimal places that fit
// NUMERIC(12, 2).
func parseMoney(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, false
	}
	if !d.Equal(d.Truncate(2)) {
		return decimal.Decimal{}, false
	}
	if d.Abs().GreaterThan(MaxMoney) {
		return decimal.Decimal{}, false
	}
	return d, true
}

func init() {
	Validate = validator.New()

	// report json names so field errors match the request body
	Validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// строка не пустая и не только пробелы
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonSpace.MatchString(fl.Field().String())
	})

	// "2025-01-31"
	_ = Validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.DateLayout, fl.Field().String())
		return err == nil
	})

	_ = Validate.RegisterValidation("money_positive", func(fl validator.FieldLevel) bool {
		d, ok := parseMoney(fl.Field().String())
		return ok && d.IsPositive()
	})

	_ = Validate.RegisterValidation("money_nonnegative", func(fl validator.FieldLevel) bool {
		d, ok := parseMoney(fl.Field().String())
		return ok && !d.IsNegative()
	})

	_ = Validate.RegisterValidation("billing_cycle", func(fl validator.FieldLevel) bool {
		return domain.BillingCycle(fl.Field().String()).Valid()
	})

	_ = Validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).Valid()
	})

	_ = Validate.RegisterValidation("usage_frequency", func(fl validator.FieldLevel) bool {
		return domain.UsageFrequency(fl.Field().String()).Valid()
	})
}
