package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/hypernum/internal/bignum"
)

// TagNumber marks string fields that must parse as a bignum.Number.
const TagNumber = "number"

var (
	structOnce     sync.Once
	structValidate *validator.Validate
)

// Struct returns the shared tag validator with the custom rules registered
func Struct() *validator.Validate {
	structOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation(TagNumber, validateNumber)
		structValidate = v
	})
	return structValidate
}

// validateNumber accepts anything bignum.Parse reads except NaN
func validateNumber(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	n, err := bignum.Parse(s)
	return err == nil && !n.IsNaN()
}

// FieldErrors formats validation errors into a field -> message map
// without leaking struct names
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case TagNumber:
			errs[field] = "Must be a number such as 1e500 or eee5"
		case "max", "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
