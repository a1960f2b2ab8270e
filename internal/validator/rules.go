package validator

import (
	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires domain-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	// price_type: the three price kinds a service supports
	return v.RegisterValidation("price_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "fixed", "hourly", "variable":
			return true
		}
		return false
	})
}
