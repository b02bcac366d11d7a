package validator

import (
	"github.com/go-playground/validator/v10"
)

// Singleton validator instance
var validate = validator.New(validator.WithRequiredStructEnabled())

// Var validates a single value against a tag expression such as "required,min=5".
// String lengths are counted in runes.
func Var(value any, tag string) error {
	return validate.Var(value, tag)
}
