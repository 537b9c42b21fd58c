package validators

import (
	"consultanit/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
)

// IsNIT accepts strings made of 8 to 10 digits.
func IsNIT(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return utils.IsNITValid(val)
}
