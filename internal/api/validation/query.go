package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// ZipPattern matches a US ZIP code: exactly five digits.
var ZipPattern = regexp.MustCompile(`^\d{5}$`)

// ValidateZip validates that the field is a five-digit ZIP code
func ValidateZip(fl validator.FieldLevel) bool {
	return ZipPattern.MatchString(fl.Field().String())
}

// RegisterSearchValidators registers all search-related custom validators
func RegisterSearchValidators(v *validator.Validate) {
	v.RegisterValidation("zip5", ValidateZip)
}
