package validator

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			Value:          value,
		},
	}
}

// MaxGraphemes limits the length in user-perceived characters (extended
// grapheme clusters), so "e" + combining accent counts once.
func MaxGraphemes(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return uniseg.GraphemeClusterCount(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			Value:          value,
		},
	}
}
