package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NoControlChars rejects any Unicode control character, including tabs and newlines.
func NoControlChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, char := range value {
				if unicode.IsControl(char) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain control characters",
			TranslationKey: "validation.no_control_chars",
			Value:          value,
		},
	}
}

// ValidUTF8 rejects byte sequences that are not valid UTF-8.
func ValidUTF8(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return utf8.ValidString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be valid UTF-8 text",
			TranslationKey: "validation.utf8",
			Value:          value,
		},
	}
}

// ExcludesChars rejects values containing any rune from chars.
func ExcludesChars(field, value, chars string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsAny(value, chars)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not contain any of %q", chars),
			TranslationKey: "validation.excludes_chars",
			Value:          value,
		},
	}
}
