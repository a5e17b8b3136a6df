package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/newsletter/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"non-empty", "ursula", true},
		{"padded", "  ursula  ", true},
		{"empty", "", false},
		{"spaces only", "   ", false},
		{"tabs and newlines", "\t\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.RequiredString("name", tt.value))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestMaxGraphemes(t *testing.T) {
	t.Parallel()

	t.Run("counts combining sequences once", func(t *testing.T) {
		t.Parallel()
		// "e" followed by U+0301 is two runes but one grapheme.
		value := strings.Repeat("e\u0301", 256)
		assert.NoError(t, validator.Apply(validator.MaxGraphemes("name", value, 256)))
	})

	t.Run("accepts exactly the limit", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.MaxGraphemes("name", strings.Repeat("a", 256), 256)))
	})

	t.Run("rejects one over the limit", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.MaxGraphemes("name", strings.Repeat("ё", 257), 256))
		verrs := validator.ExtractValidationErrors(err)
		if assert.Len(t, verrs, 1) {
			assert.Equal(t, "validation.max_length", verrs[0].TranslationKey)
		}
	})
}
