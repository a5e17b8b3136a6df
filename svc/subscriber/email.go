package subscriber

import (
	"fmt"

	"github.com/dmitrymomot/newsletter/pkg/validator"
)

// Email is a syntactically valid bare address (local@domain). Nothing is
// resolved or delivered to check it.
type Email struct {
	value string
}

// ParseEmail accepts raw exactly as given; surrounding whitespace or a
// display name makes it invalid.
func ParseEmail(raw string) (Email, error) {
	if err := validator.Apply(validator.ValidEmail("email", raw)); err != nil {
		return Email{}, fmt.Errorf("%w %q: %w", ErrInvalidEmail, raw, err)
	}
	return Email{value: raw}, nil
}

// MustParseEmail is ParseEmail that panics on invalid input.
func MustParseEmail(raw string) Email {
	e, err := ParseEmail(raw)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Email) String() string {
	return e.value
}
