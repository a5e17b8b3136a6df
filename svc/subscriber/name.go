package subscriber

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/newsletter/pkg/validator"
)

// MaxNameLength is measured in grapheme clusters, not bytes.
const MaxNameLength = 256

// forbiddenNameChars are unsafe once a name is echoed into HTML, JSON or a shell.
const forbiddenNameChars = `/()"<>\{}`

// Name is a validated subscriber name. The zero value is not valid; build
// one with ParseName.
type Name struct {
	value string
}

// ParseName trims raw and accepts it when the result is non-empty valid UTF-8,
// at most MaxNameLength characters long and free of control and forbidden
// characters.
func ParseName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)

	err := validator.First(
		validator.RequiredString("name", trimmed),
		validator.ValidUTF8("name", trimmed),
		validator.MaxGraphemes("name", trimmed, MaxNameLength),
		validator.NoControlChars("name", trimmed),
		validator.ExcludesChars("name", trimmed, forbiddenNameChars),
	)
	if err != nil {
		return Name{}, fmt.Errorf("%w %q: %w", ErrInvalidName, raw, err)
	}
	return Name{value: trimmed}, nil
}

// MustParseName is ParseName that panics on invalid input.
func MustParseName(raw string) Name {
	n, err := ParseName(raw)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Name) String() string {
	return n.value
}
