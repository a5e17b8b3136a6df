package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates a bare RFC 5322 address of the form local@domain.
// Display-name forms such as "Bob <bob@example.com>" are rejected, the
// domain must contain at least one dot, and no label may be empty.
// No DNS or mailbox checks are performed.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value || addr.Name != "" {
				return false
			}

			at := strings.LastIndex(value, "@")
			if at <= 0 {
				return false
			}
			domain := value[at+1:]

			if !strings.Contains(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			Value:          value,
		},
	}
}
