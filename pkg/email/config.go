package email

import (
	"net/mail"
	"time"
)

// Provider selects the EmailSender implementation.
type Provider string

const (
	ProviderMailSend Provider = "sendgrid" // POST {base}/v3/mail/send with a bearer token.
	ProviderPostmark Provider = "postmark"
	ProviderDev      Provider = "dev"  // Writes messages to DevDir.
	ProviderNone     Provider = "none" // Welcome emails are disabled.
)

// Config holds email service configuration.
//
// SenderEmail is required for every provider; the remaining fields are
// checked by the constructor of the provider that needs them.
type Config struct {
	BaseURL            string        `env:"EMAIL_BASE_URL" envDefault:"https://api.sendgrid.com"`
	AuthorizationToken string        `env:"EMAIL_AUTHORIZATION_TOKEN"`
	Timeout            time.Duration `env:"EMAIL_TIMEOUT"` // Zero keeps the HTTP client's default.

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SenderEmail  string `env:"SENDER_EMAIL,required"`
	SenderName   string `env:"SENDER_NAME"`   // Defaults to SenderEmail.
	SupportEmail string `env:"SUPPORT_EMAIL"` // Reply-To, when set.

	DevDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

func (c Config) senderName() string {
	if c.SenderName != "" {
		return c.SenderName
	}
	return c.SenderEmail
}

// fromHeader renders the sender for providers taking an RFC 5322 From value.
func (c Config) fromHeader() string {
	if c.SenderName == "" {
		return c.SenderEmail
	}
	return (&mail.Address{Name: c.SenderName, Address: c.SenderEmail}).String()
}
