package subscriber

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/newsletter/pkg/email"
	"github.com/dmitrymomot/newsletter/pkg/email/templates"
)

const (
	defaultWelcomeSubject = "Welcome to our newsletter!"
	welcomeTag            = "welcome"
)

// WelcomeMailer sends the welcome email to freshly registered subscribers.
type WelcomeMailer struct {
	sender  email.EmailSender
	subject string
}

// NewWelcomeMailer panics when sender is nil. An empty subject falls back to
// a default one.
func NewWelcomeMailer(sender email.EmailSender, subject string) *WelcomeMailer {
	if sender == nil {
		panic("subscriber.NewWelcomeMailer: nil sender")
	}
	if subject == "" {
		subject = defaultWelcomeSubject
	}
	return &WelcomeMailer{sender: sender, subject: subject}
}

// SendWelcome renders and sends one welcome email to s.
func (m *WelcomeMailer) SendWelcome(ctx context.Context, s NewSubscriber) error {
	html, err := templates.Render(ctx, welcomeEmail(s.Name.String()))
	if err != nil {
		return fmt.Errorf("render welcome email: %w", err)
	}

	return m.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   s.Email.String(),
		Subject:  m.subject,
		BodyHTML: html,
		BodyText: welcomeText(s.Name.String()),
		Tag:      welcomeTag,
	})
}

func welcomeText(name string) string {
	return fmt.Sprintf("Welcome, %s!\n\nThanks for subscribing to our newsletter.\nYou will hear from us soon.\n", name)
}
