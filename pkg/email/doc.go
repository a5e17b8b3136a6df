// Package email sends transactional email through a provider-agnostic
// EmailSender interface.
//
// Implementations:
//   - NewMailSendClient: SendGrid-compatible mail-send API. One POST to
//     {BaseURL}/v3/mail/send with a bearer token; any 2xx is success.
//   - NewPostmarkClient: Postmark transactional API.
//   - NewDevSender: writes .html, .txt and .json files to a directory.
//
// New picks one of them from a Provider value (EMAIL_PROVIDER in the
// service config). Every implementation validates SendEmailParams before
// doing any I/O and reports failures wrapped in ErrInvalidParams or
// ErrFailedToSendEmail. None of them retry.
//
//	sender, err := email.NewMailSendClient(cfg)
//	if err != nil {
//		return err
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "ursula_le_guin@gmail.com",
//		Subject:  "Welcome!",
//		BodyHTML: html,
//		BodyText: text,
//		Tag:      "welcome",
//	})
//
// HTML bodies are usually templ components rendered with templates.Render.
package email
