package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
)

const mailSendEndpoint = "/v3/mail/send"

type mailSendClient struct {
	host    string
	token   string
	from    mailSendAddress
	timeout time.Duration
}

// NewMailSendClient creates a sender that talks to a SendGrid-compatible
// mail-send API at cfg.BaseURL.
func NewMailSendClient(cfg Config) (EmailSender, error) {
	host := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if host == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	if cfg.AuthorizationToken == "" {
		return nil, fmt.Errorf("%w: AuthorizationToken is required", ErrInvalidConfig)
	}
	if !validSender(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}

	return &mailSendClient{
		host:    host,
		token:   cfg.AuthorizationToken,
		from:    mailSendAddress{Email: cfg.SenderEmail, Name: cfg.senderName()},
		timeout: cfg.Timeout,
	}, nil
}

// MustNewMailSendClient is NewMailSendClient that panics on invalid config.
func MustNewMailSendClient(cfg Config) EmailSender {
	client, err := NewMailSendClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

type mailSendAddress struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type mailSendPersonalization struct {
	To string `json:"to"`
}

type mailSendContent struct {
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
}

type mailSendRequest struct {
	From             mailSendAddress           `json:"From"`
	Personalizations []mailSendPersonalization `json:"Personalizations"`
	Subject          string                    `json:"Subject"`
	Content          []mailSendContent         `json:"Content"`
}

// SendEmail performs one POST to {base}/v3/mail/send. Any 2xx status is a
// success; everything else is ErrFailedToSendEmail. There is no retry.
func (c *mailSendClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(mailSendRequest{
		From:             c.from,
		Personalizations: []mailSendPersonalization{{To: params.SendTo}},
		Subject:          params.Subject,
		Content: []mailSendContent{
			{ContentType: "text/html", Content: params.BodyHTML},
			{ContentType: "text/plain", Content: params.BodyText},
		},
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	req := sendgrid.GetRequest(c.token, mailSendEndpoint, c.host)
	req.Method = rest.Post
	req.Headers["Content-Type"] = "application/json"
	req.Body = body

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: provider responded with status %d", ErrFailedToSendEmail, resp.StatusCode)
	}
	return nil
}
