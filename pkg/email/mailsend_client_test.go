package email_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/pkg/email"
)

type capturedRequest struct {
	method      string
	path        string
	auth        string
	contentType string
	body        []byte
}

func newProvider(t *testing.T, status int) (*httptest.Server, <-chan capturedRequest) {
	t.Helper()
	captured := make(chan capturedRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured <- capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			auth:        r.Header.Get("Authorization"),
			contentType: r.Header.Get("Content-Type"),
			body:        body,
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func mailSendConfig(baseURL string) email.Config {
	return email.Config{
		BaseURL:            baseURL,
		AuthorizationToken: "my-secret-token",
		SenderEmail:        "newsletter@example.com",
		Timeout:            time.Second,
	}
}

func validParams() email.SendEmailParams {
	return email.SendEmailParams{
		SendTo:   "ursula_le_guin@gmail.com",
		Subject:  "Welcome!",
		BodyHTML: "<p>Hi</p>",
		BodyText: "Hi",
	}
}

func TestMailSendClientSendsExpectedRequest(t *testing.T) {
	t.Parallel()

	srv, captured := newProvider(t, http.StatusAccepted)
	client, err := email.NewMailSendClient(mailSendConfig(srv.URL))
	require.NoError(t, err)

	require.NoError(t, client.SendEmail(context.Background(), validParams()))

	req := <-captured
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/v3/mail/send", req.path)
	assert.Equal(t, "Bearer my-secret-token", req.auth)
	assert.Equal(t, "application/json", req.contentType)

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.body, &body))
	for _, key := range []string{"From", "Personalizations", "Subject", "Content"} {
		assert.Contains(t, body, key)
	}

	assert.Equal(t, map[string]any{"email": "newsletter@example.com", "name": "newsletter@example.com"}, body["From"])
	assert.Equal(t, []any{map[string]any{"to": "ursula_le_guin@gmail.com"}}, body["Personalizations"])
	assert.Equal(t, "Welcome!", body["Subject"])
	assert.Equal(t, []any{
		map[string]any{"content_type": "text/html", "content": "<p>Hi</p>"},
		map[string]any{"content_type": "text/plain", "content": "Hi"},
	}, body["Content"])
}

func TestMailSendClientTrailingSlashInBaseURL(t *testing.T) {
	t.Parallel()

	srv, captured := newProvider(t, http.StatusOK)
	client, err := email.NewMailSendClient(mailSendConfig(srv.URL + "/"))
	require.NoError(t, err)

	require.NoError(t, client.SendEmail(context.Background(), validParams()))
	assert.Equal(t, "/v3/mail/send", (<-captured).path)
}

func TestMailSendClientStatusHandling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "200 ok", status: http.StatusOK},
		{name: "202 accepted", status: http.StatusAccepted},
		{name: "400 bad request", status: http.StatusBadRequest, wantErr: true},
		{name: "401 unauthorized", status: http.StatusUnauthorized, wantErr: true},
		{name: "500 server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, _ := newProvider(t, tt.status)
			client, err := email.NewMailSendClient(mailSendConfig(srv.URL))
			require.NoError(t, err)

			err = client.SendEmail(context.Background(), validParams())
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMailSendClientDoesNotRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	client, err := email.NewMailSendClient(mailSendConfig(srv.URL))
	require.NoError(t, err)

	assert.ErrorIs(t, client.SendEmail(context.Background(), validParams()), email.ErrFailedToSendEmail)
	assert.Equal(t, int32(1), calls.Load())
}

func TestMailSendClientTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	cfg := mailSendConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond
	client, err := email.NewMailSendClient(cfg)
	require.NoError(t, err)

	assert.ErrorIs(t, client.SendEmail(context.Background(), validParams()), email.ErrFailedToSendEmail)
}

func TestMailSendClientTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := email.NewMailSendClient(mailSendConfig(url))
	require.NoError(t, err)

	assert.ErrorIs(t, client.SendEmail(context.Background(), validParams()), email.ErrFailedToSendEmail)
}

func TestMailSendClientRejectsInvalidParamsWithoutCalling(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client, err := email.NewMailSendClient(mailSendConfig(srv.URL))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*email.SendEmailParams)
	}{
		{name: "invalid recipient", mutate: func(p *email.SendEmailParams) { p.SendTo = "not-an-email" }},
		{name: "empty recipient", mutate: func(p *email.SendEmailParams) { p.SendTo = "" }},
		{name: "empty subject", mutate: func(p *email.SendEmailParams) { p.Subject = "" }},
		{name: "empty html body", mutate: func(p *email.SendEmailParams) { p.BodyHTML = "" }},
	}

	for _, tt := range tests {
		params := validParams()
		tt.mutate(&params)
		assert.ErrorIs(t, client.SendEmail(context.Background(), params), email.ErrInvalidParams, tt.name)
	}
	assert.Zero(t, calls.Load())
}

func TestNewMailSendClientInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*email.Config)
		msg    string
	}{
		{name: "missing base url", mutate: func(c *email.Config) { c.BaseURL = "" }, msg: "BaseURL is required"},
		{name: "missing token", mutate: func(c *email.Config) { c.AuthorizationToken = "" }, msg: "AuthorizationToken is required"},
		{name: "invalid sender", mutate: func(c *email.Config) { c.SenderEmail = "newsletter" }, msg: "SenderEmail must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := mailSendConfig("http://localhost")
			tt.mutate(&cfg)

			client, err := email.NewMailSendClient(cfg)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	assert.Panics(t, func() { email.MustNewMailSendClient(email.Config{}) })
}

func TestMailSendClientUsesSenderNameWhenSet(t *testing.T) {
	t.Parallel()

	srv, captured := newProvider(t, http.StatusAccepted)
	cfg := mailSendConfig(srv.URL)
	cfg.SenderName = "Newsletter"
	client, err := email.NewMailSendClient(cfg)
	require.NoError(t, err)

	require.NoError(t, client.SendEmail(context.Background(), validParams()))

	var body map[string]any
	require.NoError(t, json.Unmarshal((<-captured).body, &body))
	assert.Equal(t, map[string]any{"email": "newsletter@example.com", "name": "Newsletter"}, body["From"])
}
