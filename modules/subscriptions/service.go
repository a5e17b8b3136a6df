package subscriptions

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/newsletter/handler"
	"github.com/dmitrymomot/newsletter/pkg/logger"
	"github.com/dmitrymomot/newsletter/svc/subscriber"
)

// Registrar is satisfied by *subscriber.Registrar.
type Registrar interface {
	Register(ctx context.Context, s subscriber.NewSubscriber) (bool, error)
}

// WelcomeSender is satisfied by *subscriber.WelcomeMailer.
type WelcomeSender interface {
	SendWelcome(ctx context.Context, s subscriber.NewSubscriber) error
}

// Service handles subscription submissions.
type Service struct {
	registrar Registrar
	welcome   WelcomeSender
	log       *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithWelcome enables the welcome email for first-time subscribers.
func WithWelcome(w WelcomeSender) ServiceOption {
	return func(s *Service) { s.welcome = w }
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService panics when registrar is nil.
func NewService(registrar Registrar, opts ...ServiceOption) *Service {
	if registrar == nil {
		panic("subscriptions.NewService: nil registrar")
	}
	s := &Service{
		registrar: registrar,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("subscriptions"))
	return s
}

// Subscribe validates the form and registers the subscriber. Repeat
// submissions of a known email succeed without side effects. A failed
// welcome email is logged and does not change the response.
func (s *Service) Subscribe(ctx handler.Context, form subscriber.Form) handler.Response {
	sub, err := subscriber.FromForm(form)
	if err != nil {
		return handler.Error(errors.Join(handler.ErrBadRequest, err))
	}

	created, err := s.registrar.Register(ctx, sub)
	if err != nil {
		return handler.Error(errors.Join(handler.ErrInternalServerError, err))
	}

	if created && s.welcome != nil {
		if err := s.welcome.SendWelcome(ctx, sub); err != nil {
			s.log.ErrorContext(ctx, "failed to send welcome email",
				logger.Error(err),
				logger.Subscriber(sub.Email.String(), sub.Name.String()),
			)
		}
	}

	return handler.OK()
}
