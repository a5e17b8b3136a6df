package subscriptions

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/newsletter/handler"
	"github.com/dmitrymomot/newsletter/pkg/binder"
	"github.com/dmitrymomot/newsletter/pkg/clientip"
	"github.com/dmitrymomot/newsletter/pkg/environment"
	"github.com/dmitrymomot/newsletter/pkg/httpserver"
	"github.com/dmitrymomot/newsletter/pkg/logger"
	"github.com/dmitrymomot/newsletter/pkg/requestid"
	"github.com/dmitrymomot/newsletter/svc/subscriber"
)

// RouterOptions configures the public HTTP surface.
type RouterOptions struct {
	Service *Service // Required.

	// Logger receives request and error logs; nil discards them.
	Logger *slog.Logger

	// Environment is tagged onto every request context.
	Environment environment.Environment

	// Checks run on GET /ready.
	Checks []httpserver.CheckFunc

	// ClientIPHeaders are proxy headers trusted for the client address.
	// Empty means the TCP peer address is logged.
	ClientIPHeaders []string
}

// Router returns the service routes behind the standard middleware stack.
//
//	r := subscriptions.Router(subscriptions.RouterOptions{
//		Service: subscriptions.NewService(registrar, subscriptions.WithWelcome(welcome)),
//		Logger:  log,
//		Checks:  []httpserver.CheckFunc{store.Healthcheck},
//	})
//	server.Run(ctx, r)
func Router(opts RouterOptions) chi.Router {
	if opts.Service == nil {
		panic("subscriptions.Router: nil service")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware(opts.ClientIPHeaders...),
		environment.Middleware(opts.Environment),
		logger.Middleware(log),
	)

	r.Get("/health_check", httpserver.LivenessHandler())
	r.Get("/ready", httpserver.ReadinessHandler(log, opts.Checks...))
	r.Post("/subscriptions", handler.Wrap(opts.Service.Subscribe,
		handler.WithBinder[handler.Context, subscriber.Form](binder.Form()),
		handler.WithErrorHandler[handler.Context, subscriber.Form](handler.NewErrorHandler(log)),
	))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	return r
}
