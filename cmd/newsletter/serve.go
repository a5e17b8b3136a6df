package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/newsletter/modules/subscriptions"
	"github.com/dmitrymomot/newsletter/pkg/config"
	"github.com/dmitrymomot/newsletter/pkg/email"
	"github.com/dmitrymomot/newsletter/pkg/httpserver"
	"github.com/dmitrymomot/newsletter/svc/subscriber"
)

const closeTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var migrateFirst bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), migrateFirst)
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", false, "apply storage migrations before serving")
	return cmd
}

func serve(ctx context.Context, migrateFirst bool) (err error) {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	log := newLogger(s)

	store, err := openStorage(ctx, s.driver, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		err = errors.Join(err, store.close(closeCtx))
	}()

	// The mongo index is what makes registration idempotent, so it is
	// ensured on every start.
	if migrateFirst || s.driver == driverMongo {
		if err := store.migrate(ctx); err != nil {
			return err
		}
	}

	handler, err := newHandler(s, store, log)
	if err != nil {
		return err
	}

	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		return err
	}
	server := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))

	return server.Run(ctx, handler)
}

func newHandler(s settings, store *storage, log *slog.Logger) (http.Handler, error) {
	opts := []subscriptions.ServiceOption{subscriptions.WithLogger(log)}

	sender, err := newEmailSender(s.provider)
	if err != nil {
		return nil, err
	}
	if sender != nil {
		opts = append(opts, subscriptions.WithWelcome(subscriber.NewWelcomeMailer(sender, s.app.WelcomeSubject)))
	} else {
		log.Warn("email provider disabled, welcome emails will not be sent")
	}

	registrar := subscriber.NewRegistrar(store, subscriber.WithLogger(log))
	return subscriptions.Router(subscriptions.RouterOptions{
		Service:     subscriptions.NewService(registrar, opts...),
		Logger:      log,
		Environment: s.env,
		Checks:      []httpserver.CheckFunc{store.check},

		ClientIPHeaders: s.app.TrustedIPHeaders,
	}), nil
}

func newEmailSender(provider email.Provider) (email.EmailSender, error) {
	if provider == email.ProviderNone {
		return nil, nil
	}
	var cfg email.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return email.New(provider, cfg)
}
