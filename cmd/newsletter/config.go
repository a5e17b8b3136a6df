package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/newsletter/pkg/clientip"
	"github.com/dmitrymomot/newsletter/pkg/config"
	"github.com/dmitrymomot/newsletter/pkg/email"
	"github.com/dmitrymomot/newsletter/pkg/environment"
	"github.com/dmitrymomot/newsletter/pkg/logger"
	"github.com/dmitrymomot/newsletter/pkg/requestid"
)

// appConfig holds the process-wide switches. Component settings live in the
// Config type of each package and are loaded only when the component is used.
type appConfig struct {
	Environment    string `env:"APP_ENVIRONMENT" envDefault:"local"`
	ServiceName    string `env:"APP_SERVICE_NAME" envDefault:"newsletter"`
	LogLevel       string `env:"LOG_LEVEL"`  // Overrides the environment default.
	LogFormat      string `env:"LOG_FORMAT"` // json or text; overrides the environment default.
	StorageDriver  string `env:"STORAGE_DRIVER" envDefault:"memory"`
	EmailProvider  string `env:"EMAIL_PROVIDER" envDefault:"none"`
	WelcomeSubject string `env:"WELCOME_SUBJECT"`

	TrustedIPHeaders []string `env:"HTTP_TRUSTED_IP_HEADERS" envSeparator:","` // e.g. X-Forwarded-For
}

type settings struct {
	env      environment.Environment
	driver   storageDriver
	provider email.Provider
	app      appConfig
}

func loadSettings() (settings, error) {
	var app appConfig
	if err := config.Load(&app); err != nil {
		return settings{}, err
	}
	return parseSettings(app)
}

func parseSettings(app appConfig) (settings, error) {
	env, err := environment.Parse(app.Environment)
	if err != nil {
		return settings{}, err
	}
	driver, err := parseStorageDriver(app.StorageDriver)
	if err != nil {
		return settings{}, err
	}
	if driver == driverMemory && env.IsProduction() {
		return settings{}, errMemoryInProduction
	}
	provider, err := parseEmailProvider(app.EmailProvider)
	if err != nil {
		return settings{}, err
	}
	if _, err := logOptions(app); err != nil {
		return settings{}, err
	}
	return settings{env: env, driver: driver, provider: provider, app: app}, nil
}

func parseEmailProvider(name string) (email.Provider, error) {
	p := email.Provider(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case "":
		return email.ProviderNone, nil
	case email.ProviderMailSend, email.ProviderPostmark, email.ProviderDev, email.ProviderNone:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown email provider %q", email.ErrInvalidConfig, name)
	}
}

func logOptions(app appConfig) ([]logger.Option, error) {
	var opts []logger.Option
	if app.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(app.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", app.LogLevel, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	switch f := logger.Format(strings.ToLower(app.LogFormat)); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: use json or text", app.LogFormat)
	}
	return opts, nil
}

func newLogger(s settings) *slog.Logger {
	// Settings were validated by parseSettings.
	extra, _ := logOptions(s.app)

	opts := []logger.Option{
		logger.WithEnvironment(s.env, s.app.ServiceName),
		logger.WithOutput(os.Stdout),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	log := logger.New(append(opts, extra...)...)
	logger.SetAsDefault(log)
	return log
}
