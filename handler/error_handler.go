package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/newsletter/pkg/logger"
)

// defaultErrorHandler writes the mapped status with an empty body.
func defaultErrorHandler[C Context](ctx C, err error) {
	ctx.ResponseWriter().WriteHeader(StatusCode(err))
}

// NewErrorHandler returns an ErrorHandler that logs the failure and answers
// with the mapped status and an empty body. Client errors are logged at WARN,
// server errors at ERROR. Error details never reach the response.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		status := StatusCode(err)
		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		r := ctx.Request()
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		ctx.ResponseWriter().WriteHeader(status)
	}
}
