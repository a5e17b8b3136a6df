package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/newsletter/pkg/logger"
)

// CheckFunc reports whether a dependency can serve traffic.
type CheckFunc func(context.Context) error

// LivenessHandler answers 200 OK with an empty body as long as the process
// is able to serve HTTP at all. It never touches dependencies.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

// ReadinessHandler runs every check with the request context. It answers
// 200 OK when all of them pass and 500 Internal Server Error on the first failure.
func ReadinessHandler(log *slog.Logger, checks ...CheckFunc) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}
