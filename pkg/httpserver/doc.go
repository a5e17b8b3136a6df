// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks and health check handlers.
//
// Server is built with New or NewFromConfig plus Option helpers such as
// WithAddr, WithReadTimeout and WithLogger. Run binds the configured address;
// Serve accepts an already bound net.Listener, which is how callers (tests in
// particular) bind port 0 and read the real address before the first request.
// Both block until the context is cancelled, an interrupt/TERM signal arrives
// or Shutdown is called. Failures are wrapped with ErrStart and ErrShutdown so
// they can be inspected with errors.Is.
//
// LivenessHandler answers 200 with an empty body. ReadinessHandler runs
// dependency checks (database pings and the like) with the request context.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/health_check", httpserver.LivenessHandler())
//	r.Get("/ready", httpserver.ReadinessHandler(log, pg.Healthcheck(db)))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
