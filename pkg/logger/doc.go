// Package logger builds *slog.Logger instances with environment-aware
// defaults and context-driven attributes.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "newsletter"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// Attribute helpers (Error, RequestID, Component, Duration, Subscriber) keep
// key names consistent across packages. Middleware emits one access-log
// record per HTTP request.
package logger
