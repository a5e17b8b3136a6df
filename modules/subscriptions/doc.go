// Package subscriptions exposes the newsletter sign-up over HTTP.
//
// Routes:
//
//	GET  /health_check   200, empty body
//	GET  /ready          200 when every readiness check passes, 500 otherwise
//	POST /subscriptions  urlencoded name and email
//
// POST /subscriptions answers 200 for a new or an already known subscriber,
// 400 when the body cannot be bound or a field fails validation, and 500 when
// storage fails. Every response body is empty; failure details go to the log.
// A welcome email is sent only for a subscriber created by the request.
package subscriptions
