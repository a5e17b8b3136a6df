// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a Context and a request struct already populated by
// a binder, and returns a Response that renders itself. Wrap turns it into an
// http.HandlerFunc:
//
//	type subscribeRequest struct {
//		Name  string `form:"name"`
//		Email string `form:"email"`
//	}
//
//	func subscribe(ctx handler.Context, req subscribeRequest) handler.Response {
//		if err := register(ctx, req); err != nil {
//			return handler.Error(err)
//		}
//		return handler.OK()
//	}
//
//	r.Post("/subscriptions", handler.Wrap(subscribe,
//		handler.WithBinder[handler.Context, subscribeRequest](binder.Form()),
//	))
//
// # Errors
//
// Failures are plain errors. Wrapping one with an HTTPError (ErrBadRequest,
// ErrInternalServerError) selects the status code; anything else maps to 500.
// NewErrorHandler logs the failure and writes the status with an empty body.
//
// # Decorators
//
// Decorators wrap a HandlerFunc for cross-cutting concerns. The first
// decorator passed to WithDecorators is the outermost.
package handler
