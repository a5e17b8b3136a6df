// Package binder decodes HTTP request bodies into Go structs.
//
// Form binds application/x-www-form-urlencoded bodies using `form` struct
// tags. Supported field types are strings, integers, floats, booleans,
// pointers to those (for optional fields) and slices (for repeated keys).
// Only the request body is consulted; query string parameters are ignored.
//
// Binding never validates. A struct with missing fields comes back with zero
// values and the caller decides whether that is acceptable.
//
// Errors wrap ErrMissingContentType, ErrUnsupportedMediaType, ErrInvalidForm
// or ErrInvalidTarget so that handlers can map them to a 400 response.
package binder
