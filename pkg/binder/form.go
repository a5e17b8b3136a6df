package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxFormSize caps the urlencoded body read by Form.
const DefaultMaxFormSize int64 = 64 << 10

// Form returns a binder for application/x-www-form-urlencoded bodies.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Fields without a form tag are bound by their lower-cased name. Missing
// fields keep their zero value; it is up to validation to reject them.
//
// Example:
//
//	type subscribeRequest struct {
//		Name  string `form:"name"`
//		Email string `form:"email"`
//	}
//
//	handler.Wrap(subscribe, handler.WithBinder(binder.Form()))
func Form() func(r *http.Request, v any) error {
	return FormWithLimit(DefaultMaxFormSize)
}

// FormWithLimit is Form with a custom body size cap in bytes.
func FormWithLimit(maxBytes int64) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}
		if mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if r.Body != nil && maxBytes > 0 {
			r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
		}
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		// PostForm ignores the query string, so ?email=... cannot smuggle values.
		return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)
	}
}
