package handler

import "net/http"

// emptyResponse represents an empty HTTP response with only a status code
type emptyResponse struct {
	status int
}

// Render writes the status code without any body content
func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// OK creates an empty 200 response.
func OK() Response {
	return emptyResponse{status: http.StatusOK}
}

// Empty creates an empty response with status 204 (No Content).
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus creates an empty response with a custom status code.
//
// Example:
//
//	return handler.EmptyWithStatus(http.StatusAccepted)
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}

// errorResponse defers to the wrap error handler.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response whose rendering fails with err, handing it to
// the configured ErrorHandler. Wrap err in an HTTPError to pick the status.
//
// Example:
//
//	if errors.Is(err, subscriber.ErrInvalidEmail) {
//		return handler.Error(errors.Join(handler.ErrBadRequest, err))
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
