package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/handler"
)

func TestEmptyResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		resp   handler.Response
		status int
	}{
		{name: "ok", resp: handler.OK(), status: http.StatusOK},
		{name: "empty", resp: handler.Empty(), status: http.StatusNoContent},
		{name: "accepted", resp: handler.EmptyWithStatus(http.StatusAccepted), status: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/test", nil)

			require.NoError(t, tt.resp.Render(w, r))
			assert.Equal(t, tt.status, w.Code)
			assert.Empty(t, w.Body.String())
			assert.Empty(t, w.Header().Get("Content-Type"))
		})
	}
}

func TestErrorResponse(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := handler.Error(cause).Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, cause)

	err = handler.Error(nil).Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, handler.ErrInternalServerError)
}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusBadRequest, handler.StatusCode(errors.Join(handler.ErrBadRequest, errors.New("x"))))
	assert.Equal(t, http.StatusInternalServerError, handler.StatusCode(errors.New("x")))
	assert.Equal(t, http.StatusTeapot, handler.StatusCode(handler.HTTPError{Code: http.StatusTeapot, Key: "teapot"}))
}
