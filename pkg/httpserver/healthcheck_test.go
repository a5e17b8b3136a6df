package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/newsletter/pkg/httpserver"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	httpserver.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health_check", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		checks []httpserver.CheckFunc
		want   int
	}{
		{name: "no checks", want: http.StatusOK},
		{name: "all pass", checks: []httpserver.CheckFunc{ok, ok}, want: http.StatusOK},
		{name: "one fails", checks: []httpserver.CheckFunc{ok, down}, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			httpserver.ReadinessHandler(nil, tt.checks...)(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
			assert.Equal(t, tt.want, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestReadinessUsesRequestContext(t *testing.T) {
	t.Parallel()
	type key struct{}
	var seen any
	check := func(ctx context.Context) error {
		seen = ctx.Value(key{})
		return nil
	}

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	req = req.WithContext(context.WithValue(req.Context(), key{}, "marker"))
	httpserver.ReadinessHandler(nil, check)(httptest.NewRecorder(), req)

	assert.Equal(t, "marker", seen)
}
