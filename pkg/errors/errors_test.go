package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("customer", "42")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "customer with id 42 not found")
}

func TestReportUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	err := ReportUnavailable("dashboard overview", cause)

	assert.Equal(t, "REPORT_UNAVAILABLE", err.Code)
	assert.Equal(t, "failed to fetch dashboard overview data", err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.True(t, errors.Is(err, ErrReportUnavailable))
	assert.True(t, errors.Is(err, cause))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", InvalidInput("bad"), http.StatusBadRequest},
		{"wrapped app error", fmt.Errorf("ctx: %w", NotFound("order", "1")), http.StatusNotFound},
		{"sentinel not found", fmt.Errorf("ctx: %w", ErrNotFound), http.StatusNotFound},
		{"sentinel unavailable", ErrServiceUnavail, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("base")
	wrapped := Wrap(base, "doing thing")

	assert.True(t, errors.Is(wrapped, base))
	assert.Equal(t, "doing thing: base", wrapped.Error())
}
