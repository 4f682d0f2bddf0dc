package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/utafrali/storefront-insights/pkg/errors"
	"github.com/utafrali/storefront-insights/pkg/logger"
)

// Response is the JSON envelope used by the reporting endpoints. Successful
// responses carry `success: true` and a data payload; failures carry
// `success: false` with a stable error code and a human-readable message.
type Response struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Error     string     `json:"error,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// If encoding fails, headers are already sent so nothing can be done.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData writes a 200 success envelope around the given payload.
func WriteData(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// WriteDataStamped is WriteData plus a server-side timestamp, used by
// endpoints whose consumers display report freshness.
func WriteDataStamped(w http.ResponseWriter, data any) {
	now := time.Now().UTC()
	WriteJSON(w, http.StatusOK, Response{Success: true, Data: data, Timestamp: &now})
}

// WriteError writes a standardized error response based on the error type.
// Internal errors are logged through the request-scoped logger when the
// RequestLogger middleware is mounted, falling back to the given logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}

	status := apperrors.HTTPStatus(err)
	code := "INTERNAL_ERROR"
	message := "an internal error occurred"

	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		code = appErr.Code
		message = appErr.Message
	case errors.Is(err, apperrors.ErrNotFound):
		code = "NOT_FOUND"
		message = "resource not found"
	case errors.Is(err, apperrors.ErrInvalidInput):
		code = "INVALID_INPUT"
		message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		l.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}

	WriteJSON(w, status, Response{Success: false, Error: code, Message: message})
}

// ParseID validates that the given string is a valid UUID and returns it.
// If invalid, it writes a 400 response and returns false, signaling the
// caller to return early.
func ParseID(w http.ResponseWriter, param string) (string, bool) {
	id, err := uuid.Parse(param)
	if err != nil {
		WriteJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "INVALID_PARAMETER",
			Message: "invalid id: " + param,
		})
		return "", false
	}
	return id.String(), true
}
