package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/utafrali/storefront-insights/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestWriteData(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteData(rec, map[string]int{"total": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
	assert.Nil(t, resp.Timestamp)
}

func TestWriteDataStamped(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteDataStamped(rec, "payload")

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Timestamp)
}

func TestWriteError_AppError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/overview", nil)

	WriteError(rec, req, apperrors.ReportUnavailable("dashboard overview", errors.New("db down")), testLogger())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "REPORT_UNAVAILABLE", resp.Error)
	assert.Equal(t, "failed to fetch dashboard overview data", resp.Message)
}

func TestWriteError_NotFoundSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/1", nil)

	WriteError(rec, req, apperrors.ErrNotFound, testLogger())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "NOT_FOUND", resp.Error)
}

func TestWriteError_Unknown(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(rec, req, errors.New("boom"), testLogger())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error)
	assert.Equal(t, "an internal error occurred", resp.Message)
}

func TestParseID(t *testing.T) {
	rec := httptest.NewRecorder()
	id, ok := ParseID(rec, "d2719f2e-55a6-4e86-9ecb-0af3a2a0dbb4")
	assert.True(t, ok)
	assert.Equal(t, "d2719f2e-55a6-4e86-9ecb-0af3a2a0dbb4", id)

	rec = httptest.NewRecorder()
	_, ok = ParseID(rec, "not-a-uuid")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
