package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/dtapi/booking-go/internal/errors"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDecodeJSON_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"job_id":"job-1"}`))
	rec := httptest.NewRecorder()

	var dst struct {
		JobID string `json:"job_id"`
	}
	ok := DecodeJSON(rec, req, &dst)

	assert.True(t, ok)
	assert.Equal(t, "job-1", dst.JobID)
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"job_id":"job-1","bogus":true}`))
	rec := httptest.NewRecorder()

	var dst struct {
		JobID string `json:"job_id"`
	}
	ok := DecodeJSON(rec, req, &dst)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "invalid_json", body["kind"])
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrorParams{Code: http.StatusBadRequest, Kind: "invalid_path", Err: errors.New("job id is required")})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeBody(t, rec)
	assert.Equal(t, "job id is required", body["error"])
	assert.Equal(t, "invalid_path", body["kind"])
}

func TestWriteAppError_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"validation", apperrors.Validation("title is required"), http.StatusUnprocessableEntity, "validation"},
		{"not found", apperrors.NotFound("job not found"), http.StatusNotFound, "not_found"},
		{"conflict", apperrors.Conflict("job has already been taken"), http.StatusConflict, "conflict"},
		{"invalid transition", apperrors.InvalidTransition("cannot end a job in status \"pending\""), http.StatusConflict, "invalid_transition"},
		{"forbidden", apperrors.Forbidden("admin capability required"), http.StatusForbidden, "forbidden"},
		{"foreign key", apperrors.ForeignKey("referenced translator does not exist"), http.StatusConflict, "foreign_key"},
		{"internal", apperrors.Internal("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteAppError(rec, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tc.wantKind, body["kind"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestWriteAppError_FieldIncluded(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteAppError(rec, apperrors.ValidationField("session_time", "invalid session time"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "session_time", body["field"])
}

func TestWriteAppError_PlainErrorIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteAppError(rec, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "internal", body["kind"])
}
