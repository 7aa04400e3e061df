package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"status": "ok"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestCreatedEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "Workday computed successfully", nil)

	assert.Equal(t, 201, rec.Code)
	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Workday computed successfully", resp.Message)
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, []string{}, &Meta{Page: 2, Limit: 50, TotalItems: 120, TotalPages: 3})

	resp := decode(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name    string
		write   func(rec *httptest.ResponseRecorder)
		code    int
		errCode string
	}{
		{"bad request", func(rec *httptest.ResponseRecorder) { BadRequest(rec, "bad", nil) }, 400, "BAD_REQUEST"},
		{"unauthorized", func(rec *httptest.ResponseRecorder) { Unauthorized(rec, "no token") }, 401, "UNAUTHORIZED"},
		{"forbidden", func(rec *httptest.ResponseRecorder) { Forbidden(rec, "admin only") }, 403, "FORBIDDEN"},
		{"not found", func(rec *httptest.ResponseRecorder) { NotFound(rec, "missing") }, 404, "NOT_FOUND"},
		{"conflict", func(rec *httptest.ResponseRecorder) { Conflict(rec, "exists") }, 409, "CONFLICT"},
		{"internal", func(rec *httptest.ResponseRecorder) { InternalServerError(rec, "boom") }, 500, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.code, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.errCode, resp.Error.Code)
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"date": "date must be \"YYYY-MM-DD\""})

	assert.Equal(t, 422, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "date")
}
