package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/logx"
)

func testLogger() logx.Logger { return logx.Nop() }

func withURLParam(req *http.Request, key, value string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

func jsonRequest(method, target, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}

func TestWriteServiceError_Mapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"invalid", fmt.Errorf("wrap: %w", apperr.ErrInvalid), http.StatusBadRequest, "invalid input"},
		{"unauthorized", apperr.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"not found", fmt.Errorf("get: %w", apperr.ErrNotFound), http.StatusNotFound, "not found"},
		{"conflict", apperr.ErrConflict, http.StatusConflict, "conflict"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			writeServiceError(testLogger(), rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			require.Equal(t, tt.status, rr.Code)
			body := decodeBody[ErrorResponse](t, rr)
			assert.Equal(t, tt.msg, body.Error)
			assert.Empty(t, body.Fields)
		})
	}
}

func TestWriteServiceError_ValidationFields(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("create: %w", apperr.NewValidation("cpf", "invalid CPF"))
	rr := httptest.NewRecorder()
	writeServiceError(testLogger(), rr, httptest.NewRequest(http.MethodPost, "/", nil), err)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	body := decodeBody[ErrorResponse](t, rr)
	assert.Equal(t, "validation failed", body.Error)
	assert.Equal(t, map[string]string{"cpf": "invalid CPF"}, body.Fields)
}

func TestDecodeJSON_RejectsUnknownAndTrailing(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}
	for _, body := range []string{`{"name":"a","x":1}`, `{"name":"a"}{}`, `{`} {
		var dst payload
		rr := httptest.NewRecorder()
		ok := decodeJSON(testLogger(), rr, jsonRequest(http.MethodPost, "/", body), &dst)
		assert.False(t, ok, body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05"`), &d))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05T10:00:00Z"`), &d))
	assert.Equal(t, 10, d.Hour())

	assert.Error(t, json.Unmarshal([]byte(`"05/03/2024"`), &d))

	b, err := json.Marshal(Date{time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-05"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestIDFromURL(t *testing.T) {
	t.Parallel()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "12")
	id, err := idFromURL(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, bad := range []string{"", "0", "-3", "abc"} {
		_, err := idFromURL(withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", bad), "id")
		assert.Error(t, err, bad)
	}
}
