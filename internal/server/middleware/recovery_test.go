package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/trackkeeper/pkg/api"
)

// decodeErrorResponse разбирает тело ответа как api.ErrorResponse
func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		panicValue any
		name       string
		method     string
		path       string
	}{
		{name: "string panic on insert", method: http.MethodPost, path: "/api/v1/collections/entries", panicValue: "nil payload"},
		{name: "error panic on update", method: http.MethodPatch, path: "/api/v1/collections/tasks/t1", panicValue: errors.New("assignment to entry in nil map")},
		{name: "struct panic on list", method: http.MethodGet, path: "/api/v1/collections/habits", panicValue: struct{ Collection string }{"habits"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RecoveryMiddleware(setupTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panicValue)
			}))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			resp := decodeErrorResponse(t, w)
			assert.Equal(t, http.StatusText(http.StatusInternalServerError), resp.Error)
			assert.Empty(t, resp.Message, "детали паники не раскрываются")
		})
	}
}

func TestRecoveryMiddleware_PassesThrough(t *testing.T) {
	handler := RecoveryMiddleware(setupTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/collections/tasks/t1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRecoveryWithCustomError(t *testing.T) {
	handler := RecoveryWithCustomError(setupTestLogger(), "storage is temporarily unavailable")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("sqlite: database is locked")
		}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "Internal Server Error", resp.Error)
	assert.Equal(t, "storage is temporarily unavailable", resp.Message)
	assert.NotContains(t, resp.Message, "sqlite")
}

func TestRecoveryMiddleware_LogsPanicDetails(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelError}))

	handler := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("habit toggle exploded")
	}))

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/collections/habits/h1", nil)
	req.RemoteAddr = "10.1.2.3:40000"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := logBuf.String()
	assert.Contains(t, logOutput, `msg="Panic recovered"`)
	assert.Contains(t, logOutput, "habit toggle exploded")
	assert.Contains(t, logOutput, "method=PATCH")
	assert.Contains(t, logOutput, "path=/api/v1/collections/habits/h1")
	assert.Contains(t, logOutput, "remote_addr=10.1.2.3:40000")
	assert.Contains(t, logOutput, "goroutine", "стек вызовов попадает в лог")
}

func TestRecoveryMiddleware_InsideLogging(t *testing.T) {
	var logBuf strings.Builder
	logger := newBufferLogger(&logBuf)

	// Logging снаружи видит статус, который записал recovery
	handler := LoggingMiddleware(logger)(RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/collections/tasks", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, logBuf.String(), `msg="HTTP request"`)
	assert.Contains(t, logBuf.String(), "status=500")
	assert.Contains(t, logBuf.String(), "route=/api/v1/collections/tasks")
}

func TestRecoveryMiddleware_RepanicsAbortHandler(t *testing.T) {
	handler := RecoveryMiddleware(setupTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/collections/entries", nil))
	})
}
