package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookkeeper/pkg/api"
)

func TestRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"string", "something went wrong"},
		{"error", assert.AnError},
		{"custom type", struct{ msg string }{"critical error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			h := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.value)
			}))

			w := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, w.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "internal server error", resp.Message)
			assert.Contains(t, buf.String(), "Panic recovered")
			assert.Contains(t, buf.String(), "stack=")
		})
	}
}

func TestRecoveryMiddleware_NoPanic(t *testing.T) {
	h := RecoveryMiddleware(setupTestLogger())(http.HandlerFunc(okHandler))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRecoveryMiddleware_AbortHandler(t *testing.T) {
	h := RecoveryMiddleware(setupTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
