package response

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusNotFound, domainerrors.CodeNotFound, "no such route", nil, discard())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	body := decode(t, w)
	assert.EqualValues(t, 1, body["v"])
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.NotContains(t, body, "data")
}

func TestError_Helpers(t *testing.T) {
	tests := []struct {
		name     string
		write    func(http.ResponseWriter)
		wantCode int
		wantErr  string
	}{
		{"too many requests", func(w http.ResponseWriter) { TooManyRequests(w, "slow down", nil) }, http.StatusTooManyRequests, "RATE_LIMITED"},
		{"internal", func(w http.ResponseWriter) { InternalError(w, "boom", nil) }, http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.write(w)

			assert.Equal(t, tt.wantCode, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantErr, body["code"])
			assert.Equal(t, body["error"], body["message"])
		})
	}
}

func TestError_DefaultCodeFromStatus(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusConflict, "", "taken", map[string]string{"email": "in use"}, nil)

	body := decode(t, w)
	assert.Equal(t, "CONFLICT", body["code"])
	assert.Equal(t, map[string]any{"email": "in use"}, body["details"])
}

func TestCodeForStatus(t *testing.T) {
	assert.Equal(t, domainerrors.CodeValidation, CodeForStatus(http.StatusUnprocessableEntity))
	assert.Equal(t, domainerrors.CodeForbidden, CodeForStatus(http.StatusForbidden))
	assert.Equal(t, domainerrors.CodeInternal, CodeForStatus(http.StatusTeapot))
}
