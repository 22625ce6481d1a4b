package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wellness/internal/logger"
)

// loggedRequest runs handler behind withLogging with a request logger that
// writes into the returned buffer.
func loggedRequest(t *testing.T, method, target string, handler http.HandlerFunc) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	req := httptest.NewRequest(method, target, nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	h := &Handler{logger: logger.Nop()}
	h.withLogging(handler).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithLogging_Fields(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		handler    http.HandlerFunc
		wantStatus float64
		wantSize   float64
		wantLevel  string
	}{
		{
			name:   "explicit status with body",
			method: http.MethodPost,
			target: "/wellness/checkins?x=1",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("hello"))
			},
			wantStatus: http.StatusCreated,
			wantSize:   5,
			wantLevel:  "info",
		},
		{
			name:   "implicit 200",
			method: http.MethodGet,
			target: "/health",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantStatus: http.StatusOK,
			wantSize:   2,
			wantLevel:  "info",
		},
		{
			name:       "nothing written",
			method:     http.MethodDelete,
			target:     "/chat/context",
			handler:    func(http.ResponseWriter, *http.Request) {},
			wantStatus: http.StatusOK,
			wantSize:   0,
			wantLevel:  "info",
		},
		{
			name:   "client error",
			method: http.MethodGet,
			target: "/wellness/checkins/9",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantLevel:  "warn",
		},
		{
			name:   "server error",
			method: http.MethodGet,
			target: "/wellness/stats",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusInternalServerError,
			wantLevel:  "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := loggedRequest(t, tt.method, tt.target, tt.handler)

			assert.Equal(t, tt.target, entry["uri"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "", entry["route"])
			assert.Contains(t, entry, "duration")
		})
	}
}
