package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dog-life/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewerContext(t *testing.T) {
	var got string
	h := ViewerContext(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Viewer(r.Context())
	}))

	cases := map[string]string{
		"":              DefaultViewer,
		"  alice  ":     "alice",
		"bad\x00viewer": DefaultViewer,
		strings.Repeat("x", maxViewerLen+1): DefaultViewer,
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(ViewerHeader, header)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, want, got, "header %q", header)
	}
}

func TestRateLimiter_PerViewer(t *testing.T) {
	l := NewRateLimiter(1, 2)

	assert.True(t, l.Allow("alice"))
	assert.True(t, l.Allow("alice"))
	assert.False(t, l.Allow("alice"), "burst exhausted")
	assert.True(t, l.Allow("bob"), "other viewer has its own bucket")
}

func TestRateLimiter_DisabledWhenZero(t *testing.T) {
	l := NewRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		require.True(t, l.Allow("guest"))
	}
}

func TestRateLimiter_Returns429(t *testing.T) {
	l := NewRateLimiter(1, 1)
	h := ViewerContext(l.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/thoughts", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/thoughts", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRequestLog_WritesStatusAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Output: &buf, Format: logger.FormatJSON})

	h := chimw.RequestID(RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context(), nil).Info("inside", nil)
		http.Error(w, "nope", http.StatusNotFound)
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	out := buf.String()
	assert.Contains(t, out, `"msg":"inside"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"request_id":`)
}
