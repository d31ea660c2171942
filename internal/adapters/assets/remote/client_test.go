package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dog-life/internal/ports/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssetServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var deleted []string

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/assets", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "k" {
			http.Error(w, "no", http.StatusUnauthorized)
			return
		}
		switch r.URL.Query().Get("ref") {
		case "/male-pug-voice.mp3":
			_ = json.NewEncoder(w).Encode(assetResponse{Kind: "audio", ContentType: "audio/mpeg", DurationSeconds: 4.5})
		case "/weird":
			_ = json.NewEncoder(w).Encode(assetResponse{Kind: "video"})
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})
	mux.HandleFunc("/v1/blobs/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		deleted = append(deleted, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, &deleted
}

func TestClient_Lookup(t *testing.T) {
	ts, _ := newAssetServer(t)
	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "k", Timeout: time.Second})
	require.NoError(t, err)

	m, err := c.Lookup(context.Background(), "/male-pug-voice.mp3")
	require.NoError(t, err)
	assert.Equal(t, assets.KindAudio, m.Kind)
	assert.Equal(t, 4500*time.Millisecond, m.Duration)

	_, err = c.Lookup(context.Background(), "/missing.mp3")
	assert.ErrorIs(t, err, assets.ErrNotFound)

	_, err = c.Lookup(context.Background(), "/weird")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestClient_Unauthorized(t *testing.T) {
	ts, _ := newAssetServer(t)
	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "wrong"})
	require.NoError(t, err)

	_, err = c.Lookup(context.Background(), "/male-pug-voice.mp3")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_RevokeOnlyBlobs(t *testing.T) {
	ts, deleted := newAssetServer(t)
	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "k"})
	require.NoError(t, err)

	require.NoError(t, c.Revoke(context.Background(), "/male-pug-voice.mp3"))
	require.NoError(t, c.Revoke(context.Background(), "blob:abc"))
	assert.Equal(t, []string{"/v1/blobs/abc"}, *deleted)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
