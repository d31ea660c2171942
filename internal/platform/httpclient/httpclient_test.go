package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoJSON_SendsHeadersAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "secret" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["say"], "path": r.URL.Path})
	}))
	defer ts.Close()

	c, err := New(Options{BaseURL: ts.URL + "/", Headers: map[string]string{"X-Api-Key": "secret"}})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	var out map[string]string
	if err := c.DoJSON(context.Background(), http.MethodPost, "v1/echo", map[string]string{"say": "woof"}, &out); err != nil {
		t.Fatalf("do json: %v", err)
	}
	if out["echo"] != "woof" || out["path"] != "/v1/echo" {
		t.Fatalf("unexpected response: %v", out)
	}
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer ts.Close()

	c, err := New(Options{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = c.DoJSON(context.Background(), http.MethodGet, "/missing", nil, nil)
	if StatusOf(err) != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	if _, err := New(Options{BaseURL: "::not a url"}); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
}

func TestDoJSON_RelativePathNeedsBaseURL(t *testing.T) {
	c, _ := New(Options{})
	if err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil); err == nil {
		t.Fatalf("expected error without base url")
	}
}
