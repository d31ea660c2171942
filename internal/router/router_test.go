package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dog-life/internal/platform/chance"
	"dog-life/internal/platform/delay"
	"dog-life/internal/router"
)

func newServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()

	opts.Sleeper = delay.None
	if opts.Rand == nil {
		opts.Rand = chance.NewFixed(0)
	}
	if opts.AudioTick == 0 {
		opts.AudioTick = 10 * time.Millisecond
	}
	if opts.Voiceover == nil {
		m := router.NewVoiceoverManager(opts)
		t.Cleanup(m.Shutdown)
		opts.Voiceover = m
	}

	ts := httptest.NewServer(router.NewRouter(opts))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func TestHTTP_ReadAllIsScopedByViewer(t *testing.T) {
	ts := newServer(t, router.Options{})

	if got := unread(t, ts.URL, "ana"); got != 2 {
		t.Fatalf("expected 2 unread before read-all, got %d", got)
	}

	st, body := doReq(t, ts.URL, "POST", "/notifications/read-all", "ana", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 read-all, got %d body=%s", st, string(body))
	}

	if got := unread(t, ts.URL, "ana"); got != 0 {
		t.Fatalf("expected 0 unread for ana, got %d", got)
	}
	// otro viewer no se entera
	if got := unread(t, ts.URL, "bruno"); got != 2 {
		t.Fatalf("expected 2 unread for bruno, got %d", got)
	}
}

func TestHTTP_HomeAggregates(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "GET", "/home", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 home, got %d body=%s", st, string(body))
	}

	var resp struct {
		Pupsona struct {
			Name string `json:"name"`
		} `json:"pupsona"`
		Posts []struct {
			ID int `json:"id"`
		} `json:"posts"`
		Notifications struct {
			Unread int `json:"unread"`
		} `json:"notifications"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode home: %v body=%s", err, string(body))
	}
	if resp.Pupsona.Name != "Buddy" {
		t.Fatalf("expected pupsona Buddy, got %q", resp.Pupsona.Name)
	}
	if len(resp.Posts) == 0 {
		t.Fatalf("expected posts in home")
	}
	if resp.Notifications.Unread != 2 {
		t.Fatalf("expected 2 unread, got %d", resp.Notifications.Unread)
	}
}

func TestHTTP_ServicesDetail(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "GET", "/services/2", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 provider, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "GET", "/services/99", "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown provider, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "GET", "/services/abc", "", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad id, got %d", st)
	}
}

func TestHTTP_NavMarksActiveTab(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "GET", "/nav?path=/match", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 nav, got %d", st)
	}

	var tabs []struct {
		Name   string `json:"name"`
		Active bool   `json:"active"`
	}
	_ = json.Unmarshal(body, &tabs)
	if len(tabs) != 5 {
		t.Fatalf("expected 5 tabs, got %d", len(tabs))
	}
	for _, tab := range tabs {
		if tab.Active != (tab.Name == "Match") {
			t.Fatalf("unexpected active flag on %s", tab.Name)
		}
	}
}

func TestHTTP_ThoughtsValidatesGender(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, _ := doReq(t, ts.URL, "POST", "/thoughts", "", map[string]any{
		"image":  "/park-playtime.png",
		"gender": "other",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid gender, got %d", st)
	}

	st, body := doReq(t, ts.URL, "POST", "/thoughts", "", map[string]any{
		"image":  "/park-playtime.png",
		"gender": "male",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 thought, got %d body=%s", st, string(body))
	}
}

func TestHTTP_VoiceReturnsSnakeCaseSample(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "POST", "/voice", "", map[string]any{
		"text":   "hola",
		"gender": "female",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 voice, got %d body=%s", st, string(body))
	}

	var resp map[string]string
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode voice: %v body=%s", err, string(body))
	}
	if resp["sample_url"] != "/female-beagle-voice.mp3" || resp["message"] == "" {
		t.Fatalf("unexpected voice response: %s", string(body))
	}
}

func TestHTTP_AIRateLimitPerViewer(t *testing.T) {
	ts := newServer(t, router.Options{AIRateLimit: 0.001, AIRateBurst: 1})

	payload := map[string]any{"gender": "female"}

	if st, _ := doReq(t, ts.URL, "POST", "/thoughts", "ana", payload); st != http.StatusOK {
		t.Fatalf("expected first request allowed, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/thoughts", "ana", payload); st != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on second request, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/thoughts", "bruno", payload); st != http.StatusOK {
		t.Fatalf("expected other viewer allowed, got %d", st)
	}
	// los listados no tienen límite
	if st, _ := doReq(t, ts.URL, "GET", "/ask-ai/popular", "ana", nil); st != http.StatusOK {
		t.Fatalf("expected popular not limited, got %d", st)
	}
}

type sessionView struct {
	Session struct {
		ID      string `json:"id"`
		Source  string `json:"source"`
		State   string `json:"state"`
		Ready   bool   `json:"ready"`
		Playing bool   `json:"playing"`
		Step    int    `json:"step"`
		Gender  string `json:"gender"`
		Thought string `json:"thought"`
	} `json:"session"`
	Notices []struct {
		Title string `json:"title"`
	} `json:"notices"`
	Error string `json:"error"`
}

func TestHTTP_VoiceoverEndToEnd(t *testing.T) {
	ts := newServer(t, router.Options{})
	viewer := "ana"

	// 1) crear sesión
	st, body := doReq(t, ts.URL, "POST", "/voiceover/sessions", viewer, nil)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create session, got %d body=%s", st, string(body))
	}
	created := decodeView(t, body)
	id := created.Session.ID
	if id == "" || created.Session.State != "idle" {
		t.Fatalf("unexpected new session: %s", string(body))
	}
	base := "/voiceover/sessions/" + id

	// 2) toggle sin audio: no es fatal
	st, body = doReq(t, ts.URL, "POST", base+"/toggle", viewer, nil)
	if st != http.StatusOK || decodeView(t, body).Error == "" {
		t.Fatalf("expected 200 with error on early toggle, got %d body=%s", st, string(body))
	}

	// 3) generar
	st, body = doReq(t, ts.URL, "POST", base+"/generate", viewer, map[string]any{"gender": "female"})
	if st != http.StatusAccepted {
		t.Fatalf("expected 202 generate, got %d body=%s", st, string(body))
	}

	// 4) esperar a que la voz quede lista y llegue el notice
	var (
		view   sessionView
		titles []string
	)
	deadline := time.Now().Add(3 * time.Second)
	for {
		st, body = doReq(t, ts.URL, "GET", base, viewer, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get session, got %d body=%s", st, string(body))
		}
		view = decodeView(t, body)
		for _, n := range view.Notices {
			titles = append(titles, n.Title)
		}
		if view.Session.Step == 3 && view.Session.Ready && contains(titles, "Voice Generated") {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("voice never became ready: %s", string(body))
		}
		time.Sleep(10 * time.Millisecond)
	}
	if view.Session.Gender != "female" || view.Session.Thought == "" || view.Session.Source == "" {
		t.Fatalf("unexpected generated session: %+v", view.Session)
	}

	// 5) play
	st, body = doReq(t, ts.URL, "POST", base+"/toggle", viewer, nil)
	if st != http.StatusOK || !decodeView(t, body).Session.Playing {
		t.Fatalf("expected playing after toggle, got %d body=%s", st, string(body))
	}

	// 6) otro viewer no ve la sesión
	if st, _ = doReq(t, ts.URL, "GET", base, "bruno", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for other viewer, got %d", st)
	}

	// 7) dispose
	if st, _ = doReq(t, ts.URL, "DELETE", base, viewer, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 dispose, got %d", st)
	}
	if st, _ = doReq(t, ts.URL, "GET", base, viewer, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after dispose, got %d", st)
	}
}

func TestHTTP_VoiceoverGenerateRejectsUnknownGender(t *testing.T) {
	ts := newServer(t, router.Options{})

	_, body := doReq(t, ts.URL, "POST", "/voiceover/sessions", "", nil)
	id := decodeView(t, body).Session.ID

	st, _ := doReq(t, ts.URL, "POST", "/voiceover/sessions/"+id+"/generate", "", map[string]any{"gender": "cat"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown gender, got %d", st)
	}
}

func unread(t *testing.T, baseURL, viewer string) int {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/notifications", viewer, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 notifications, got %d body=%s", st, string(body))
	}
	var resp struct {
		Unread int `json:"unread"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode notifications: %v", err)
	}
	return resp.Unread
}

func decodeView(t *testing.T, body []byte) sessionView {
	t.Helper()

	var v sessionView
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("decode session view: %v body=%s", err, string(body))
	}
	return v
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func doReq(t *testing.T, baseURL, method, path, viewer string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if viewer != "" {
		req.Header.Set("X-User-ID", viewer)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
