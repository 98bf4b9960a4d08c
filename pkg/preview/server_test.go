package preview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/blizzard-html/blizzard/pkg/html"
	"github.com/blizzard-html/blizzard/pkg/site"
)

func testSite(t *testing.T) *site.Site {
	t.Helper()
	s := site.New()
	s.MustAdd(site.Page{
		Path:  "/",
		Title: "Home",
		Render: func() *html.Node {
			return html.Document(html.Html(html.Body(html.H1(html.Text("Home")))))
		},
	})
	s.MustAdd(site.Page{
		Path:  "/about",
		Title: "About",
		Render: func() *html.Node {
			return html.Document(html.Html(html.Body(html.P(html.Text("About us")))))
		},
	})
	return s
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := ts.Client().Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestServePage(t *testing.T) {
	srv := New(testSite(t), &Config{EnableReload: false})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, body := get(t, ts, "/about")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	want := "<!DOCTYPE html><html><body><p>About us</p></body></html>"
	if body != want {
		t.Errorf("body = %q, want %q", body, want)
	}
}

func TestServeNotFound(t *testing.T) {
	srv := New(testSite(t), &Config{EnableReload: false})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, body := get(t, ts, "/missing")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if !strings.Contains(body, "404") || !strings.Contains(body, "/missing") {
		t.Errorf("not-found page should mention the path, got %q", body)
	}
}

func TestReloadScriptInjection(t *testing.T) {
	srv := New(testSite(t), &Config{EnableReload: true})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	_, body := get(t, ts, "/")
	if !strings.Contains(body, "_blizzard/reload") {
		t.Errorf("reload script should be injected, got %q", body)
	}

	srvOff := New(testSite(t), &Config{EnableReload: false})
	tsOff := httptest.NewServer(srvOff.Handler())
	defer tsOff.Close()

	_, body = get(t, tsOff, "/")
	if strings.Contains(body, "<script>") {
		t.Errorf("no script should be injected when reload is off, got %q", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := New(testSite(t), &Config{EnableReload: false})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	get(t, ts, "/")
	get(t, ts, "/missing")

	resp, body := get(t, ts, "/metrics")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics status = %d", resp.StatusCode)
	}
	for _, metric := range []string{
		"blizzard_preview_pages_rendered_total",
		"blizzard_preview_render_duration_seconds",
		"blizzard_preview_render_bytes",
	} {
		if !strings.Contains(body, metric) {
			t.Errorf("metrics output missing %s", metric)
		}
	}
	if !strings.Contains(body, `status="404"`) {
		t.Errorf("404s should be counted, got:\n%s", body)
	}
}

func TestReloadTriggerEndpoint(t *testing.T) {
	srv := New(testSite(t), &Config{EnableReload: true})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := ts.Client().Post(ts.URL+"/_blizzard/reload", "", nil)
	if err != nil {
		t.Fatalf("POST reload: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}
}

func TestReloadWebSocket(t *testing.T) {
	srv := New(testSite(t), &Config{EnableReload: true})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/_blizzard/reload"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Wait for the hub to register the client before broadcasting.
	deadline := time.Now().Add(2 * time.Second)
	for srv.Reload().ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	srv.Reload().Notify()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(msg), "reload") {
		t.Errorf("message = %q, want reload", msg)
	}
}

func TestHubClientLifecycle(t *testing.T) {
	hub := NewReloadHub()
	if hub.ClientCount() != 0 {
		t.Fatalf("new hub should have no clients")
	}
	// Broadcasting with no clients is a no-op.
	hub.Notify()
	hub.Close()
}
