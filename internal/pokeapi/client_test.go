package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("base = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("http://example.com:1234/api/v2?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != "http://example.com:1234/api/v2/" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	u, err = parseBaseURL("  pokeapi.example  ")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "pokeapi.example" {
		t.Fatalf("scheme/host = %q/%q, want https/pokeapi.example", u.Scheme, u.Host)
	}
}

func TestParseBaseURL_RejectsMissingHost(t *testing.T) {
	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatal("expected error for base url without host")
	}
}

func TestClient_FetchesSummaryAndDetail(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/v2/pokemon/25", "/api/v2/pokemon/pikachu":
			_, _ = w.Write([]byte(`{
				"id": 25,
				"name": "pikachu",
				"forms": [{"name": "pikachu", "url": "https://x/form/25/"}],
				"sprites": {"front_default": "https://img/25.png", "back_default": "ignored"},
				"height": 4
			}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/api/v2", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	summary, err := c.FetchSummary(ctx, "25")
	if err != nil {
		t.Fatalf("FetchSummary returned error: %v", err)
	}
	if summary.Name != "pikachu" || summary.ID != 25 {
		t.Fatalf("FetchSummary payload = %#v, want pikachu/25", summary)
	}

	detail, err := c.FetchDetail(ctx, "pikachu")
	if err != nil {
		t.Fatalf("FetchDetail returned error: %v", err)
	}
	if len(detail.Forms) != 1 || detail.Forms[0].Name != "pikachu" {
		t.Fatalf("FetchDetail forms = %#v, want [pikachu]", detail.Forms)
	}
	if detail.Sprites.FrontDefault != "https://img/25.png" {
		t.Fatalf("FetchDetail sprite = %q", detail.Sprites.FrontDefault)
	}

	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_EscapesIdentifierAsOneSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ident    string
		wantPath string
		wantRaw  string
	}{
		{ident: "pikachu", wantPath: "/api/v2/pokemon/pikachu", wantRaw: "/api/v2/pokemon/pikachu"},
		{ident: "mr. mime", wantPath: "/api/v2/pokemon/mr. mime", wantRaw: "/api/v2/pokemon/mr.%20mime"},
		{ident: "a/b", wantPath: "/api/v2/pokemon/a/b", wantRaw: "/api/v2/pokemon/a%2Fb"},
		{ident: "100%", wantPath: "/api/v2/pokemon/100%", wantRaw: "/api/v2/pokemon/100%25"},
		{ident: "farfetch'd", wantPath: "/api/v2/pokemon/farfetch'd", wantRaw: "/api/v2/pokemon/farfetch%27d"},
	}

	for _, tt := range tests {
		var gotPath, gotRaw string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotRaw = r.URL.EscapedPath()
			_, _ = w.Write([]byte(`{"id": 1, "name": "x"}`))
		}))

		c, err := NewClient(server.URL+"/api/v2", time.Second)
		if err != nil {
			server.Close()
			t.Fatalf("NewClient returned error: %v", err)
		}
		_, err = c.FetchSummary(context.Background(), tt.ident)
		server.Close()
		if err != nil {
			t.Fatalf("%q: FetchSummary returned error: %v", tt.ident, err)
		}
		if gotRaw != tt.wantRaw {
			t.Fatalf("%q: escaped path = %q, want %q", tt.ident, gotRaw, tt.wantRaw)
		}
		if gotPath != tt.wantPath {
			t.Fatalf("%q: path = %q, want %q", tt.ident, gotPath, tt.wantPath)
		}
	}
}

func TestClient_NonSuccessStatusIsNotFound(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", status)
		}))

		c, err := NewClient(server.URL, time.Second)
		if err != nil {
			server.Close()
			t.Fatalf("NewClient returned error: %v", err)
		}

		_, err = c.FetchSummary(context.Background(), "notapokemon")
		server.Close()
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("status %d: err = %v, want ErrNotFound", status, err)
		}
		var statusErr *StatusError
		if !errors.As(err, &statusErr) || statusErr.Code != status {
			t.Fatalf("status %d: err = %v, want StatusError with code", status, err)
		}
		if !strings.Contains(err.Error(), "notapokemon") {
			t.Fatalf("error %q should name the identifier", err.Error())
		}
	}
}

func TestClient_DecodeFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": `))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchDetail(context.Background(), "bulbasaur")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("decode failure should not be ErrNotFound: %v", err)
	}
	if !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("error %q should mention decode", err.Error())
	}
}

func TestClient_BlankIdentifierSkipsRequest(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchSummary(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank identifier")
	}
	if hits.Load() != 0 {
		t.Fatalf("server hits = %d, want 0", hits.Load())
	}
}

func TestNilClient(t *testing.T) {
	var c *Client
	if _, err := c.FetchSummary(context.Background(), "1"); err == nil {
		t.Fatal("expected error from nil client")
	}
	if _, err := c.FetchDetail(context.Background(), "1"); err == nil {
		t.Fatal("expected error from nil client")
	}
	if c.BaseURL() != "" {
		t.Fatal("nil client BaseURL should be empty")
	}
}
