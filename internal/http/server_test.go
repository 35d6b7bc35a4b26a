package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"emissioni/internal/uploads"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := uploads.NewStore(10, time.Minute)
	t.Cleanup(store.Close)
	return NewServer(":0", store, 10<<20)
}

func TestIndexAndHealth(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("index status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Emissioni CO₂ mensili") {
		t.Fatalf("index body missing heading")
	}
	if !strings.Contains(rr.Body.String(), `accept=".xlsx,.xls"`) {
		t.Fatalf("index body missing upload control")
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.Handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestIndexUnknownPathIs404(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/inesistente", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "go_goroutines") {
		t.Fatalf("metrics body missing standard collectors")
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	srv.Handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rr.Header().Get("Content-Security-Policy"); got == "" {
		t.Error("missing Content-Security-Policy header")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"dati.xlsx", "dati.xlsx"},
		{"  dati.xlsx  ", "dati.xlsx"},
		{"/tmp/dati.xlsx", "dati.xlsx"},
		{`c:\tmp\dati.xlsx`, `c:_tmp_dati.xlsx`},
		{"da\"ti.xlsx", "da_ti.xlsx"},
		{"da\x00ti.xlsx", "dati.xlsx"},
		{"..", ""},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:4321"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	// Direct peer is not a trusted proxy: the forwarded header is ignored.
	if got := extractClientIP(req); got != "192.0.2.7" {
		t.Errorf("extractClientIP = %q, want direct peer", got)
	}

	req.RemoteAddr = "127.0.0.1:4321"
	if got := extractClientIP(req); got != "203.0.113.9" {
		t.Errorf("extractClientIP = %q, want forwarded client", got)
	}
}
