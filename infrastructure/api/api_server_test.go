package api_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jordienr/docsite"
	"github.com/jordienr/docsite/infrastructure/api"
)

func newTestHandler(t *testing.T, opts ...docsite.Option) http.Handler {
	t.Helper()
	opts = append([]docsite.Option{
		docsite.WithSQLite(filepath.Join(t.TempDir(), "test.db")),
	}, opts...)
	client, err := docsite.New(opts...)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return api.NewAPIServer(client).Handler()
}

func TestAPIServer_NavigationRoutes(t *testing.T) {
	handler := newTestHandler(t)

	for _, path := range []string{
		"/api/v1/navigation",
		"/api/v1/navigation/levels",
		"/api/v1/navigation/auth",
		"/api/v1/references",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s: status = %d, want %d", path, w.Code, http.StatusOK)
		}
	}
}

func TestAPIServer_UnknownLevelIs404(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/navigation/billing", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.api+json" {
		t.Errorf("content type = %q", ct)
	}
}

func TestAPIServer_PagesWriteProtected(t *testing.T) {
	handler := newTestHandler(t, docsite.WithAPIKeys("secret"))

	body := `{"slug":"guides/auth","title":"Auth"}`

	req := httptest.NewRequest(http.MethodPut, "/api/v1/pages", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("PUT without key: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/v1/pages", strings.NewReader(body))
	req.Header.Set("X-API-KEY", "secret")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("PUT with key: status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	// Reads stay open.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/pages", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET pages: status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAPIServer_MCPEndpointMounted(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	// The MCP streamable HTTP endpoint answers GET without a session with a
	// client error rather than chi's 404, which proves the mount.
	if w.Code == http.StatusNotFound {
		t.Errorf("MCP endpoint not mounted, got 404")
	}
}
