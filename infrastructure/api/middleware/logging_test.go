package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestRequestLogger_LogsCompletedRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := RequestLogger(logger)(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/navigation", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{"http request", "method=GET", "path=/api/v1/navigation", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestRequestLogger_IncludesRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	router := chi.NewRouter()
	router.Use(RequestLogger(logger))
	router.Get("/pages/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/pages/guides/auth", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), "route=/pages/*") {
		t.Errorf("log output missing route pattern: %s", buf.String())
	}
}

func TestRequestLogger_HealthChecksAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil)) // info and above

	handler := RequestLogger(logger)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if buf.Len() != 0 {
		t.Errorf("health probe logged at info: %s", buf.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if buf.Len() != 0 {
		t.Errorf("healthz probe logged at info: %s", buf.String())
	}
}
