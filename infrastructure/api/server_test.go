package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jordienr/docsite/infrastructure/api"
)

func TestNewServer_Addr(t *testing.T) {
	srv := api.NewServer("127.0.0.1:9911", http.NotFoundHandler(), nil)

	if got := srv.Addr(); got != "127.0.0.1:9911" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9911")
	}
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	srv := api.NewServer("127.0.0.1:0", http.NotFoundHandler(), nil)

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error: %v", err)
	}
}
