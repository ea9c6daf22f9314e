package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jordienr/docsite"
	apimiddleware "github.com/jordienr/docsite/infrastructure/api/middleware"
	v1 "github.com/jordienr/docsite/infrastructure/api/v1"
	mcpinternal "github.com/jordienr/docsite/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// APIServer provides an HTTP API backed by a docsite Client.
type APIServer struct {
	client      *docsite.Client
	apiKeys     []string
	corsOrigins []string
	server      *Server
	router      chi.Router
	logger      *slog.Logger
}

// APIServerOption configures an APIServer.
type APIServerOption func(*APIServer)

// WithCORSOrigins sets the allowed CORS origins. The docs frontend runs on a
// different origin than the API, so browsers need this. Empty means no CORS
// headers are emitted.
func WithCORSOrigins(origins []string) APIServerOption {
	return func(a *APIServer) {
		a.corsOrigins = origins
	}
}

// NewAPIServer creates a new APIServer wired to the given docsite Client.
// The client's API keys configure write-protection: mutating endpoints on
// /api/v1/pages require a valid key. Navigation, references, and MCP remain
// read-only and open.
func NewAPIServer(client *docsite.Client, opts ...APIServerOption) *APIServer {
	a := &APIServer{
		client:  client,
		apiKeys: client.APIKeys(),
		logger:  client.Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// mountRoutes wires up all v1 API routes on the given router.
func (a *APIServer) mountRoutes(router chi.Router) {
	if len(a.corsOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: a.corsOrigins,
			AllowedMethods: []string{"GET", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-API-KEY"},
			MaxAge:         300,
		}))
	}
	router.Use(apimiddleware.RequestLogger(a.logger))

	navRouter := v1.NewNavigationRouter(a.client)
	refsRouter := v1.NewReferencesRouter(a.client)
	pagesRouter := v1.NewPagesRouter(a.client)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(30 * time.Second))

		// Open read-only routes.
		r.Mount("/navigation", navRouter.Routes())
		r.Mount("/references", refsRouter.Routes())

		// Write-protected routes.
		r.Group(func(r chi.Router) {
			r.Use(apimiddleware.WriteProtectAuth(a.apiKeys))
			r.Mount("/pages", pagesRouter.Routes())
		})
	})

	// The MCP transport streams its responses, so it sits outside the timed
	// /api/v1 group.
	mcpSrv := mcpinternal.NewServer(a.client.Navigation, a.client.References, a.client.Pages, "1.0.0", a.logger)
	router.Mount("/mcp", server.NewStreamableHTTPServer(mcpSrv.MCPServer()))

	router.Get("/health", healthHandler)
	router.Get("/healthz", healthHandler)
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}

// ListenAndServe starts the HTTP server on the given address.
func (a *APIServer) ListenAndServe(addr string) error {
	a.server = NewServer(addr, a.Handler(), a.logger)
	return a.server.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Handler returns the full route tree as an http.Handler for use with
// custom servers and tests. No global timeout middleware is applied here
// because the streaming MCP mount cannot run behind chi's Timeout wrapper;
// the /api/v1 group carries its own deadline in mountRoutes.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		a.router = chi.NewRouter()
		a.router.Use(chimiddleware.RequestID)
		a.router.Use(chimiddleware.RealIP)
		a.router.Use(chimiddleware.Recoverer)
		a.mountRoutes(a.router)
	}
	return a.router
}
