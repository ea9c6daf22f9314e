package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/jordienr/docsite"
	"github.com/jordienr/docsite/domain/page"
	"github.com/jordienr/docsite/infrastructure/api/middleware"
	"github.com/jordienr/docsite/infrastructure/api/v1/dto"
)

// PagesRouter handles page metadata API endpoints.
type PagesRouter struct {
	client *docsite.Client
	logger *slog.Logger
}

// NewPagesRouter creates a new PagesRouter.
func NewPagesRouter(client *docsite.Client) *PagesRouter {
	return &PagesRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for page endpoints. Slugs contain slashes,
// so the slug routes use a wildcard.
func (p *PagesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", p.List)
	router.Put("/", p.Upsert)
	router.Get("/*", p.Get)
	router.Delete("/*", p.Delete)

	return router
}

// List handles GET /api/v1/pages.
func (p *PagesRouter) List(w http.ResponseWriter, req *http.Request) {
	metas, err := p.client.Pages.List(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, p.logger)
		return
	}

	out := make([]dto.PageMeta, len(metas))
	for i, m := range metas {
		out[i] = metaToDTO(m)
	}

	middleware.WriteJSON(w, http.StatusOK, dto.PageListResponse{Data: out})
}

// Get handles GET /api/v1/pages/{slug}.
func (p *PagesRouter) Get(w http.ResponseWriter, req *http.Request) {
	meta, err := p.client.Pages.Get(req.Context(), slugParam(req))
	if err != nil {
		middleware.WriteError(w, req, err, p.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.PageResponse{Data: metaToDTO(meta)})
}

// Upsert handles PUT /api/v1/pages.
func (p *PagesRouter) Upsert(w http.ResponseWriter, req *http.Request) {
	var body dto.PageUpsertRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req,
			fmt.Errorf("decode body: %v: %w", err, middleware.ErrBadRequest), p.logger)
		return
	}
	if body.Slug == "" || body.Title == "" {
		middleware.WriteError(w, req,
			fmt.Errorf("slug and title are required: %w", middleware.ErrBadRequest), p.logger)
		return
	}

	meta, err := p.client.Pages.Upsert(req.Context(), metaFromRequest(body))
	if err != nil {
		middleware.WriteError(w, req, err, p.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.PageResponse{Data: metaToDTO(meta)})
}

// Delete handles DELETE /api/v1/pages/{slug}.
func (p *PagesRouter) Delete(w http.ResponseWriter, req *http.Request) {
	if err := p.client.Pages.Delete(req.Context(), slugParam(req)); err != nil {
		middleware.WriteError(w, req, err, p.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func slugParam(req *http.Request) string {
	slug := chi.URLParam(req, "*")
	if decoded, err := url.PathUnescape(slug); err == nil {
		slug = decoded
	}
	return slug
}

func metaToDTO(m page.Meta) dto.PageMeta {
	return dto.PageMeta{
		ID:           m.ID(),
		Slug:         m.Slug(),
		Title:        m.Title(),
		Subtitle:     m.Subtitle(),
		Description:  m.Description(),
		SidebarLabel: m.SidebarLabel(),
		Breadcrumb:   m.Breadcrumb(),
		HideToc:      m.HideToc(),
	}
}

func metaFromRequest(body dto.PageUpsertRequest) page.Meta {
	opts := []page.MetaOption{}
	if body.ID != "" {
		opts = append(opts, page.WithID(body.ID))
	}
	if body.Subtitle != "" {
		opts = append(opts, page.WithSubtitle(body.Subtitle))
	}
	if body.Description != "" {
		opts = append(opts, page.WithDescription(body.Description))
	}
	if body.SidebarLabel != "" {
		opts = append(opts, page.WithSidebarLabel(body.SidebarLabel))
	}
	if len(body.Breadcrumb) > 0 {
		opts = append(opts, page.WithBreadcrumb(body.Breadcrumb...))
	}
	if body.HideToc {
		opts = append(opts, page.WithHideToc())
	}
	return page.NewMeta(body.Slug, body.Title, opts...)
}
