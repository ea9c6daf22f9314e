// Package v1 provides the v1 API routes.
package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jordienr/docsite"
	"github.com/jordienr/docsite/domain/nav"
	"github.com/jordienr/docsite/infrastructure/api/middleware"
	"github.com/jordienr/docsite/infrastructure/api/v1/dto"
)

// NavigationRouter handles navigation API endpoints.
type NavigationRouter struct {
	client *docsite.Client
	logger *slog.Logger
}

// NewNavigationRouter creates a new NavigationRouter.
func NewNavigationRouter(client *docsite.Client) *NavigationRouter {
	return &NavigationRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for navigation endpoints.
func (n *NavigationRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", n.Sections)
	router.Get("/levels", n.Levels)
	router.Get("/{level}", n.SectionTree)

	return router
}

// Sections handles GET /api/v1/navigation.
func (n *NavigationRouter) Sections(w http.ResponseWriter, req *http.Request) {
	sections := n.client.Navigation.TopLevelSections(req.Context())

	middleware.WriteJSON(w, http.StatusOK, dto.SectionsResponse{
		Data: itemsToDTO(sections),
	})
}

// Levels handles GET /api/v1/navigation/levels.
func (n *NavigationRouter) Levels(w http.ResponseWriter, req *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, dto.LevelsResponse{
		Data: n.client.Navigation.Levels(req.Context()),
	})
}

// SectionTree handles GET /api/v1/navigation/{level}.
func (n *NavigationRouter) SectionTree(w http.ResponseWriter, req *http.Request) {
	level := chi.URLParam(req, "level")

	root, err := n.client.Navigation.SectionTree(req.Context(), level)
	if err != nil {
		middleware.WriteError(w, req, err, n.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.SectionTreeResponse{
		Level: level,
		Data:  itemToDTO(root),
	})
}

func itemToDTO(it nav.Item) dto.MenuItem {
	return dto.MenuItem{
		Label:        it.Label(),
		Href:         it.Href(),
		Icon:         it.Icon(),
		Level:        it.Level(),
		Community:    it.Community(),
		HasLightIcon: it.HasLightIcon(),
		IsDarkMode:   it.IsDarkMode(),
		Items:        itemsToDTO(it.Items()),
	}
}

func itemsToDTO(items []nav.Item) []dto.MenuItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]dto.MenuItem, len(items))
	for i, it := range items {
		out[i] = itemToDTO(it)
	}
	return out
}
