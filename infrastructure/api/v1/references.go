package v1

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/jordienr/docsite"
	"github.com/jordienr/docsite/domain/reference"
	"github.com/jordienr/docsite/infrastructure/api/middleware"
	"github.com/jordienr/docsite/infrastructure/api/v1/dto"
)

// ReferencesRouter handles reference registry API endpoints.
type ReferencesRouter struct {
	client *docsite.Client
	logger *slog.Logger
}

// NewReferencesRouter creates a new ReferencesRouter.
func NewReferencesRouter(client *docsite.Client) *ReferencesRouter {
	return &ReferencesRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for reference endpoints.
func (r *ReferencesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Get("/{name}", r.Get)

	return router
}

// List handles GET /api/v1/references.
func (r *ReferencesRouter) List(w http.ResponseWriter, req *http.Request) {
	groups := r.client.References.Groups(req.Context())

	out := make([]dto.ReferenceGroup, len(groups))
	for i, g := range groups {
		out[i] = groupToDTO(g)
	}

	middleware.WriteJSON(w, http.StatusOK, dto.ReferenceListResponse{Data: out})
}

// Get handles GET /api/v1/references/{name}.
func (r *ReferencesRouter) Get(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	entry, err := r.client.References.Entry(req.Context(), name)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.ReferenceEntryResponse{
		Data: entryToDTO(entry),
	})
}

func groupToDTO(g reference.Group) dto.ReferenceGroup {
	entries := g.Entries()
	out := make([]dto.ReferenceEntry, len(entries))
	for i, e := range entries {
		out[i] = entryToDTO(e)
	}
	return dto.ReferenceGroup{
		Name:    string(g.Name()),
		Entries: out,
	}
}

func entryToDTO(e reference.Entry) dto.ReferenceEntry {
	return dto.ReferenceEntry{
		Name:          e.Name(),
		Library:       e.Library(),
		Versions:      e.Versions(),
		LatestVersion: e.LatestVersion(),
		Icon:          e.Icon(),
	}
}
