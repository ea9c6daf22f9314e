package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jordienr/docsite/application/service"
	"github.com/jordienr/docsite/domain/nav"
	"github.com/jordienr/docsite/internal/database"
)

// JSONAPIError represents a JSON:API error object.
type JSONAPIError struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	ID     string `json:"id,omitempty"`
}

// JSONAPIErrorResponse represents a JSON:API error response wrapper.
type JSONAPIErrorResponse struct {
	Errors []JSONAPIError `json:"errors"`
}

// WriteError writes a JSON:API formatted error response.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := http.StatusInternalServerError
	title := "Internal Server Error"
	detail := err.Error()

	switch {
	case errors.Is(err, nav.ErrLevelNotFound),
		errors.Is(err, service.ErrPageNotFound),
		errors.Is(err, service.ErrEntryNotFound),
		errors.Is(err, database.ErrNotFound):
		status = http.StatusNotFound
		title = "Not Found"
	case errors.Is(err, ErrBadRequest):
		status = http.StatusBadRequest
		title = "Bad Request"
	}

	requestID := middleware.GetReqID(r.Context())

	if logger != nil {
		logger.Error("request error",
			"request_id", requestID,
			"status", status,
			"error", err.Error(),
			"path", r.URL.Path,
		)
	}

	resp := JSONAPIErrorResponse{
		Errors: []JSONAPIError{
			{
				Status: http.StatusText(status),
				Title:  title,
				Detail: detail,
				ID:     requestID,
			},
		},
	}

	w.Header().Set("Content-Type", "application/vnd.api+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// ErrBadRequest marks request decoding and validation failures.
var ErrBadRequest = errors.New("bad request")

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
