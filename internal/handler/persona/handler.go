package persona

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serein-care/serein/backend/internal/model/persona"
)

// Handler serves the read-only persona catalog.
type Handler struct {
	personas persona.Store
}

// New creates the persona handler.
func New(personas persona.Store) *Handler {
	return &Handler{personas: personas}
}

// RegisterRoutes mounts the persona routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/personas", h.handleListPersonas)
}

// handleListPersonas lists the catalog, optionally filtered by theme. With a
// theme filter, the first entry is the default persona for that theme.
func (h *Handler) handleListPersonas(w http.ResponseWriter, r *http.Request) {
	theme := r.URL.Query().Get("theme")
	if theme == "" {
		h.respondJSON(w, http.StatusOK, h.personas.List())
		return
	}
	h.respondJSON(w, http.StatusOK, h.personas.ListByTheme(theme))
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
