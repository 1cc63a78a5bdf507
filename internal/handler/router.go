package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	conversationHandler "github.com/serein-care/serein/backend/internal/handler/conversation"
	personaHandler "github.com/serein-care/serein/backend/internal/handler/persona"
	middlewarePkg "github.com/serein-care/serein/backend/internal/middleware"
	personaModel "github.com/serein-care/serein/backend/internal/model/persona"
	"github.com/serein-care/serein/backend/internal/service/contextstore"
	"github.com/serein-care/serein/backend/internal/service/orchestrator"
	"github.com/serein-care/serein/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(personas personaModel.Store, contexts *contextstore.Service, pipeline *orchestrator.Orchestrator) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		personaHandler.New(personas).RegisterRoutes(api)
		conversationHandler.New(contexts, pipeline).RegisterRoutes(api)

		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}
