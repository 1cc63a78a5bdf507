package conversation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/serein-care/serein/backend/internal/model/chat"
	"github.com/serein-care/serein/backend/internal/service/contextstore"
	"github.com/serein-care/serein/backend/internal/service/orchestrator"
)

// Handler exposes persona assignment and turn generation to the app layer.
type Handler struct {
	contexts *contextstore.Service
	pipeline *orchestrator.Orchestrator
}

// New creates the conversation handler.
func New(contexts *contextstore.Service, pipeline *orchestrator.Orchestrator) *Handler {
	return &Handler{contexts: contexts, pipeline: pipeline}
}

// RegisterRoutes mounts the conversation routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/conversations", h.handleAssign)
	r.Post("/conversations/{conversationID}/persona", h.handleReassign)
	r.Post("/conversations/{conversationID}/turns", h.handleTurn)
}

// handleAssign binds a persona to a (possibly new) conversation.
func (h *Handler) handleAssign(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ConversationID  string            `json:"conversationId"`
		PersonaID       string            `json:"personaId"`
		ThemeID         string            `json:"themeId"`
		UserPreferences map[string]string `json:"userPreferences"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.PersonaID == "" {
		respondError(w, http.StatusBadRequest, "personaId is required")
		return
	}
	if payload.ConversationID == "" {
		payload.ConversationID = uuid.NewString()
	}

	err := h.contexts.Assign(r.Context(), contextstore.AssignParams{
		ConversationID:  payload.ConversationID,
		PersonaID:       payload.PersonaID,
		ThemeID:         payload.ThemeID,
		UserPreferences: payload.UserPreferences,
	})
	if err != nil {
		if errors.Is(err, contextstore.ErrPersonaNotFound) {
			respondError(w, http.StatusBadRequest, "persona not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to assign persona")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"conversationId": payload.ConversationID,
		"personaId":      payload.PersonaID,
	})
}

// handleReassign hands the conversation to another persona.
func (h *Handler) handleReassign(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	var payload struct {
		PersonaID string `json:"personaId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.PersonaID == "" {
		respondError(w, http.StatusBadRequest, "personaId is required")
		return
	}

	transition, err := h.contexts.Reassign(r.Context(), conversationID, payload.PersonaID)
	if err != nil {
		switch {
		case errors.Is(err, contextstore.ErrPersonaNotFound):
			respondError(w, http.StatusBadRequest, "persona not found")
		case errors.Is(err, contextstore.ErrContextMissing):
			respondError(w, http.StatusNotFound, "conversation not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to reassign persona")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"conversationId":    conversationID,
		"personaId":         payload.PersonaID,
		"transitionMessage": transition,
	})
}

// handleTurn runs one user turn through the orchestration pipeline.
func (h *Handler) handleTurn(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	var payload struct {
		Message string         `json:"message"`
		History []chat.Message `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.pipeline.Respond(r.Context(), chat.TurnRequest{
		ConversationID: conversationID,
		Message:        payload.Message,
		History:        payload.History,
	})
	if err != nil {
		if errors.Is(err, orchestrator.ErrEmptyMessage) {
			respondError(w, http.StatusBadRequest, "message is required")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to process turn")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
