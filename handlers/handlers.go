// Package handlers provides the HTTP request handlers for the medinfo API:
// the medicine-lookup proxy endpoint, the chat session surface, and the
// health check, with input validation and JSON response formatting.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sidesh-hub/medinfo-india/conversation"
	"github.com/sidesh-hub/medinfo-india/interfaces"
	"github.com/sidesh-hub/medinfo-india/logging"
	"github.com/sidesh-hub/medinfo-india/medicine"
	"github.com/sidesh-hub/medinfo-india/resolver"
	"github.com/sidesh-hub/medinfo-india/sessions"
	"github.com/sidesh-hub/medinfo-india/validation"
)

// Handler carries the dependencies for all endpoints.
type Handler struct {
	store     interfaces.LocalStore
	resolver  interfaces.Resolver
	sessions  *sessions.Store
	router    *conversation.Router
	startTime time.Time
}

// NewHandler creates the handler set with injected dependencies.
func NewHandler(store interfaces.LocalStore, res interfaces.Resolver, sess *sessions.Store) *Handler {
	return &Handler{
		store:     store,
		resolver:  res,
		sessions:  sess,
		router:    conversation.NewRouter(store, res),
		startTime: time.Now(),
	}
}

// RespondWithJSON writes a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error body in the {error} envelope the
// lookup contract requires.
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]interface{}{"error": message})
}

// lookupRequest is the POST /api/medicine-lookup body.
type lookupRequest struct {
	MedicineName string `json:"medicineName"`
}

// MedicineLookup proxies a name to the remote resolver and returns the
// provider envelope verbatim: {found, medicine, suggestion?, disclaimer?}.
func (h *Handler) MedicineLookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateMedicineName(req.MedicineName); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Medicine name is required")
		return
	}

	logging.Info("Looking up medicine", "name", req.MedicineName)

	result, err := h.resolver.Lookup(r.Context(), req.MedicineName)
	switch {
	case errors.Is(err, resolver.ErrNoAPIKey):
		RespondWithError(w, http.StatusInternalServerError,
			"Server configuration error: Missing provider API key")
		return
	case errors.Is(err, resolver.ErrEmptyName):
		RespondWithError(w, http.StatusBadRequest, "Medicine name is required")
		return
	case err != nil:
		logging.Error("Medicine lookup failed", "name", req.MedicineName, "error", err)
		RespondWithError(w, http.StatusBadGateway, "Medicine lookup is temporarily unavailable")
		return
	}

	if result.Error != "" {
		RespondWithJSON(w, http.StatusInternalServerError, result)
		return
	}

	RespondWithJSON(w, http.StatusOK, result)
}

// sessionResponse is returned on session creation.
type sessionResponse struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"createdAt"`
	Messages  []medicine.Message `json:"messages"`
}

// CreateSession starts a new conversation and returns the welcome
// transcript.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()

	RespondWithJSON(w, http.StatusCreated, sessionResponse{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Messages:  s.Snapshot(),
	})
}

// GetMessages returns the transcript snapshot, including the derived
// typing placeholder while a turn is in flight.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"messages": s.Snapshot(),
	})
}

// messageRequest is the POST body for a user turn.
type messageRequest struct {
	Content string `json:"content"`
}

// PostMessage runs one conversation turn and returns the assistant
// messages it appended.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateMessage(req.Content); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	replies, err := h.router.Route(r.Context(), s, req.Content)
	if errors.Is(err, conversation.ErrTurnInFlight) {
		RespondWithError(w, http.StatusConflict, "A previous message is still being processed")
		return
	}
	if err != nil {
		logging.Error("Turn failed", "session", s.ID, "error", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"messages": replies})
}

// imageRequest is the POST body for an image upload intent.
type imageRequest struct {
	Filename string `json:"filename"`
}

// PostImage records an image upload and returns the fixed acknowledgment.
// No image analysis happens; the response says so.
func (h *Handler) PostImage(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req imageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Filename == "" {
		RespondWithError(w, http.StatusBadRequest, "Filename is required")
		return
	}

	replies, err := h.router.AttachImage(s, req.Filename)
	if errors.Is(err, conversation.ErrTurnInFlight) {
		RespondWithError(w, http.StatusConflict, "A previous message is still being processed")
		return
	}
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to process image")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"messages": replies})
}

// DeleteSession ends a conversation.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	h.sessions.Delete(s.ID)
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck returns server health information.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "healthy",
		"medicine_count": h.store.Count(),
		"store_loaded":   h.store.LastLoaded(),
		"sessions":       h.sessions.Count(),
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// session resolves the {sessionID} URL param, writing a 404 when unknown.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*conversation.Session, bool) {
	id := chi.URLParam(r, "sessionID")
	s, ok := h.sessions.Get(id)
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return s, true
}
