package handler

import (
	"encoding/json"
	"net/http"

	"github.com/skillforge/journey-service/internal/middleware"
)

type createJourneyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateJourneyRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ListJourneys returns the caller's journeys
func (h *Handler) ListJourneys(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}

	journeys, err := h.svc.ListJourneys(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, journeys)
}

// CreateJourney creates a journey owned by the caller. Any owner field
// in the body is ignored: the owner is the verified token subject.
func (h *Handler) CreateJourney(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}

	var req createJourneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	journey, err := h.svc.CreateJourney(r.Context(), identity.UserID, req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, journey)
}

// GetJourney returns one owned journey with its steps
func (h *Handler) GetJourney(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeMsg(w, http.StatusNotFound, "resource not found")
		return
	}

	journey, err := h.svc.GetJourney(r.Context(), id, identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, journey)
}

// UpdateJourney partially updates an owned journey
func (h *Handler) UpdateJourney(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeMsg(w, http.StatusNotFound, "resource not found")
		return
	}

	var req updateJourneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	journey, err := h.svc.UpdateJourney(r.Context(), id, identity.UserID, req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, journey)
}

// DeleteJourney deletes an owned journey and all its steps
func (h *Handler) DeleteJourney(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeMsg(w, http.StatusNotFound, "resource not found")
		return
	}

	if err := h.svc.DeleteJourney(r.Context(), id, identity.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeMsg(w, http.StatusOK, "journey deleted successfully")
}
