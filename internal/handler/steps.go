package handler

import (
	"encoding/json"
	"net/http"

	"github.com/skillforge/journey-service/internal/middleware"
)

type createStepRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	JourneyID   int64  `json:"journey_id"`
}

type updateStepRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsComplete  *bool   `json:"is_complete"`
}

// CreateStep adds a step to one of the caller's journeys
func (h *Handler) CreateStep(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}

	var req createStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	step, err := h.svc.CreateStep(r.Context(), identity.UserID, req.JourneyID, req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, step)
}

// GetStep returns a step from one of the caller's journeys
func (h *Handler) GetStep(w http.ResponseWriter, r *http.Request) {
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

	step, err := h.svc.GetStep(r.Context(), id, identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, step)
}

// UpdateStep partially updates a step in one of the caller's journeys
func (h *Handler) UpdateStep(w http.ResponseWriter, r *http.Request) {
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

	var req updateStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	step, err := h.svc.UpdateStep(r.Context(), id, identity.UserID, req.Title, req.Description, req.IsComplete)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, step)
}

// DeleteStep deletes a step from one of the caller's journeys
func (h *Handler) DeleteStep(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.DeleteStep(r.Context(), id, identity.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeMsg(w, http.StatusOK, "step deleted successfully")
}

// CompleteStep toggles the completion flag of a step
func (h *Handler) CompleteStep(w http.ResponseWriter, r *http.Request) {
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

	step, err := h.svc.ToggleStepComplete(r.Context(), id, identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, step)
}
