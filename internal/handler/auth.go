package handler

import (
	"encoding/json"
	"net/http"

	"github.com/skillforge/journey-service/internal/middleware"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeMsg(w, http.StatusCreated, "user created successfully")
}

// Login handles user authentication and returns a bearer token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
}

// Logout revokes the presented token's jti
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}

	if err := h.svc.Logout(r.Context(), identity.TokenID); err != nil {
		writeError(w, err)
		return
	}
	writeMsg(w, http.StatusOK, "logged out successfully")
}
