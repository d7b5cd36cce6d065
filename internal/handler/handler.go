// Package handler decodes HTTP requests, delegates to the service
// layer and maps the service error taxonomy onto status codes.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/skillforge/journey-service/internal/service"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

// writeError maps the service taxonomy to HTTP statuses. Validation
// details are safe to echo; everything else gets a fixed message so
// internals and existence information never leak.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeMsg(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		writeMsg(w, http.StatusConflict, "username or email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeMsg(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrNotFound):
		writeMsg(w, http.StatusNotFound, "resource not found")
	default:
		writeMsg(w, http.StatusServiceUnavailable, "service unavailable")
	}
}

// pathID parses the {id} route variable. A non-numeric id reads as
// not-found, the same as any other unresolvable resource.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
