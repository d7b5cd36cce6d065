package handler

import (
	"github.com/gorilla/mux"
	"github.com/skillforge/journey-service/internal/auth"
	"github.com/skillforge/journey-service/internal/middleware"
)

// Routes builds the HTTP router: public auth routes plus a protected
// subrouter guarded by the bearer-token middleware.
func Routes(h *Handler, tokens *auth.TokenManager) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/auth/login", h.Login).Methods("POST")

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.Auth(tokens))
	authRouter.HandleFunc("/auth/logout", h.Logout).Methods("DELETE")

	authRouter.HandleFunc("/journeys", h.ListJourneys).Methods("GET")
	authRouter.HandleFunc("/journeys", h.CreateJourney).Methods("POST")
	authRouter.HandleFunc("/journeys/{id}", h.GetJourney).Methods("GET")
	authRouter.HandleFunc("/journeys/{id}", h.UpdateJourney).Methods("PUT")
	authRouter.HandleFunc("/journeys/{id}", h.DeleteJourney).Methods("DELETE")

	authRouter.HandleFunc("/steps", h.CreateStep).Methods("POST")
	authRouter.HandleFunc("/steps/{id}", h.GetStep).Methods("GET")
	authRouter.HandleFunc("/steps/{id}", h.UpdateStep).Methods("PUT")
	authRouter.HandleFunc("/steps/{id}", h.DeleteStep).Methods("DELETE")
	authRouter.HandleFunc("/steps/{id}/complete", h.CompleteStep).Methods("PUT")

	return r
}
