package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"tvpss-crew-backend/internal/config"
	"tvpss-crew-backend/internal/security"
	"tvpss-crew-backend/internal/service"
)

// NewRouter wires the crew endpoints, request logging and token checks
func NewRouter(crewSvc service.CrewService, tm security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogger)
	router.Use(NewAuthMiddleware(tm).Handler)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet).Name(config.RouteHealth)

	RegisterCrewRoutes(router, crewSvc)
	return router
}

// RegisterCrewRoutes registers the crew HTTP endpoints under /api/v1
func RegisterCrewRoutes(router *mux.Router, crewSvc service.CrewService) {
	handler := NewCrewHandler(crewSvc)
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/crew", handler.ListCrew).Methods(http.MethodGet).Name(config.RouteListCrew)
	api.HandleFunc("/crew/{crewID:[0-9]+}", handler.GetCrew).Methods(http.MethodGet).Name(config.RouteGetCrew)
	api.HandleFunc("/crew/{crewID:[0-9]+}/status", handler.UpdateStatus).Methods(http.MethodPatch).Name(config.RouteUpdateCrewStatus)
	api.HandleFunc("/users/{userID:[0-9]+}/crew", handler.GetCrewByUser).Methods(http.MethodGet).Name(config.RouteGetCrewByUser)
}
