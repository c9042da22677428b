package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"tvpss-crew-backend/internal/domain"
	"tvpss-crew-backend/internal/service"
)

// CrewHandler serves crew application lookups and status reviews
type CrewHandler struct {
	svc      service.CrewService
	validate *validator.Validate
}

// NewCrewHandler creates a new crew handler
func NewCrewHandler(svc service.CrewService) *CrewHandler {
	return &CrewHandler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type crewListResponse struct {
	Crew []domain.Crew `json:"crew"`
}

type updateStatusRequest struct {
	ApplicationStatus string `json:"application_status" validate:"required"`
}

// ListCrew returns every applicant, or only those with the status given in ?status=
func (h *CrewHandler) ListCrew(w http.ResponseWriter, r *http.Request) {
	var (
		crews []domain.Crew
		err   error
	)

	query := r.URL.Query()
	if query.Has("status") {
		crews, err = h.svc.ListByStatus(r.Context(), domain.ApplicationStatus(query.Get("status")))
	} else {
		crews, err = h.svc.ListApplicants(r.Context())
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if crews == nil {
		crews = []domain.Crew{}
	}
	writeJSON(w, http.StatusOK, crewListResponse{Crew: crews})
}

// GetCrew returns a single crew by id
func (h *CrewHandler) GetCrew(w http.ResponseWriter, r *http.Request) {
	crewID, err := parseID(mux.Vars(r)["crewID"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid crew id")
		return
	}

	crew, err := h.svc.GetCrew(r.Context(), crewID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, crew)
}

// GetCrewByUser returns the crew linked to a user
func (h *CrewHandler) GetCrewByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(mux.Vars(r)["userID"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid user id")
		return
	}

	crew, found, err := h.svc.GetCrewByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "CREW_NOT_FOUND", "user has no crew application")
		return
	}
	writeJSON(w, http.StatusOK, crew)
}

// UpdateStatus sets the application status of a crew
func (h *CrewHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	crewID, err := parseID(mux.Vars(r)["crewID"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid crew id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), crewID, domain.ApplicationStatus(req.ApplicationStatus)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
