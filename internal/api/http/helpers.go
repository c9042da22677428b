package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"tvpss-crew-backend/internal/domain"
	"tvpss-crew-backend/internal/logger"
)

type errorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: msg}})
}

// writeServiceError maps a service failure onto a status code. Anything that
// is not a known domain condition becomes a 500 with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrCrewNotFound):
		writeError(w, http.StatusNotFound, "CREW_NOT_FOUND", "crew not found")
	default:
		logger.FromContext(r.Context()).Error("Request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", http.StatusText(http.StatusInternalServerError))
	}
}

func writeValidationError(w http.ResponseWriter, err error) {
	body := errorBody{Code: "BAD_REQUEST", Message: "validation failed"}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			body.Fields = append(body.Fields, fieldError{Field: fe.Field(), Error: "failed on '" + fe.Tag() + "'"})
		}
	} else {
		body.Message = err.Error()
	}

	writeJSON(w, http.StatusBadRequest, errorResponse{Error: body})
}

func parseID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
