package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jcarter-pt/traincrm/internal/entity"
	"github.com/jcarter-pt/traincrm/internal/usecase"
)

// Every endpoint answers in the same envelope:
// {"success":true,"data":...} or {"success":false,"error":"..."}.

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(successEnvelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorEnvelope{Success: false, Error: message})
}

// respondUseCaseError maps the error taxonomy onto statuses: domain errors
// surface verbatim, ownership failures 404, everything else is generic.
func respondUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	switch {
	case errors.Is(err, entity.ErrNotFound):
		respondError(w, http.StatusNotFound, entity.ErrNotFound.Error())
	case errors.As(err, &domainErr):
		respondError(w, http.StatusBadRequest, domainErr.Message)
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
