package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jcarter-pt/traincrm/internal/entity"
	"github.com/jcarter-pt/traincrm/internal/infra/http/middleware"
	"github.com/jcarter-pt/traincrm/internal/usecase"
)

type ConsultationScheduler interface {
	Execute(ctx context.Context, userID string, input usecase.ScheduleConsultationInput) (*entity.Consultation, error)
}

type ConsultationHandler struct {
	Scheduler        ConsultationScheduler
	ConsultationRepo entity.ConsultationRepositoryInterface
}

func NewConsultationHandler(scheduler ConsultationScheduler, repo entity.ConsultationRepositoryInterface) *ConsultationHandler {
	return &ConsultationHandler{Scheduler: scheduler, ConsultationRepo: repo}
}

func (h *ConsultationHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var input usecase.ScheduleConsultationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	consultation, err := h.Scheduler.Execute(r.Context(), user.ID, input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusCreated, consultation)
}

func (h *ConsultationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	consultations, err := h.ConsultationRepo.List(r.Context(), user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list consultations")
		return
	}
	respondData(w, http.StatusOK, consultations)
}

func (h *ConsultationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	consultation, err := h.ConsultationRepo.FindByID(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusOK, consultation)
}

type updateConsultationStatusRequest struct {
	Status string `json:"status"`
}

func (h *ConsultationHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req updateConsultationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !entity.IsValidConsultationStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "status must be SCHEDULED, COMPLETED, CANCELLED or NO_SHOW")
		return
	}

	if err := h.ConsultationRepo.UpdateStatus(r.Context(), user.ID, id, req.Status); err != nil {
		respondUseCaseError(w, err)
		return
	}

	consultation, err := h.ConsultationRepo.FindByID(r.Context(), user.ID, id)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusOK, consultation)
}

func (h *ConsultationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	if err := h.ConsultationRepo.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusOK, map[string]bool{"deleted": true})
}
