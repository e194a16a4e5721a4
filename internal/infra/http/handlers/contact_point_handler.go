package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcarter-pt/traincrm/internal/entity"
	"github.com/jcarter-pt/traincrm/internal/infra/http/middleware"
)

type ContactPointHandler struct {
	ContactRepo entity.ContactPointRepositoryInterface
	LeadRepo    entity.LeadRepositoryInterface
}

func NewContactPointHandler(contactRepo entity.ContactPointRepositoryInterface, leadRepo entity.LeadRepositoryInterface) *ContactPointHandler {
	return &ContactPointHandler{ContactRepo: contactRepo, LeadRepo: leadRepo}
}

type createContactPointRequest struct {
	Method     string     `json:"method"`
	Outcome    string     `json:"outcome"`
	Notes      string     `json:"notes"`
	OccurredAt *time.Time `json:"occurred_at"`
}

func (h *ContactPointHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	leadID := chi.URLParam(r, "id")

	if _, err := h.LeadRepo.FindByID(r.Context(), user.ID, leadID); err != nil {
		respondUseCaseError(w, err)
		return
	}

	var req createContactPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	occurredAt := time.Time{}
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	cp, err := entity.NewContactPoint(user.ID, leadID, req.Method, req.Outcome, req.Notes, occurredAt)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.ContactRepo.Create(r.Context(), cp); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to log contact attempt")
		return
	}
	respondData(w, http.StatusCreated, cp)
}

func (h *ContactPointHandler) HandleListByLead(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	leadID := chi.URLParam(r, "id")

	if _, err := h.LeadRepo.FindByID(r.Context(), user.ID, leadID); err != nil {
		respondUseCaseError(w, err)
		return
	}

	points, err := h.ContactRepo.ListByLead(r.Context(), user.ID, leadID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list contact attempts")
		return
	}
	respondData(w, http.StatusOK, points)
}

func (h *ContactPointHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	if err := h.ContactRepo.Delete(r.Context(), user.ID, chi.URLParam(r, "contactPointId")); err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusOK, map[string]bool{"deleted": true})
}
