package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcarter-pt/traincrm/internal/entity"
	"github.com/jcarter-pt/traincrm/internal/infra/http/middleware"
	"github.com/jcarter-pt/traincrm/internal/usecase"
)

type LeadHandler struct {
	LeadRepo entity.LeadRepositoryInterface
	Stats    usecase.StatsCacheInterface
}

func NewLeadHandler(leadRepo entity.LeadRepositoryInterface, stats usecase.StatsCacheInterface) *LeadHandler {
	return &LeadHandler{LeadRepo: leadRepo, Stats: stats}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	status := r.URL.Query().Get("status")
	if status != "" && !entity.IsValidLeadStatus(status) {
		respondError(w, http.StatusBadRequest, "status must be PROSPECT, CONVERTED or NOT_INTERESTED")
		return
	}

	leads, err := h.LeadRepo.List(r.Context(), user.ID, status)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list leads")
		return
	}

	now := time.Now()
	for _, lead := range leads {
		lead.Decorate(now)
	}
	respondData(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	lead, err := h.LeadRepo.FindByID(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusOK, lead.Decorate(time.Now()))
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := usecase.ValidateCreateLeadInput(input); len(errs) > 0 {
		messages := make([]string, len(errs))
		for i, e := range errs {
			messages[i] = e.Error()
		}
		respondError(w, http.StatusBadRequest, strings.Join(messages, "; "))
		return
	}

	lead := entity.NewLead(user.ID)
	lead.FirstName = strings.TrimSpace(input.FirstName)
	lead.LastName = strings.TrimSpace(input.LastName)
	lead.Email = strings.TrimSpace(input.Email)
	lead.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	lead.Goals = strings.TrimSpace(input.Goals)
	lead.LeadType = strings.TrimSpace(input.LeadType)
	lead.Notes = input.Notes
	if input.Status != "" {
		lead.Status = input.Status
	}

	if err := h.LeadRepo.Create(r.Context(), lead); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create lead")
		return
	}

	h.invalidateStats(r, user.ID)
	respondData(w, http.StatusCreated, lead.Decorate(time.Now()))
}

type updateLeadRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// HandleUpdate mutates status and/or notes; nothing else on a lead changes
// after import.
func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req updateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Status == nil && req.Notes == nil {
		respondError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	if req.Status != nil {
		if !entity.IsValidLeadStatus(*req.Status) {
			respondError(w, http.StatusBadRequest, "status must be PROSPECT, CONVERTED or NOT_INTERESTED")
			return
		}
		if err := h.LeadRepo.UpdateStatus(r.Context(), user.ID, id, *req.Status); err != nil {
			respondUseCaseError(w, err)
			return
		}
	}

	if req.Notes != nil {
		if err := h.LeadRepo.UpdateNotes(r.Context(), user.ID, id, *req.Notes); err != nil {
			respondUseCaseError(w, err)
			return
		}
	}

	lead, err := h.LeadRepo.FindByID(r.Context(), user.ID, id)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	h.invalidateStats(r, user.ID)
	respondData(w, http.StatusOK, lead.Decorate(time.Now()))
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	if err := h.LeadRepo.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		respondUseCaseError(w, err)
		return
	}

	h.invalidateStats(r, user.ID)
	respondData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *LeadHandler) invalidateStats(r *http.Request, userID string) {
	if h.Stats != nil {
		h.Stats.Invalidate(r.Context(), userID)
	}
}
