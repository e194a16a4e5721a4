package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jcarter-pt/traincrm/internal/entity"
	"github.com/jcarter-pt/traincrm/internal/infra/http/middleware"
)

type TemplateHandler struct {
	TemplateRepo entity.TemplateRepositoryInterface
	LeadRepo     entity.LeadRepositoryInterface
}

func NewTemplateHandler(templateRepo entity.TemplateRepositoryInterface, leadRepo entity.LeadRepositoryInterface) *TemplateHandler {
	return &TemplateHandler{TemplateRepo: templateRepo, LeadRepo: leadRepo}
}

type templateRequest struct {
	Name    string `json:"name"`
	Channel string `json:"channel"`
	Body    string `json:"body"`
}

func (h *TemplateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	tmpl, err := entity.NewMessageTemplate(user.ID, req.Name, req.Channel, req.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.TemplateRepo.Create(r.Context(), tmpl); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create template")
		return
	}
	respondData(w, http.StatusCreated, tmpl)
}

func (h *TemplateHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	templates, err := h.TemplateRepo.List(r.Context(), user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list templates")
		return
	}
	respondData(w, http.StatusOK, templates)
}

func (h *TemplateHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	tmpl, err := h.TemplateRepo.FindByID(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusOK, tmpl)
}

func (h *TemplateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	tmpl, err := h.TemplateRepo.FindByID(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name != "" {
		tmpl.Name = req.Name
	}
	if req.Channel != "" {
		tmpl.Channel = req.Channel
	}
	if req.Body != "" {
		tmpl.Body = req.Body
	}
	if err := tmpl.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.TemplateRepo.Update(r.Context(), tmpl); err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusOK, tmpl)
}

func (h *TemplateHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	if err := h.TemplateRepo.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusOK, map[string]bool{"deleted": true})
}

// HandleRender previews a template against a real lead, with placeholders
// substituted.
func (h *TemplateHandler) HandleRender(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	tmpl, err := h.TemplateRepo.FindByID(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	leadID := r.URL.Query().Get("lead_id")
	if leadID == "" {
		respondError(w, http.StatusBadRequest, "lead_id query parameter is required")
		return
	}

	lead, err := h.LeadRepo.FindByID(r.Context(), user.ID, leadID)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]string{
		"channel": tmpl.Channel,
		"body":    tmpl.Render(lead),
	})
}
