package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcarter-pt/traincrm/internal/entity"
	"github.com/jcarter-pt/traincrm/internal/infra/http/middleware"
	"github.com/jcarter-pt/traincrm/internal/usecase"
)

type TaskHandler struct {
	TaskRepo entity.TaskRepositoryInterface
	LeadRepo entity.LeadRepositoryInterface
}

func NewTaskHandler(taskRepo entity.TaskRepositoryInterface, leadRepo entity.LeadRepositoryInterface) *TaskHandler {
	return &TaskHandler{TaskRepo: taskRepo, LeadRepo: leadRepo}
}

func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	includeCompleted := r.URL.Query().Get("include_completed") == "true"
	tasks, err := h.TaskRepo.List(r.Context(), user.ID, includeCompleted)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list tasks")
		return
	}
	respondData(w, http.StatusOK, tasks)
}

// HandleBuckets serves the follow-up view: open tasks grouped into overdue,
// today and upcoming.
func (h *TaskHandler) HandleBuckets(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	tasks, err := h.TaskRepo.List(r.Context(), user.ID, false)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list tasks")
		return
	}
	respondData(w, http.StatusOK, usecase.BucketTasks(tasks, time.Now()))
}

type createTaskRequest struct {
	LeadID  string    `json:"lead_id"`
	Title   string    `json:"title"`
	Type    string    `json:"type"`
	DueDate time.Time `json:"due_date"`
}

func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// The lead lookup doubles as the ownership check.
	if _, err := h.LeadRepo.FindByID(r.Context(), user.ID, req.LeadID); err != nil {
		respondUseCaseError(w, err)
		return
	}

	task, err := entity.NewTask(user.ID, req.LeadID, req.Title, req.Type, req.DueDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.TaskRepo.Create(r.Context(), task); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create task")
		return
	}
	respondData(w, http.StatusCreated, task)
}

type updateTaskRequest struct {
	Title   *string    `json:"title"`
	Type    *string    `json:"type"`
	DueDate *time.Time `json:"due_date"`
}

func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	task, err := h.TaskRepo.FindByID(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Type != nil {
		task.Type = *req.Type
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if err := task.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.TaskRepo.Update(r.Context(), task); err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusOK, task)
}

func (h *TaskHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.TaskRepo.Complete(r.Context(), user.ID, id); err != nil {
		respondUseCaseError(w, err)
		return
	}

	task, err := h.TaskRepo.FindByID(r.Context(), user.ID, id)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusOK, task)
}

func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	if err := h.TaskRepo.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusOK, map[string]bool{"deleted": true})
}
