package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskhive-dev/taskhive/internal/domain"
	"github.com/taskhive-dev/taskhive/internal/middleware"
	"github.com/taskhive-dev/taskhive/internal/utils"
)

type createTaskRequest struct {
	Title       string `validate:"required" json:"title"`
	Description string `json:"description"`
}

type updateTaskRequest struct {
	Title       *string `validate:"omitempty,min=1" json:"title"`
	Description *string `json:"description"`
	Status      *string `validate:"omitempty,oneof=pending in_progress completed" json:"status"`
}

// identity pulls the verified caller out of the request context. Task routes
// are always registered behind RequireAuth, so a miss means a wiring bug.
func identity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r)
	if !ok {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
	}
	return id, ok
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	task, err := h.task.Create(domain.NewTaskData{Title: req.Title, Description: req.Description}, id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, task)
}

func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	tasks, err := h.task.List(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, tasks)
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	task, err := h.task.GetById(chi.URLParam(r, "id"), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, task)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	patch := domain.TaskPatch{Title: req.Title, Description: req.Description, Status: req.Status}
	task, err := h.task.Update(chi.URLParam(r, "id"), patch, id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, task)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.task.Delete(chi.URLParam(r, "id"), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
