// internal/handler/task.go
package handler

import (
	"net/http"
	"time"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/dealdesk/dealdesk/internal/service"
	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type TaskResponse struct {
	BaseResponse
	Task *model.Task `json:"task"`
}

// List handles GET /tasks with optional status, salesperson and date filters.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	offset, limit := pagination(r)
	filter := repository.TaskFilter{Offset: offset, Limit: limit}

	switch status := model.TaskStatus(q.Get("status")); status {
	case "", model.TaskPending, model.TaskCompleted:
		filter.Status = status
	default:
		respondWithError(w, http.StatusBadRequest, "Unknown status")
		return
	}

	if raw := q.Get("start_date"); raw != "" {
		start, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid start_date")
			return
		}
		end := start.AddDate(0, 0, 1)
		if raw := q.Get("end_date"); raw != "" {
			end, err = time.Parse(time.DateOnly, raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid end_date")
				return
			}
			end = end.AddDate(0, 0, 1)
		}
		filter.StartDate = &start
		filter.EndDate = &end
	}

	tasks, err := h.taskService.List(r.Context(), caller, filter)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{BaseResponse: BaseResponse{Ok: true}, Items: tasks})
}

// Complete handles POST /tasks/{id}/complete and returns the task after the
// scheduler has advanced its follow-up chain.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	task, err := h.taskService.Complete(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, TaskResponse{BaseResponse: BaseResponse{Ok: true}, Task: task})
}
