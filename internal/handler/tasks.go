package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/tasklite/task-service/internal/apperrors"
	"github.com/tasklite/task-service/internal/middleware"
)

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// ListTasks returns all tasks owned by the caller
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondError(w, apperrors.Authentication("not authenticated"))
		return
	}

	tasks, err := h.tasks.ListForUser(userID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

// GetTask returns a single task owned by the caller
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondError(w, apperrors.Authentication("not authenticated"))
		return
	}

	taskID, err := taskIDFromPath(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	task, err := h.tasks.Get(taskID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// CreateTask creates a new task for the caller. New tasks always start
// incomplete, whatever the request body says.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondError(w, apperrors.Authentication("not authenticated"))
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	task, err := h.tasks.Create(userID, req.Title, req.Description)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// UpdateTask overwrites the mutable fields of a task owned by the caller
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondError(w, apperrors.Authentication("not authenticated"))
		return
	}

	taskID, err := taskIDFromPath(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	task, err := h.tasks.Update(taskID, userID, req.Title, req.Description, req.Completed)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// DeleteTask removes a task owned by the caller
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondError(w, apperrors.Authentication("not authenticated"))
		return
	}

	taskID, err := taskIDFromPath(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	if err := h.tasks.Delete(taskID, userID); err != nil {
		h.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func taskIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, apperrors.Validation("invalid task id")
	}
	return id, nil
}
