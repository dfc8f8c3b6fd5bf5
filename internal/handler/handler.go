package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tasklite/task-service/internal/apperrors"
	"github.com/tasklite/task-service/internal/service"
)

// Handler exposes the REST endpoints
type Handler struct {
	auth   *service.AuthService
	tokens *service.TokenService
	tasks  *service.TaskService
	log    *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(auth *service.AuthService, tokens *service.TokenService, tasks *service.TaskService, log *logrus.Logger) *Handler {
	return &Handler{auth: auth, tokens: tokens, tasks: tasks, log: log}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := apperrors.Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.log.Errorf("Internal error: %v", err)
		msg = "internal server error"
	}
	respondJSON(w, status, map[string]string{"error": msg})
}
