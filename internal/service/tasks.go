package service

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tasklite/task-service/internal/apperrors"
	"github.com/tasklite/task-service/internal/models"
)

// TaskService handles per-user task operations. The caller's identity is
// an explicit parameter on every method.
type TaskService struct {
	tasks TaskStore
	log   *logrus.Logger
	now   func() time.Time
}

// NewTaskService initializes a new task service
func NewTaskService(tasks TaskStore, log *logrus.Logger) *TaskService {
	return &TaskService{tasks: tasks, log: log, now: time.Now}
}

// ListForUser returns all tasks owned by userID, ascending by id
func (s *TaskService) ListForUser(userID int64) ([]models.Task, error) {
	return s.tasks.FindByOwner(userID)
}

// Get returns the task if it exists and is owned by userID
func (s *TaskService) Get(taskID, userID int64) (*models.Task, error) {
	return s.tasks.FindByID(taskID, userID)
}

// Create stores a new incomplete task owned by userID
func (s *TaskService) Create(userID int64, title, description string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.Validation("title is required")
	}

	task := &models.Task{
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   s.now(),
		UserID:      userID,
	}

	if err := s.tasks.Create(task); err != nil {
		return nil, err
	}

	s.log.Infof("Task %d created for user %d", task.ID, userID)
	return task, nil
}

// Update overwrites the mutable fields of a task owned by userID
func (s *TaskService) Update(taskID, userID int64, title, description string, completed bool) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.Validation("title is required")
	}

	task, err := s.tasks.FindByID(taskID, userID)
	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = description
	task.Completed = completed

	if err := s.tasks.Update(task); err != nil {
		return nil, err
	}

	s.log.Infof("Task %d updated for user %d", task.ID, userID)
	return task, nil
}

// Delete removes a task owned by userID
func (s *TaskService) Delete(taskID, userID int64) error {
	if err := s.tasks.Delete(taskID, userID); err != nil {
		return err
	}
	s.log.Infof("Task %d deleted for user %d", taskID, userID)
	return nil
}
