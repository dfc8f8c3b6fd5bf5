package service

import "github.com/tasklite/task-service/internal/models"

// UserStore is the persistence surface the services need for users.
type UserStore interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id int64) (*models.User, error)
}

// TaskStore is the persistence surface the services need for tasks. All
// lookups are owner-scoped.
type TaskStore interface {
	Create(task *models.Task) error
	FindByID(id, userID int64) (*models.Task, error)
	FindByOwner(userID int64) ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id, userID int64) error
}
