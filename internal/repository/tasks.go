package repository

import (
	"database/sql"
	"fmt"

	"github.com/tasklite/task-service/internal/apperrors"
	"github.com/tasklite/task-service/internal/models"
)

// TaskRepository provides database operations for tasks. Every read and
// write is scoped by owner id, so a task belonging to another user is
// indistinguishable from one that does not exist.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository initializes a new task repository
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task owned by task.UserID
func (r *TaskRepository) Create(task *models.Task) error {
	query := `
		INSERT INTO tasks (title, description, completed, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRow(query, task.Title, task.Description, task.Completed, task.CreatedAt, task.UserID).
		Scan(&task.ID)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by id, scoped to its owner
func (r *TaskRepository) FindByID(id, userID int64) (*models.Task, error) {
	task := &models.Task{}
	query := `
		SELECT id, title, description, completed, created_at, user_id
		FROM tasks
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRow(query, id, userID).
		Scan(&task.ID, &task.Title, &task.Description, &task.Completed, &task.CreatedAt, &task.UserID)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// FindByOwner retrieves all tasks owned by userID, ascending by id
func (r *TaskRepository) FindByOwner(userID int64) ([]models.Task, error) {
	query := `
		SELECT id, title, description, completed, created_at, user_id
		FROM tasks
		WHERE user_id = $1
		ORDER BY id ASC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Completed, &task.CreatedAt, &task.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Update overwrites the mutable fields of a task, scoped to its owner
func (r *TaskRepository) Update(task *models.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, completed = $3
		WHERE id = $4 AND user_id = $5`
	res, err := r.db.Exec(query, task.Title, task.Description, task.Completed, task.ID, task.UserID)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound("task not found")
	}
	return nil
}

// Delete removes a task by id, scoped to its owner
func (r *TaskRepository) Delete(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound("task not found")
	}
	return nil
}
