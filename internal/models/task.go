package models

import "time"

// Task represents a single task owned by a user
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      int64     `json:"-"` // Ownership is implied by the authenticated route
}
