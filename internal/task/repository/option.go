package repository

import (
	"time"

	"smart-task-manager/internal/model"
)

// CreateTaskOptions holds the parameters for storing a task.
type CreateTaskOptions struct {
	UserID       string
	Task         model.ParsedTask
	CalendarLink string
}

// ListTasksOptions holds the parameters for listing a user's tasks.
type ListTasksOptions struct {
	UserID string
	From   time.Time // zero: no lower bound
	To     time.Time // zero: no upper bound
	Limit  int       // Max number of results (default 20)
	Offset int       // Pagination offset
}
