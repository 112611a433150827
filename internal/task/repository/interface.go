package repository

import (
	"context"
	"errors"

	"smart-task-manager/internal/model"
)

// ErrNotFound is returned when a task does not exist.
var ErrNotFound = errors.New("task not found")

// Repository is the interface for task storage.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateCalendarLink(ctx context.Context, id, link string) error
}
