package task

import (
	"context"

	"smart-task-manager/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Extract turns raw natural-language text into a validated task.
	Extract(ctx context.Context, input ExtractInput) (model.ParsedTask, error)

	// Render returns the confirmation message for a parsed task.
	Render(t model.ParsedTask) string

	// ExtractAndConfirm extracts a task relative to the current time and renders its confirmation.
	ExtractAndConfirm(ctx context.Context, text string) (ExtractAndConfirmOutput, error)

	// Create extracts a task, stores it for the caller and mirrors dated tasks to the calendar.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns the caller's stored tasks.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
