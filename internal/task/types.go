package task

import (
	"time"

	"smart-task-manager/internal/model"
)

// ExtractionContext is the reference moment relative dates resolve against.
type ExtractionContext struct {
	Now time.Time
}

// ExtractInput is the input for Extract.
type ExtractInput struct {
	Text    string
	Context ExtractionContext
}

// ExtractAndConfirmOutput is a parsed task with its confirmation message.
type ExtractAndConfirmOutput struct {
	Task    model.ParsedTask
	Message string
}

// CreateInput is the input for task creation.
// UserID is carried by model.Scope, not here.
type CreateInput struct {
	Text string
}

// CreateOutput is the result of task creation.
type CreateOutput struct {
	Task         model.Task
	Message      string
	CalendarLink string // empty when no calendar event was created
}

// ListInput filters stored tasks by due date. Zero From/To leave that side open.
type ListInput struct {
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// ListOutput is the result of List.
type ListOutput struct {
	Tasks []model.Task
	Total int
}
