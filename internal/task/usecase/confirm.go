package usecase

import (
	"context"

	"smart-task-manager/internal/task"
)

// ExtractAndConfirm extracts a task relative to a fresh reference moment and renders its confirmation.
func (uc *implUseCase) ExtractAndConfirm(ctx context.Context, text string) (task.ExtractAndConfirmOutput, error) {
	parsed, err := uc.Extract(ctx, task.ExtractInput{
		Text:    text,
		Context: uc.newContext(),
	})
	if err != nil {
		return task.ExtractAndConfirmOutput{}, err
	}

	return task.ExtractAndConfirmOutput{
		Task:    parsed,
		Message: uc.Render(parsed),
	}, nil
}
