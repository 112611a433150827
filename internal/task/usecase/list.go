package usecase

import (
	"context"
	"fmt"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	"smart-task-manager/internal/task/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// List returns the caller's tasks ordered by due date, undated tasks last.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if !input.From.IsZero() && !input.To.IsZero() && !input.To.After(input.From) {
		return task.ListOutput{}, task.ErrInvalidRange
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID: sc.UserID,
		From:   input.From,
		To:     input.To,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "List: failed to list tasks for user=%s: %v", sc.UserID, err)
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	for i := range tasks {
		tasks[i].CreatedAt = tasks[i].CreatedAt.In(uc.loc)
		if tasks[i].DueDate != nil {
			due := tasks[i].DueDate.In(uc.loc)
			tasks[i].DueDate = &due
		}
	}

	return task.ListOutput{Tasks: tasks, Total: total}, nil
}
