package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	"smart-task-manager/internal/task/repository"
	"smart-task-manager/pkg/gcalendar"
)

// Create extracts a task from text, stores it for the caller and mirrors it to the calendar.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	uc.l.Infof(ctx, "Create: user=%s input_length=%d", sc.UserID, len(input.Text))

	out, err := uc.ExtractAndConfirm(ctx, input.Text)
	if err != nil {
		return task.CreateOutput{}, err
	}

	stored, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID: sc.UserID,
		Task:   out.Task,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Create: failed to store task %q: %v", out.Task.Title, err)
		return task.CreateOutput{}, fmt.Errorf("failed to store task: %w", err)
	}
	stored.DueDate = out.Task.DueDate

	if link := uc.tryCreateCalendarEvent(ctx, out.Task); link != "" {
		if err := uc.repo.UpdateCalendarLink(ctx, stored.ID, link); err != nil {
			uc.l.Warnf(ctx, "Create: failed to save calendar link for task %s (non-fatal): %v", stored.ID, err)
		}
		stored.CalendarLink = link
	}

	uc.l.Infof(ctx, "Create: created task %q id=%s", stored.Title, stored.ID)

	return task.CreateOutput{
		Task:         stored,
		Message:      out.Message,
		CalendarLink: stored.CalendarLink,
	}, nil
}

// tryCreateCalendarEvent creates a calendar event for a dated task.
// Returns the event link, or "" when there is no calendar, no due date, or the call failed.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.ParsedTask) string {
	if uc.calendar == nil || t.DueDate == nil {
		return ""
	}

	duration := t.EstimatedTime
	if duration <= 0 {
		duration = defaultEventMinutes
	}
	start := *t.DueDate

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(duration) * time.Minute),
		Timezone:    uc.loc.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "Create: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	return event.HtmlLink
}
