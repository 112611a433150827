package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
)

// Extract turns raw text into a validated task relative to input.Context.
func (uc *implUseCase) Extract(ctx context.Context, input task.ExtractInput) (model.ParsedTask, error) {
	if strings.TrimSpace(input.Text) == "" {
		return model.ParsedTask{}, task.ErrEmptyInput
	}
	if utf8.RuneCountInString(input.Text) > uc.maxInputChars {
		return model.ParsedTask{}, task.ErrInputTooLong
	}

	now := input.Context.Now
	if now.IsZero() {
		now = uc.newContext().Now
	}

	uc.l.Debugf(ctx, "Extract: input_length=%d now=%s", len(input.Text), now.Format(time.RFC3339))

	resp, err := uc.llm.GenerateContent(ctx, uc.buildRequest(input.Text, now))
	if err != nil {
		uc.l.Warnf(ctx, "Extract: provider call failed: %v", err)
		return model.ParsedTask{}, task.NewExtractionError(task.KindProviderFailure, err)
	}

	var payload string
	if resp != nil {
		payload = resp.Content.Text()
	}
	if strings.TrimSpace(payload) == "" {
		uc.l.Warnf(ctx, "Extract: provider returned no text")
		return model.ParsedTask{}, task.NewExtractionError(task.KindEmptyResponse, nil)
	}

	raw, err := decodeTask(payload)
	if err != nil {
		uc.l.Warnf(ctx, "Extract: malformed provider payload %q: %v", payload, err)
		return model.ParsedTask{}, task.NewExtractionError(task.KindMalformedResponse, err)
	}

	if raw.Title == nil || strings.TrimSpace(*raw.Title) == "" {
		return model.ParsedTask{}, task.NewExtractionError(task.KindMissingTitle, nil)
	}

	parsed := model.ParsedTask{
		Title:         *raw.Title,
		Description:   derefString(raw.Description),
		DueDate:       normalizeDueDate(raw.DueDate, now.Location()),
		Priority:      normalizePriority(raw.Priority),
		EstimatedTime: normalizeEstimatedTime(raw.EstimatedTime),
		Category:      derefString(raw.Category),
	}
	if len(raw.DueDate) > 0 && parsed.DueDate == nil && string(raw.DueDate) != "null" {
		uc.l.Infof(ctx, "Extract: dropped unreadable due date %s", string(raw.DueDate))
	}

	return parsed, nil
}
