package http

import (
	"strings"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	"smart-task-manager/pkg/response"
)

// --- Request DTOs ---

type parseTaskReq struct {
	Text string `json:"text" binding:"required"`
}

func (r parseTaskReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errTextRequired
	}
	return nil
}

func (r parseTaskReq) toInput() task.CreateInput {
	return task.CreateInput{Text: r.Text}
}

// ---

type listReq struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`

	from time.Time
	to   time.Time
}

func (r *listReq) validate() error {
	var err error
	if r.from, err = parseQueryTime(r.From); err != nil {
		return errInvalidQuery
	}
	if r.to, err = parseQueryTime(r.To); err != nil {
		return errInvalidQuery
	}
	if r.Limit < 0 || r.Offset < 0 {
		return errInvalidQuery
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		From:   r.from,
		To:     r.to,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// parseQueryTime accepts RFC 3339 or a plain date (UTC midnight). Empty means unbounded.
func parseQueryTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

// --- Response DTOs ---

type parsedTaskResp struct {
	Title         string             `json:"title"`
	Description   string             `json:"description,omitempty"`
	DueDate       *response.DateTime `json:"due_date,omitempty"`
	Priority      model.Priority     `json:"priority"`
	EstimatedTime int                `json:"estimated_time,omitempty"`
	Category      string             `json:"category,omitempty"`
}

func newParsedTaskResp(t model.ParsedTask) parsedTaskResp {
	return parsedTaskResp{
		Title:         t.Title,
		Description:   t.Description,
		DueDate:       response.NewDateTimePtr(t.DueDate),
		Priority:      t.Priority,
		EstimatedTime: t.EstimatedTime,
		Category:      t.Category,
	}
}

type taskResp struct {
	ID string `json:"id"`
	parsedTaskResp
	CalendarLink string            `json:"calendar_link,omitempty"`
	CreatedAt    response.DateTime `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:             t.ID,
		parsedTaskResp: newParsedTaskResp(t.Parsed()),
		CalendarLink:   t.CalendarLink,
		CreatedAt:      response.DateTime(t.CreatedAt),
	}
}

type parseTaskResp struct {
	Task         taskResp `json:"task"`
	Message      string   `json:"message"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func (h *handler) newParseTaskResp(out task.CreateOutput) parseTaskResp {
	return parseTaskResp{
		Task:         newTaskResp(out.Task),
		Message:      out.Message,
		CalendarLink: out.CalendarLink,
	}
}

type previewResp struct {
	Task    parsedTaskResp `json:"task"`
	Message string         `json:"message"`
}

func (h *handler) newPreviewResp(out task.ExtractAndConfirmOutput) previewResp {
	return previewResp{
		Task:    newParsedTaskResp(out.Task),
		Message: out.Message,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks: tasks,
		Total: out.Total,
	}
}
