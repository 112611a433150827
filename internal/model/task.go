package model

import "time"

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsedTask is a validated task extracted from natural-language input.
// Zero values mean "absent" for every optional field.
type ParsedTask struct {
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Priority      Priority   `json:"priority"`
	EstimatedTime int        `json:"estimated_time,omitempty"` // minutes
	Category      string     `json:"category,omitempty"`
}

// Task is a ParsedTask stored for a user.
type Task struct {
	ID            string
	UserID        string
	Title         string
	Description   string
	DueDate       *time.Time
	Priority      Priority
	EstimatedTime int
	Category      string
	CalendarLink  string
	CreatedAt     time.Time
}

// Parsed returns the extracted part of the stored task.
func (t Task) Parsed() ParsedTask {
	return ParsedTask{
		Title:         t.Title,
		Description:   t.Description,
		DueDate:       t.DueDate,
		Priority:      t.Priority,
		EstimatedTime: t.EstimatedTime,
		Category:      t.Category,
	}
}
