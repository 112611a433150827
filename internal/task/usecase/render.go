package usecase

import (
	"fmt"
	"strings"

	"smart-task-manager/internal/model"
)

// dueDateLayout renders e.g. "Mon, Mar 10, 5:00 PM".
const dueDateLayout = "Mon, Jan 2, 3:04 PM"

// Render builds the confirmation message. It is a pure function of t.
func (uc *implUseCase) Render(t model.ParsedTask) string {
	return render(t)
}

func render(t model.ParsedTask) string {
	lines := []string{`Created task: "` + t.Title + `"`}
	if t.DueDate != nil {
		lines = append(lines, "Due: "+t.DueDate.Format(dueDateLayout))
	}
	if t.Priority != "" && t.Priority != model.PriorityMedium {
		lines = append(lines, fmt.Sprintf("Priority: %s", t.Priority))
	}
	if t.EstimatedTime > 0 {
		lines = append(lines, fmt.Sprintf("Estimated: %d minutes", t.EstimatedTime))
	}
	if t.Category != "" {
		lines = append(lines, fmt.Sprintf("Category: %s", t.Category))
	}
	return strings.Join(lines, "\n")
}
