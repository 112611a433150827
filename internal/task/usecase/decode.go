package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"smart-task-manager/internal/model"
)

var errNotObject = errors.New("payload is not a JSON object")

// rawTask is the wire shape the provider is asked for. Field names match
// case-insensitively; unknown fields are ignored.
type rawTask struct {
	Title         *string         `json:"Title"`
	Description   *string         `json:"Description"`
	DueDate       json.RawMessage `json:"DueDate"`
	Priority      json.RawMessage `json:"Priority"`
	EstimatedTime *json.Number    `json:"EstimatedTime"`
	Category      *string         `json:"Category"`
}

// Accepted DueDate layouts without an offset, read in the reference location.
var naiveDateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// decodeTask strictly decodes a single JSON object. Anything around it, including
// a markdown code fence, makes the payload malformed.
func decodeTask(payload string) (rawTask, error) {
	body := strings.TrimSpace(payload)
	if !strings.HasPrefix(body, "{") {
		return rawTask{}, errNotObject
	}

	var raw rawTask
	dec := json.NewDecoder(strings.NewReader(body))
	if err := dec.Decode(&raw); err != nil {
		return rawTask{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return rawTask{}, fmt.Errorf("unexpected data after JSON object")
	}
	return raw, nil
}

// normalizePriority accepts exactly "low", "medium" or "high"; anything else is medium.
func normalizePriority(raw json.RawMessage) model.Priority {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return model.PriorityMedium
	}
	switch p := model.Priority(s); p {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return p
	default:
		return model.PriorityMedium
	}
}

// normalizeEstimatedTime returns whole minutes, rounding fractions up; 0 means absent.
func normalizeEstimatedTime(n *json.Number) int {
	if n == nil {
		return 0
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || f <= 0 {
		return 0
	}
	minutes := math.Ceil(f)
	if minutes > math.MaxInt32 {
		return 0
	}
	return int(minutes)
}

// normalizeDueDate returns the due date in loc, or nil when it is missing or unreadable.
func normalizeDueDate(raw json.RawMessage, loc *time.Location) *time.Time {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t = t.In(loc)
		return &t
	}
	for _, layout := range naiveDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t
		}
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
