package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"smart-task-manager/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.FixedZone("UTC+7", 7*3600))
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if got := string(b); got != `"2024-05-01T15:30:00+07:00"` {
		t.Errorf("unexpected DateTime JSON: %s", got)
	}
}

func TestNewDateTimePtr(t *testing.T) {
	if response.NewDateTimePtr(nil) != nil {
		t.Error("expected nil for nil time")
	}

	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	b, err := json.Marshal(struct {
		Due *response.DateTime `json:"due,omitempty"`
	}{Due: response.NewDateTimePtr(&tm)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(b); got != `{"due":"2024-05-01T15:30:00Z"}` {
		t.Errorf("unexpected JSON: %s", got)
	}
}
