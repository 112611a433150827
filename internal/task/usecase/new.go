package usecase

import (
	"context"
	"time"

	"smart-task-manager/internal/task"
	"smart-task-manager/internal/task/repository"
	"smart-task-manager/pkg/gcalendar"
	"smart-task-manager/pkg/llmprovider"
	pkgLog "smart-task-manager/pkg/log"
)

const (
	defaultMaxInputChars   = 2000
	defaultMaxOutputTokens = 500
	defaultTemperature     = 0.2
	defaultEventMinutes    = 60
)

// Calendar mirrors dated tasks as calendar events.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Options tunes the use case. Zero values select defaults.
type Options struct {
	Location        *time.Location
	MaxInputChars   int
	MaxOutputTokens int
	Temperature     *float64 // nil selects the default; 0 is honored
	CalendarID      string
	Now             func() time.Time
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      llmprovider.Provider
	repo     repository.Repository
	calendar Calendar

	loc             *time.Location
	now             func() time.Time
	maxInputChars   int
	maxOutputTokens int
	temperature     float64
	calendarID      string
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	llm llmprovider.Provider,
	repo repository.Repository,
	calendar Calendar,
	opts Options,
) task.UseCase {
	uc := &implUseCase{
		l:               l,
		llm:             llm,
		repo:            repo,
		calendar:        calendar,
		loc:             opts.Location,
		now:             opts.Now,
		maxInputChars:   opts.MaxInputChars,
		maxOutputTokens: opts.MaxOutputTokens,
		temperature:     defaultTemperature,
		calendarID:      opts.CalendarID,
	}
	if uc.loc == nil {
		uc.loc = time.UTC
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.maxInputChars <= 0 {
		uc.maxInputChars = defaultMaxInputChars
	}
	if uc.maxOutputTokens <= 0 {
		uc.maxOutputTokens = defaultMaxOutputTokens
	}
	if opts.Temperature != nil {
		uc.temperature = *opts.Temperature
	}
	return uc
}

// newContext captures the reference moment for one extraction.
func (uc *implUseCase) newContext() task.ExtractionContext {
	return task.ExtractionContext{Now: uc.now().In(uc.loc)}
}
