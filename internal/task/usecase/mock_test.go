package usecase_test

import (
	"context"
	"errors"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	"smart-task-manager/internal/task/repository"
	"smart-task-manager/internal/task/usecase"
	"smart-task-manager/pkg/gcalendar"
	"smart-task-manager/pkg/llmprovider"
	pkgLog "smart-task-manager/pkg/log"
)

// fixedNow is a Sunday.
var fixedNow = time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)

type mockProvider struct {
	text    string
	resp    *llmprovider.Response
	err     error
	calls   int
	lastReq *llmprovider.Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	if m.resp != nil {
		return m.resp, nil
	}
	return &llmprovider.Response{
		Content:      llmprovider.NewTextMessage(llmprovider.RoleAssistant, m.text),
		ProviderName: "mock",
	}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

type mockRepo struct {
	createErr error
	listErr   error
	linkErr   error

	created  []repository.CreateTaskOptions
	links    map[string]string
	listOpt  repository.ListTasksOptions
	listResp []model.Task
	total    int
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	m.created = append(m.created, opt)
	return model.Task{
		ID:            "task-1",
		UserID:        opt.UserID,
		Title:         opt.Task.Title,
		Description:   opt.Task.Description,
		DueDate:       opt.Task.DueDate,
		Priority:      opt.Task.Priority,
		EstimatedTime: opt.Task.EstimatedTime,
		Category:      opt.Task.Category,
		CreatedAt:     fixedNow,
	}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	m.listOpt = opt
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.listResp, m.total, nil
}

func (m *mockRepo) UpdateCalendarLink(ctx context.Context, id, link string) error {
	if m.linkErr != nil {
		return m.linkErr
	}
	if m.links == nil {
		m.links = map[string]string{}
	}
	m.links[id] = link
	return nil
}

type mockCalendar struct {
	fail  bool
	calls []gcalendar.CreateEventRequest
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.calls = append(m.calls, req)
	if m.fail {
		return nil, errors.New("calendar unavailable")
	}
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.google.com/event?eid=1"}, nil
}

func newUseCase(p llmprovider.Provider, repo repository.Repository, cal usecase.Calendar, loc *time.Location) task.UseCase {
	return usecase.New(pkgLog.NewNop(), p, repo, cal, usecase.Options{
		Location: loc,
		Now:      func() time.Time { return fixedNow },
	})
}
