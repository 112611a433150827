package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task/repository"
	pkgLog "smart-task-manager/pkg/log"
)

func setupRepo(t *testing.T) *implRepository {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "tasks-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := New(db, pkgLog.NewNop())
	require.NoError(t, err)

	impl := repo.(*implRepository)
	clock := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	seq := 0
	impl.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	impl.newID = func() string {
		seq++
		return fmt.Sprintf("task-%d", seq)
	}
	return impl
}

func at(t *testing.T, value string) *time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return &tm
}

func TestCreateTask(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	got, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID: "alice",
		Task: model.ParsedTask{
			Title:         "Call mom",
			DueDate:       at(t, "2026-02-10T17:00:00+07:00"),
			Priority:      model.PriorityHigh,
			EstimatedTime: 15,
			Category:      "personal",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "task-1", got.ID)
	assert.Equal(t, "alice", got.UserID)

	tasks, total, err := repo.ListTasks(ctx, repository.ListTasksOptions{UserID: "alice"})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, tasks, 1)

	stored := tasks[0]
	assert.Equal(t, "Call mom", stored.Title)
	assert.Equal(t, model.PriorityHigh, stored.Priority)
	assert.Equal(t, 15, stored.EstimatedTime)
	assert.Equal(t, "personal", stored.Category)
	require.NotNil(t, stored.DueDate)
	assert.True(t, stored.DueDate.Equal(*at(t, "2026-02-10T10:00:00Z")))
	assert.True(t, stored.CreatedAt.Equal(got.CreatedAt))
}

func TestCreateTask_DefaultsPriority(t *testing.T) {
	repo := setupRepo(t)

	got, err := repo.CreateTask(context.Background(), repository.CreateTaskOptions{
		UserID: "alice",
		Task:   model.ParsedTask{Title: "Buy groceries"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityMedium, got.Priority)
	assert.Nil(t, got.DueDate)
}

func TestListTasks_OrderAndWindow(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for _, in := range []struct {
		user  string
		title string
		due   *time.Time
	}{
		{"alice", "undated", nil},
		{"alice", "late", at(t, "2026-03-20T09:00:00Z")},
		{"alice", "early", at(t, "2026-03-01T09:00:00.5Z")},
		{"alice", "earlier", at(t, "2026-03-01T09:00:00Z")},
		{"bob", "other user", at(t, "2026-03-05T09:00:00Z")},
	} {
		_, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			UserID: in.user,
			Task:   model.ParsedTask{Title: in.title, DueDate: in.due},
		})
		require.NoError(t, err)
	}

	tasks, total, err := repo.ListTasks(ctx, repository.ListTasksOptions{UserID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{"earlier", "early", "late", "undated"}, titles(tasks))

	tasks, total, err = repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID: "alice",
		From:   *at(t, "2026-03-01T00:00:00Z"),
		To:     *at(t, "2026-03-02T00:00:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"earlier", "early"}, titles(tasks))

	tasks, total, err = repo.ListTasks(ctx, repository.ListTasksOptions{UserID: "alice", Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{"early", "late"}, titles(tasks))
}

func TestUpdateCalendarLink(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID: "alice",
		Task:   model.ParsedTask{Title: "Dentist"},
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateCalendarLink(ctx, created.ID, "https://calendar.google.com/e/1"))

	tasks, _, err := repo.ListTasks(ctx, repository.ListTasksOptions{UserID: "alice"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "https://calendar.google.com/e/1", tasks[0].CalendarLink)

	err = repo.UpdateCalendarLink(ctx, "missing", "x")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMigrateDown(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, MigrateUp(db))
	require.NoError(t, MigrateUp(db))
	require.NoError(t, MigrateDown(db))

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'tasks'`).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNew_NilDB(t *testing.T) {
	_, err := New(nil, pkgLog.NewNop())
	assert.Error(t, err)
}

func titles(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}
