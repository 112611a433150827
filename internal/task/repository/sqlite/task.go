package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task/repository"
)

// Fixed width so that text ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const defaultListLimit = 20

const taskColumns = `id, user_id, title, description, due_at, priority, estimated_time, category, calendar_link, created_at`

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:            r.newID(),
		UserID:        opt.UserID,
		Title:         opt.Task.Title,
		Description:   opt.Task.Description,
		DueDate:       opt.Task.DueDate,
		Priority:      opt.Task.Priority,
		EstimatedTime: opt.Task.EstimatedTime,
		Category:      opt.Task.Category,
		CalendarLink:  opt.CalendarLink,
		CreatedAt:     r.now().UTC(),
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, t.Description, nullTime(t.DueDate), string(t.Priority),
		t.EstimatedTime, t.Category, t.CalendarLink, formatTime(t.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: failed to insert task: %v", err)
		return model.Task{}, fmt.Errorf("insert task: %w", err)
	}

	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	clauses := []string{"user_id = ?"}
	args := []any{opt.UserID}
	if !opt.From.IsZero() {
		clauses = append(clauses, "due_at >= ?")
		args = append(args, formatTime(opt.From))
	}
	if !opt.To.IsZero() {
		clauses = append(clauses, "due_at < ?")
		args = append(args, formatTime(opt.To))
	}
	where := " WHERE " + strings.Join(clauses, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT ` + taskColumns + ` FROM tasks` + where +
		` ORDER BY due_at IS NULL, due_at ASC, created_at ASC`
	query += applyPagination(&args, limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, 0, scanErr
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

func (r *implRepository) UpdateCalendarLink(ctx context.Context, id, link string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET calendar_link = ? WHERE id = ?`, link, id)
	if err != nil {
		return fmt.Errorf("update calendar link: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func formatTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return formatTime(*v)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		if limit <= 0 {
			sql += " LIMIT -1"
		}
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	var due sql.NullString
	var priority string
	var created string
	if err := s.Scan(&out.ID, &out.UserID, &out.Title, &out.Description, &due, &priority,
		&out.EstimatedTime, &out.Category, &out.CalendarLink, &created); err != nil {
		return model.Task{}, err
	}
	createdAt, err := time.Parse(sqliteTimeLayout, created)
	if err != nil {
		return model.Task{}, err
	}
	dueAt, err := parseNullableTime(due)
	if err != nil {
		return model.Task{}, err
	}
	out.Priority = model.Priority(priority)
	out.CreatedAt = createdAt
	out.DueDate = dueAt
	return out, nil
}
