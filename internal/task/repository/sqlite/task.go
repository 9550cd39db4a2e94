package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"daybalance/internal/model"
	"daybalance/internal/task/repository"
)

const timeLayout = time.RFC3339Nano

// Repository is the SQLite-backed task store.
type Repository struct {
	db *sql.DB
}

// New wraps an existing database handle.
func New(db *sql.DB) (*Repository, error) {
	if db == nil {
		return nil, errors.New("sqlite: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &Repository{db: db}, nil
}

// Open opens (or creates) the database at path and applies migrations.
func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := New(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Create(ctx context.Context, t model.Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, type, status, scheduled_date, scheduled_time, duration, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, string(t.Type), string(t.Status),
		t.ScheduledDate, t.ScheduledTime, t.Duration,
		mustTime(t.CreatedAt), nullTime(t.CompletedAt),
	)
	return err
}

func (r *Repository) Get(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, type, status, scheduled_date, scheduled_time, duration, created_at, completed_at
		FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, repository.ErrNotFound
		}
		return model.Task{}, err
	}
	return t, nil
}

func (r *Repository) Update(ctx context.Context, t model.Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, type = ?, status = ?, scheduled_date = ?, scheduled_time = ?, duration = ?, completed_at = ?
		WHERE id = ?`,
		t.Title, string(t.Type), string(t.Status),
		t.ScheduledDate, t.ScheduledTime, t.Duration,
		nullTime(t.CompletedAt), t.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *Repository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	query := `SELECT id, title, type, status, scheduled_date, scheduled_time, duration, created_at, completed_at FROM tasks`
	clauses := make([]string, 0, 3)
	args := make([]any, 0, 5)
	if opt.Date != "" {
		clauses = append(clauses, "scheduled_date = ?")
		args = append(args, opt.Date)
	}
	if opt.DateFrom != "" {
		clauses = append(clauses, "scheduled_date >= ?")
		args = append(args, opt.DateFrom)
	}
	if opt.DateTo != "" {
		clauses = append(clauses, "scheduled_date <= ?")
		args = append(args, opt.DateTo)
	}
	if opt.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, string(opt.Status))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at DESC`
	query += applyPagination(&args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(timeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(timeLayout)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(timeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	var typ, status, created string
	var completed sql.NullString
	if err := s.Scan(&out.ID, &out.Title, &typ, &status,
		&out.ScheduledDate, &out.ScheduledTime, &out.Duration,
		&created, &completed); err != nil {
		return model.Task{}, err
	}
	createdAt, err := time.Parse(timeLayout, created)
	if err != nil {
		return model.Task{}, err
	}
	completedAt, err := parseNullableTime(completed)
	if err != nil {
		return model.Task{}, err
	}
	out.Type = model.TaskType(typ)
	out.Status = model.TaskStatus(status)
	out.CreatedAt = createdAt
	out.CompletedAt = completedAt
	return out, nil
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
