package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cirocosta/todo-tracker-go/internal/model"
)

//go:embed schema.sql
var schemaFS embed.FS

// OpenDB opens (or creates) the SQLite database at path and applies the
// schema. Use ":memory:" for a throwaway database.
func OpenDB(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("db path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := applySchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func applySchema(ctx context.Context, db *sql.DB) error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}

// SQLiteTodoRepository implements TodoRepository on a SQLite database.
type SQLiteTodoRepository struct {
	db *sql.DB
}

// NewSQLiteTodoRepository creates a repository backed by the given database
func NewSQLiteTodoRepository(db *sql.DB) *SQLiteTodoRepository {
	return &SQLiteTodoRepository{db: db}
}

const todoColumns = `id, title, content, tag, status, priority,
	submitted_date, completed_date, cancelled_date,
	created_date, updated_date, deleted_date, version`

// QueryAll returns every todo, soft-deleted ones included
func (r *SQLiteTodoRepository) QueryAll(ctx context.Context) ([]model.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+todoColumns+` FROM todos`)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

// GetByID returns a specific todo by ID
func (r *SQLiteTodoRepository) GetByID(ctx context.Context, id int64) (model.Todo, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)

	todo, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return model.Todo{}, ErrTodoNotFound{ID: id}
	}
	if err != nil {
		return model.Todo{}, err
	}

	return todo, nil
}

// Add stores a new todo, assigning its ID and initial version
func (r *SQLiteTodoRepository) Add(ctx context.Context, todo model.Todo) (model.Todo, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO todos (title, content, tag, status, priority,
			submitted_date, completed_date, cancelled_date,
			created_date, updated_date, deleted_date, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		todo.Title, todo.Content, todo.Tag, todo.Status, todo.Priority,
		todo.SubmittedDate, nullTime(todo.CompletedDate), nullTime(todo.CancelledDate),
		todo.CreatedDate, nullTime(todo.UpdatedDate), nullTime(todo.DeletedDate),
	)
	if err != nil {
		return model.Todo{}, fmt.Errorf("insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Todo{}, fmt.Errorf("fetch inserted id: %w", err)
	}

	todo.ID = id
	todo.Version = 1
	return todo, nil
}

// Save overwrites a previously-fetched todo. The WHERE clause on version is
// the optimistic concurrency check: a lost race updates zero rows.
func (r *SQLiteTodoRepository) Save(ctx context.Context, todo model.Todo) (model.Todo, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE todos
		SET title = ?, content = ?, tag = ?, status = ?, priority = ?,
			submitted_date = ?, completed_date = ?, cancelled_date = ?,
			created_date = ?, updated_date = ?, deleted_date = ?,
			version = version + 1
		WHERE id = ? AND version = ?`,
		todo.Title, todo.Content, todo.Tag, todo.Status, todo.Priority,
		todo.SubmittedDate, nullTime(todo.CompletedDate), nullTime(todo.CancelledDate),
		todo.CreatedDate, nullTime(todo.UpdatedDate), nullTime(todo.DeletedDate),
		todo.ID, todo.Version,
	)
	if err != nil {
		return model.Todo{}, fmt.Errorf("update todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.Todo{}, fmt.Errorf("fetch affected rows: %w", err)
	}

	if affected == 0 {
		// distinguish a missing row from a stale version
		var exists int
		err := r.db.QueryRowContext(ctx, `SELECT 1 FROM todos WHERE id = ?`, todo.ID).Scan(&exists)
		if err == sql.ErrNoRows {
			return model.Todo{}, ErrTodoNotFound{ID: todo.ID}
		}
		if err != nil {
			return model.Todo{}, err
		}
		return model.Todo{}, ErrTodoConflict{ID: todo.ID}
	}

	todo.Version++
	return todo, nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (model.Todo, error) {
	var todo model.Todo
	var completed, cancelled, updated, deleted sql.NullTime

	err := s.Scan(
		&todo.ID, &todo.Title, &todo.Content, &todo.Tag, &todo.Status, &todo.Priority,
		&todo.SubmittedDate, &completed, &cancelled,
		&todo.CreatedDate, &updated, &deleted, &todo.Version,
	)
	if err != nil {
		return model.Todo{}, err
	}

	todo.CompletedDate = timePtr(completed)
	todo.CancelledDate = timePtr(cancelled)
	todo.UpdatedDate = timePtr(updated)
	todo.DeletedDate = timePtr(deleted)

	return todo, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
