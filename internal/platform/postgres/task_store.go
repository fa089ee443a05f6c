package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// List implements store.TaskStore.List
// It returns all tasks owned by userID, most recently created first.
func (s *PostgresTaskStore) List(ctx context.Context, userID int64) ([]domain.Task, error) {
	query := `
		SELECT id, user_id, title, description, priority, status, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		s.logger.Error("failed to query tasks", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query tasks: %w", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Warn("failed to close rows", "error", err)
		}
	}()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description,
			&t.Priority, &t.Status, &t.CreatedAt,
		); err != nil {
			s.logger.Error("failed to scan task row", "error", err, "user_id", userID)
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", MapError(err))
	}

	return tasks, nil
}

// Create implements store.TaskStore.Create
// It validates the task, persists it, and returns the id assigned by the
// database. CreatedAt is assigned by the database as well.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) (int64, error) {
	if err := task.Validate(); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO tasks (user_id, title, description, priority, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, task.Description, task.Priority, task.Status,
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		s.logger.Error("failed to create task", "error", err, "user_id", task.UserID)
		return 0, fmt.Errorf("failed to create task: %w", MapError(err))
	}

	s.logger.Debug("task created", "task_id", task.ID, "user_id", task.UserID)
	return task.ID, nil
}

// Update implements store.TaskStore.Update
// Title and description are always overwritten; priority and status only when
// supplied. The SET clause is assembled from a fixed set of columns, with all
// values passed as bind parameters.
func (s *PostgresTaskStore) Update(ctx context.Context, userID, id int64, params store.UpdateTaskParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	query, args := buildTaskUpdate(userID, id, params)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Error("failed to update task", "error", err, "task_id", id, "user_id", userID)
		return fmt.Errorf("failed to update task: %w", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return err
	}

	s.logger.Debug("task updated", "task_id", id, "user_id", userID)
	return nil
}

// Delete implements store.TaskStore.Delete
// It removes the task matching both id and userID.
// Returns store.ErrTaskNotFound if no such row exists, which makes a repeated
// delete fail cleanly rather than crash.
func (s *PostgresTaskStore) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		s.logger.Error("failed to delete task", "error", err, "task_id", id, "user_id", userID)
		return fmt.Errorf("failed to delete task: %w", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return err
	}

	s.logger.Debug("task deleted", "task_id", id, "user_id", userID)
	return nil
}

// buildTaskUpdate assembles the UPDATE statement for the given params.
// The column list is fixed; only which optional assignments appear varies,
// and every value travels as a bind parameter.
func buildTaskUpdate(userID, id int64, params store.UpdateTaskParams) (string, []any) {
	assignments := []string{"title = $1", "description = $2"}
	args := []any{params.Title, params.Description}

	if params.Priority != nil {
		args = append(args, *params.Priority)
		assignments = append(assignments, fmt.Sprintf("priority = $%d", len(args)))
	}
	if params.Status != nil {
		args = append(args, *params.Status)
		assignments = append(assignments, fmt.Sprintf("status = $%d", len(args)))
	}

	args = append(args, id, userID)
	query := fmt.Sprintf(
		"UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(assignments, ", "), len(args)-1, len(args),
	)

	return query, args
}

// ToggleStatus implements store.TaskStore.ToggleStatus
// The flip happens inside a single conditional UPDATE, so two concurrent
// toggles on the same row serialize on the row lock instead of racing a
// read-then-write.
func (s *PostgresTaskStore) ToggleStatus(ctx context.Context, userID, id int64) (domain.Status, error) {
	query := `
		UPDATE tasks
		SET status = CASE WHEN status = 'pending' THEN 'completed' ELSE 'pending' END
		WHERE id = $1 AND user_id = $2
		RETURNING status
	`

	var status domain.Status
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", store.ErrTaskNotFound
		}
		s.logger.Error("failed to toggle task status", "error", err, "task_id", id, "user_id", userID)
		return "", fmt.Errorf("failed to toggle task status: %w", MapError(err))
	}

	s.logger.Debug("task status toggled", "task_id", id, "user_id", userID, "status", status)
	return status, nil
}
