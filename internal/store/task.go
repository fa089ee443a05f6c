package store

import (
	"context"

	"github.com/tasknest/tasknest-api/internal/domain"
)

// UpdateTaskParams carries the fields of a task update. Title and Description
// are required; Priority and Status are applied only when non-nil. Modeling
// the optional fields explicitly keeps the statement's column list fixed
// instead of concatenating caller-supplied fragments.
type UpdateTaskParams struct {
	Title       string
	Description string
	Priority    *domain.Priority
	Status      *domain.Status
}

// Validate checks the parameters before they reach a statement.
func (p UpdateTaskParams) Validate() error {
	if p.Title == "" {
		return domain.ErrTaskTitleEmpty
	}
	if p.Description == "" {
		return domain.ErrTaskDescriptionEmpty
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return domain.ErrInvalidPriority
	}
	if p.Status != nil && !p.Status.Valid() {
		return domain.ErrInvalidStatus
	}
	return nil
}

// TaskStore defines the persistence operations for tasks. Every operation is
// scoped to the verified identity: the owning user_id is a hard predicate of
// each statement, never a filter applied after fetch.
type TaskStore interface {
	// List returns all tasks owned by userID, most recently created first.
	// An empty result is a nil slice and no error.
	List(ctx context.Context, userID int64) ([]domain.Task, error)

	// Create persists a new task and returns the assigned id.
	// Returns a validation error if the task is invalid.
	Create(ctx context.Context, task *domain.Task) (int64, error)

	// Update overwrites title and description of the task matching id and
	// userID, and priority/status when supplied.
	// Returns ErrTaskNotFound if no row matches both id and userID.
	Update(ctx context.Context, userID, id int64, params UpdateTaskParams) error

	// Delete removes the task matching id and userID.
	// Returns ErrTaskNotFound if no row matches both id and userID.
	Delete(ctx context.Context, userID, id int64) error

	// ToggleStatus flips the status of the task matching id and userID
	// between pending and completed, returning the new status.
	// Returns ErrTaskNotFound if no row matches both id and userID.
	ToggleStatus(ctx context.Context, userID, id int64) (domain.Status, error)
}
