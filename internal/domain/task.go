package domain

import (
	"fmt"
	"time"
)

// Task-specific validation errors
var (
	// ErrTaskTitleEmpty is returned when a task's title is empty.
	ErrTaskTitleEmpty = fmt.Errorf("%w: title cannot be empty", ErrValidation)

	// ErrTaskDescriptionEmpty is returned when a task's description is empty.
	ErrTaskDescriptionEmpty = fmt.Errorf("%w: description cannot be empty", ErrValidation)

	// ErrInvalidPriority is returned when a priority value is outside the
	// low/medium/high enumeration.
	ErrInvalidPriority = fmt.Errorf("%w: invalid priority", ErrValidation)

	// ErrInvalidStatus is returned when a status value is outside the
	// pending/completed enumeration.
	ErrInvalidStatus = fmt.Errorf("%w: invalid status", ErrValidation)
)

// Status is the lifecycle state of a task. It is a two-value enumeration;
// transitions are unbounded and reversible.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ParseStatus validates a raw status value against the enumeration.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Toggled returns the flipped status: pending becomes completed and
// completed becomes pending. This is the reference form of the status state
// machine; the store performs the same flip inside a conditional UPDATE so
// the transition stays atomic under concurrent toggles.
func (s Status) Toggled() Status {
	if s == StatusPending {
		return StatusCompleted
	}
	return StatusPending
}

// Valid reports whether the status is one of the enumerated values.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Priority is the urgency label of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority validates a raw priority value against the enumeration.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
}

// Valid reports whether the priority is one of the enumerated values.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task represents one unit of work owned by exactly one user.
// ID and CreatedAt are assigned by the store on creation and are immutable,
// as is UserID, which is set from the verified token claim.
type Task struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrTaskTitleEmpty
	}
	if t.Description == "" {
		return ErrTaskDescriptionEmpty
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	return nil
}

// NewTask creates a Task owned by userID with the initial status "pending".
// An empty priority defaults to "medium". The store assigns ID and CreatedAt.
// Returns an error if validation fails.
func NewTask(userID int64, title, description string, priority Priority) (*Task, error) {
	if priority == "" {
		priority = PriorityMedium
	}

	task := &Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      StatusPending,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}
