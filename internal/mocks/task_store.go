package mocks

import (
	"context"

	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	ListFn         func(ctx context.Context, userID int64) ([]domain.Task, error)
	CreateFn       func(ctx context.Context, task *domain.Task) (int64, error)
	UpdateFn       func(ctx context.Context, userID, id int64, params store.UpdateTaskParams) error
	DeleteFn       func(ctx context.Context, userID, id int64) error
	ToggleStatusFn func(ctx context.Context, userID, id int64) (domain.Status, error)

	// Default values used when functions aren't explicitly defined
	Tasks  []domain.Task
	NextID int64
	Status domain.Status
	Err    error
}

// Ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)

// List implements the store.TaskStore interface
func (m *MockTaskStore) List(ctx context.Context, userID int64) ([]domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID)
	}
	return m.Tasks, m.Err
}

// Create implements the store.TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) (int64, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.NextID, m.Err
}

// Update implements the store.TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, userID, id int64, params store.UpdateTaskParams) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, id, params)
	}
	return m.Err
}

// Delete implements the store.TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, userID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, id)
	}
	return m.Err
}

// ToggleStatus implements the store.TaskStore interface
func (m *MockTaskStore) ToggleStatus(ctx context.Context, userID, id int64) (domain.Status, error) {
	if m.ToggleStatusFn != nil {
		return m.ToggleStatusFn(ctx, userID, id)
	}
	return m.Status, m.Err
}
