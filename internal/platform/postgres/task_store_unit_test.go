package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

func ptrPriority(p domain.Priority) *domain.Priority { return &p }
func ptrStatus(s domain.Status) *domain.Status       { return &s }

func TestBuildTaskUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    store.UpdateTaskParams
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "required fields only",
			params:    store.UpdateTaskParams{Title: "t", Description: "d"},
			wantQuery: "UPDATE tasks SET title = $1, description = $2 WHERE id = $3 AND user_id = $4",
			wantArgs:  []any{"t", "d", int64(9), int64(3)},
		},
		{
			name: "with priority",
			params: store.UpdateTaskParams{
				Title: "t", Description: "d",
				Priority: ptrPriority(domain.PriorityHigh),
			},
			wantQuery: "UPDATE tasks SET title = $1, description = $2, priority = $3 WHERE id = $4 AND user_id = $5",
			wantArgs:  []any{"t", "d", domain.PriorityHigh, int64(9), int64(3)},
		},
		{
			name: "with status",
			params: store.UpdateTaskParams{
				Title: "t", Description: "d",
				Status: ptrStatus(domain.StatusCompleted),
			},
			wantQuery: "UPDATE tasks SET title = $1, description = $2, status = $3 WHERE id = $4 AND user_id = $5",
			wantArgs:  []any{"t", "d", domain.StatusCompleted, int64(9), int64(3)},
		},
		{
			name: "with priority and status",
			params: store.UpdateTaskParams{
				Title: "t", Description: "d",
				Priority: ptrPriority(domain.PriorityLow),
				Status:   ptrStatus(domain.StatusPending),
			},
			wantQuery: "UPDATE tasks SET title = $1, description = $2, priority = $3, status = $4 WHERE id = $5 AND user_id = $6",
			wantArgs:  []any{"t", "d", domain.PriorityLow, domain.StatusPending, int64(9), int64(3)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query, args := buildTaskUpdate(3, 9, tt.params)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestTaskStoreUpdate_RejectsInvalidParams(t *testing.T) {
	t.Parallel()

	// Validation happens before any statement reaches the database, so a nil
	// DBTX would only matter if the guard failed.
	s := &PostgresTaskStore{logger: testLogger()}

	tests := []struct {
		name    string
		params  store.UpdateTaskParams
		wantErr error
	}{
		{
			name:    "empty title",
			params:  store.UpdateTaskParams{Description: "d"},
			wantErr: domain.ErrTaskTitleEmpty,
		},
		{
			name:    "empty description",
			params:  store.UpdateTaskParams{Title: "t"},
			wantErr: domain.ErrTaskDescriptionEmpty,
		},
		{
			name: "status outside the enumeration",
			params: store.UpdateTaskParams{
				Title: "t", Description: "d",
				Status: ptrStatus("archived"),
			},
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name: "priority outside the enumeration",
			params: store.UpdateTaskParams{
				Title: "t", Description: "d",
				Priority: ptrPriority("urgent"),
			},
			wantErr: domain.ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := s.Update(context.Background(), 1, 1, tt.params)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTaskStoreCreate_RejectsInvalidTask(t *testing.T) {
	t.Parallel()

	s := &PostgresTaskStore{logger: testLogger()}

	_, err := s.Create(context.Background(), &domain.Task{
		UserID:      1,
		Description: "d",
		Priority:    domain.PriorityMedium,
		Status:      domain.StatusPending,
	})
	require.ErrorIs(t, err, domain.ErrTaskTitleEmpty)
}
