package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

// TaskHandler handles the task CRUD API requests. It performs no direct data
// access; all persistence goes through the TaskStore, which owns the
// ownership predicate.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
// If logger is nil, a default logger will be used.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// List handles GET /api/tasks.
// Responds with all tasks owned by the authenticated user, most recent first.
// An empty result is an empty array, not an error.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "No token provided")
		return
	}

	tasks, err := h.taskStore.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list tasks", "error", err, "user_id", userID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	if tasks == nil {
		tasks = []domain.Task{}
	}

	RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Create handles POST /api/tasks.
// Responds 201 with the assigned task id, or 400 when title or description
// is missing or the priority falls outside its enumeration.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "No token provided")
		return
	}

	var req CreateTaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Vet the priority before struct validation so an out-of-range value
	// reports its own message, as the update path does.
	priority := domain.PriorityMedium
	if req.Priority != "" {
		parsed, err := domain.ParsePriority(req.Priority)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		priority = parsed
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Warn("task creation failed: missing title or description", "user_id", userID)
		RespondWithError(w, r, http.StatusBadRequest, "Title and description required")
		return
	}

	task, err := domain.NewTask(userID, req.Title, req.Description, priority)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.logger.Info("creating task", "user_id", userID, "title", req.Title)

	taskID, err := h.taskStore.Create(r.Context(), task)
	if err != nil {
		h.logger.Error("failed to create task", "error", err, "user_id", userID)
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	h.logger.Info("task created", "task_id", taskID, "user_id", userID)

	RespondWithJSON(w, r, http.StatusCreated, CreateTaskResponse{
		Message: "Task created",
		TaskID:  taskID,
	})
}

// Update handles PUT /api/tasks/{id}.
// Title and description are required; priority and status are written only
// when supplied, and values outside their enumerations are rejected.
// Responds 404 when no task matches both id and owner.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Title and description required")
		return
	}

	params := store.UpdateTaskParams{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Priority != nil {
		priority, err := domain.ParsePriority(*req.Priority)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		params.Priority = &priority
	}
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		params.Status = &status
	}

	if err := h.taskStore.Update(r.Context(), userID, taskID, params); err != nil {
		if !store.IsNotFoundError(err) {
			h.logger.Error("failed to update task", "error", err, "task_id", taskID, "user_id", userID)
		}
		HandleAPIError(w, r, err, "")
		return
	}

	h.logger.Info("task updated", "task_id", taskID, "user_id", userID)

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Task updated"})
}

// Delete handles DELETE /api/tasks/{id}.
// Responds 404 when no task matches both id and owner, including a repeat
// delete of an already-deleted task.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), userID, taskID); err != nil {
		if !store.IsNotFoundError(err) {
			h.logger.Error("failed to delete task", "error", err, "task_id", taskID, "user_id", userID)
		}
		HandleAPIError(w, r, err, "")
		return
	}

	h.logger.Info("task deleted", "task_id", taskID, "user_id", userID)

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Task deleted"})
}

// ToggleStatus handles PATCH /api/tasks/{id}/status.
// Flips the task between pending and completed and reports the new status.
func (h *TaskHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	status, err := h.taskStore.ToggleStatus(r.Context(), userID, taskID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			h.logger.Error("failed to toggle task status", "error", err, "task_id", taskID, "user_id", userID)
		}
		HandleAPIError(w, r, err, "")
		return
	}

	h.logger.Info("task status toggled", "task_id", taskID, "user_id", userID, "status", status)

	RespondWithJSON(w, r, http.StatusOK, ToggleStatusResponse{
		Message: "Status updated",
		Status:  status,
	})
}
