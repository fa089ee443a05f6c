package api

import (
	"time"

	"github.com/tasknest/tasknest-api/internal/domain"
)

// Common request/response structures

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest defines the payload for the full task update endpoint.
// Priority and Status are pointers so that "absent" and "supplied" are
// distinguishable: only supplied fields are written.
type UpdateTaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending completed"`
}

// CreateTaskResponse confirms task creation and reports the assigned id.
type CreateTaskResponse struct {
	Message string `json:"message"`
	TaskID  int64  `json:"taskId"`
}

// MessageResponse is the generic confirmation body for mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToggleStatusResponse reports the status a toggle transitioned to.
type ToggleStatusResponse struct {
	Message string        `json:"message"`
	Status  domain.Status `json:"status"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse confirms account creation.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginResponse carries the signed token asserting the user's identity.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// VerifyResponse reports that a presented token is valid and the identity
// it asserts. Invalid tokens never reach this shape; they yield the standard
// error body.
type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// ProfileResponse is the authenticated user's own account view.
type ProfileResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
