package task

import (
	"context"
	"time"

	domain "github.com/example/tarefa-api/domain/task"
)

// Error codes carried in response envelopes for domain outcomes.
const (
	ErrCodeNotFound   = "not_found"
	ErrCodeValidation = "validation_error"
)

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	ID uint `json:"id"`
}

// ListTasksRequest is the request for listing all tasks.
type ListTasksRequest struct{}

// FindByTitleRequest is the request for the exact-title filter.
type FindByTitleRequest struct {
	Title string `json:"titulo"`
}

// FindByDateRequest is the request for the calendar-day filter.
type FindByDateRequest struct {
	Date time.Time `json:"data"`
}

// FindByStatusRequest is the request for the status filter.
type FindByStatusRequest struct {
	Status domain.Status `json:"status"`
}

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Task domain.Task `json:"task"`
}

// UpdateTaskRequest is the request for overwriting a task.
type UpdateTaskRequest struct {
	ID   uint        `json:"id"`
	Task domain.Task `json:"task"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	ID uint `json:"id"`
}

// TaskResponse carries a single task or a domain error code.
type TaskResponse struct {
	Task    *domain.Task `json:"task,omitempty"`
	Error   string       `json:"error,omitempty"`
	Message string       `json:"message,omitempty"`
}

// TaskListResponse is the response containing a list of tasks.
type TaskListResponse struct {
	Tasks []domain.Task `json:"tasks"`
	Total int           `json:"total"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// TaskPort defines the task operations driving adapters depend on.
// Domain failures are reported as domain.ErrNotFound and domain.ErrDateRequired.
type TaskPort interface {
	GetByID(ctx context.Context, id uint) (*domain.Task, error)
	GetAll(ctx context.Context) ([]domain.Task, error)
	GetByTitle(ctx context.Context, title string) ([]domain.Task, error)
	GetByDate(ctx context.Context, date time.Time) ([]domain.Task, error)
	GetByStatus(ctx context.Context, status domain.Status) ([]domain.Task, error)
	Create(ctx context.Context, payload domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id uint, payload domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id uint) error
}
