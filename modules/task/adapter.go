package task

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domain "github.com/example/tarefa-api/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter wraps ServiceContainer for type-safe cross-module communication.
// It implements TaskPort over the task module's request-reply services.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
// container is the ServiceContainer received via SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// GetByID retrieves a task via the get-task service.
func (a *taskAdapter) GetByID(ctx context.Context, id uint) (*domain.Task, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-task",
		json.Marshal,
		json.Unmarshal,
		&GetTaskRequest{ID: id},
		&resp,
	); err != nil {
		return nil, fmt.Errorf("get-task service call failed: %w", err)
	}
	return fromTaskResponse(resp)
}

// GetAll lists every task via the list-tasks service.
func (a *taskAdapter) GetAll(ctx context.Context) ([]domain.Task, error) {
	var resp TaskListResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-tasks",
		json.Marshal,
		json.Unmarshal,
		&ListTasksRequest{},
		&resp,
	); err != nil {
		return nil, fmt.Errorf("list-tasks service call failed: %w", err)
	}
	return fromTaskListResponse(resp), nil
}

// GetByTitle filters tasks via the find-tasks-by-title service.
func (a *taskAdapter) GetByTitle(ctx context.Context, title string) ([]domain.Task, error) {
	var resp TaskListResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"find-tasks-by-title",
		json.Marshal,
		json.Unmarshal,
		&FindByTitleRequest{Title: title},
		&resp,
	); err != nil {
		return nil, fmt.Errorf("find-tasks-by-title service call failed: %w", err)
	}
	return fromTaskListResponse(resp), nil
}

// GetByDate filters tasks via the find-tasks-by-date service.
func (a *taskAdapter) GetByDate(ctx context.Context, date time.Time) ([]domain.Task, error) {
	var resp TaskListResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"find-tasks-by-date",
		json.Marshal,
		json.Unmarshal,
		&FindByDateRequest{Date: date},
		&resp,
	); err != nil {
		return nil, fmt.Errorf("find-tasks-by-date service call failed: %w", err)
	}
	return fromTaskListResponse(resp), nil
}

// GetByStatus filters tasks via the find-tasks-by-status service.
func (a *taskAdapter) GetByStatus(ctx context.Context, status domain.Status) ([]domain.Task, error) {
	var resp TaskListResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"find-tasks-by-status",
		json.Marshal,
		json.Unmarshal,
		&FindByStatusRequest{Status: status},
		&resp,
	); err != nil {
		return nil, fmt.Errorf("find-tasks-by-status service call failed: %w", err)
	}
	return fromTaskListResponse(resp), nil
}

// Create creates a task via the create-task service.
func (a *taskAdapter) Create(ctx context.Context, payload domain.Task) (*domain.Task, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"create-task",
		json.Marshal,
		json.Unmarshal,
		&CreateTaskRequest{Task: payload},
		&resp,
	); err != nil {
		return nil, fmt.Errorf("create-task service call failed: %w", err)
	}
	return fromTaskResponse(resp)
}

// Update overwrites a task via the update-task service.
func (a *taskAdapter) Update(ctx context.Context, id uint, payload domain.Task) (*domain.Task, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"update-task",
		json.Marshal,
		json.Unmarshal,
		&UpdateTaskRequest{ID: id, Task: payload},
		&resp,
	); err != nil {
		return nil, fmt.Errorf("update-task service call failed: %w", err)
	}
	return fromTaskResponse(resp)
}

// Delete removes a task via the delete-task service.
func (a *taskAdapter) Delete(ctx context.Context, id uint) error {
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"delete-task",
		json.Marshal,
		json.Unmarshal,
		&DeleteTaskRequest{ID: id},
		&resp,
	); err != nil {
		return fmt.Errorf("delete-task service call failed: %w", err)
	}
	if resp.Error != "" {
		return domainError(resp.Error, resp.Message)
	}
	if !resp.Deleted {
		return fmt.Errorf("task not deleted: %d", id)
	}
	return nil
}

// domainError turns an envelope code back into its sentinel error.
func domainError(code, message string) error {
	switch code {
	case ErrCodeNotFound:
		return domain.ErrNotFound
	case ErrCodeValidation:
		return domain.ErrDateRequired
	default:
		return fmt.Errorf("task service error %s: %s", code, message)
	}
}

func fromTaskResponse(resp TaskResponse) (*domain.Task, error) {
	if resp.Error != "" {
		return nil, domainError(resp.Error, resp.Message)
	}
	if resp.Task == nil {
		return nil, fmt.Errorf("task service returned an empty response")
	}
	return resp.Task, nil
}

func fromTaskListResponse(resp TaskListResponse) []domain.Task {
	if resp.Tasks == nil {
		return make([]domain.Task, 0)
	}
	return resp.Tasks
}
