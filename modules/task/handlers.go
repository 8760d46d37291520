package task

import (
	"context"
	"errors"

	domain "github.com/example/tarefa-api/domain/task"
	"github.com/go-monolith/mono"
)

// envelopeError maps a domain error onto an envelope code.
// Errors it does not know are returned unchanged as service errors.
func envelopeError(err error) (code, message string, handled bool) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ErrCodeNotFound, err.Error(), true
	case errors.Is(err, domain.ErrDateRequired):
		return ErrCodeValidation, err.Error(), true
	default:
		return "", "", false
	}
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	return toTaskResponse(m.service.GetByID(ctx, req.ID))
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(ctx context.Context, _ ListTasksRequest, _ *mono.Msg) (TaskListResponse, error) {
	return toTaskListResponse(m.service.GetAll(ctx))
}

// findByTitle handles the find-tasks-by-title service request.
func (m *TaskModule) findByTitle(ctx context.Context, req FindByTitleRequest, _ *mono.Msg) (TaskListResponse, error) {
	return toTaskListResponse(m.service.GetByTitle(ctx, req.Title))
}

// findByDate handles the find-tasks-by-date service request.
func (m *TaskModule) findByDate(ctx context.Context, req FindByDateRequest, _ *mono.Msg) (TaskListResponse, error) {
	return toTaskListResponse(m.service.GetByDate(ctx, req.Date))
}

// findByStatus handles the find-tasks-by-status service request.
func (m *TaskModule) findByStatus(ctx context.Context, req FindByStatusRequest, _ *mono.Msg) (TaskListResponse, error) {
	return toTaskListResponse(m.service.GetByStatus(ctx, req.Status))
}

// createTask handles the create-task service request.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	return toTaskResponse(m.service.Create(ctx, req.Task))
}

// updateTask handles the update-task service request.
func (m *TaskModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	return toTaskResponse(m.service.Update(ctx, req.ID, req.Task))
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if err := m.service.Delete(ctx, req.ID); err != nil {
		code, message, handled := envelopeError(err)
		if !handled {
			return DeleteTaskResponse{}, err
		}
		return DeleteTaskResponse{Deleted: false, Error: code, Message: message}, nil
	}
	return DeleteTaskResponse{Deleted: true}, nil
}

// toTaskResponse wraps a service result in a TaskResponse.
func toTaskResponse(t *domain.Task, err error) (TaskResponse, error) {
	if err != nil {
		code, message, handled := envelopeError(err)
		if !handled {
			return TaskResponse{}, err
		}
		return TaskResponse{Error: code, Message: message}, nil
	}
	return TaskResponse{Task: t}, nil
}

// toTaskListResponse wraps a service result in a TaskListResponse.
func toTaskListResponse(tasks []domain.Task, err error) (TaskListResponse, error) {
	if err != nil {
		return TaskListResponse{}, err
	}
	if tasks == nil {
		tasks = make([]domain.Task, 0)
	}
	return TaskListResponse{Tasks: tasks, Total: len(tasks)}, nil
}
