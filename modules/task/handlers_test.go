package task

import (
	"context"
	"errors"
	"testing"

	domain "github.com/example/tarefa-api/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerModule(store domain.Store) *TaskModule {
	m := NewModule(Config{Driver: DriverMemory})
	m.store = store
	m.service = NewService(store, nil)
	return m
}

func TestHandlers_Envelope(t *testing.T) {
	m := newHandlerModule(domain.NewMemoryStore())
	ctx := context.Background()

	resp, err := m.createTask(ctx, CreateTaskRequest{Task: domain.Task{Title: "A"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, ErrCodeValidation, resp.Error)
	assert.Nil(t, resp.Task)

	resp, err = m.createTask(ctx, CreateTaskRequest{Task: domain.Task{Title: "A", Date: day}}, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Task)
	id := resp.Task.ID

	resp, err = m.getTask(ctx, GetTaskRequest{ID: id + 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, ErrCodeNotFound, resp.Error)

	resp, err = m.updateTask(ctx, UpdateTaskRequest{ID: id, Task: domain.Task{Title: "B", Date: day}}, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Task)
	assert.Equal(t, "B", resp.Task.Title)

	list, err := m.findByTitle(ctx, FindByTitleRequest{Title: "nope"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, list.Tasks)
	assert.Equal(t, 0, list.Total)

	list, err = m.findByStatus(ctx, FindByStatusRequest{Status: domain.StatusPending}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	list, err = m.findByDate(ctx, FindByDateRequest{Date: day}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	del, err := m.deleteTask(ctx, DeleteTaskRequest{ID: id}, nil)
	require.NoError(t, err)
	assert.True(t, del.Deleted)

	del, err = m.deleteTask(ctx, DeleteTaskRequest{ID: id}, nil)
	require.NoError(t, err)
	assert.False(t, del.Deleted)
	assert.Equal(t, ErrCodeNotFound, del.Error)

	list, err = m.listTasks(ctx, ListTasksRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestHandlers_StoreFailureIsServiceError(t *testing.T) {
	boom := errors.New("connection refused")
	m := newHandlerModule(failingStore{err: boom})
	ctx := context.Background()

	_, err := m.getTask(ctx, GetTaskRequest{ID: 1}, nil)
	assert.ErrorIs(t, err, boom)

	_, err = m.listTasks(ctx, ListTasksRequest{}, nil)
	assert.ErrorIs(t, err, boom)

	_, err = m.deleteTask(ctx, DeleteTaskRequest{ID: 1}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestDomainError(t *testing.T) {
	assert.ErrorIs(t, domainError(ErrCodeNotFound, ""), domain.ErrNotFound)
	assert.ErrorIs(t, domainError(ErrCodeValidation, ""), domain.ErrDateRequired)

	err := domainError("weird", "something")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "something")

	_, err = fromTaskResponse(TaskResponse{})
	assert.Error(t, err)
}
