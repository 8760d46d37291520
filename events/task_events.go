package events

import (
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TaskEvent is the payload shared by every task lifecycle event.
type TaskEvent struct {
	EventID    string    `json:"event_id"`
	TaskID     uint      `json:"task_id"`
	Title      string    `json:"titulo"`
	Status     string    `json:"status"`
	Date       time.Time `json:"data"`
	OccurredAt time.Time `json:"occurred_at"`
}

// TaskCreatedV1 is emitted after a task is persisted.
// Subject: events.task.v1.task-created
var TaskCreatedV1 = helper.EventDefinition[TaskEvent](
	"task", "TaskCreated", "v1",
)

// TaskUpdatedV1 is emitted after a task is overwritten.
// Subject: events.task.v1.task-updated
var TaskUpdatedV1 = helper.EventDefinition[TaskEvent](
	"task", "TaskUpdated", "v1",
)

// TaskDeletedV1 is emitted after a task is removed.
// Subject: events.task.v1.task-deleted
var TaskDeletedV1 = helper.EventDefinition[TaskEvent](
	"task", "TaskDeleted", "v1",
)

// PublishTaskCreated publishes e as TaskCreatedV1.
func PublishTaskCreated(bus mono.EventBus, e TaskEvent) error {
	return TaskCreatedV1.Publish(bus, e, nil)
}

// PublishTaskUpdated publishes e as TaskUpdatedV1.
func PublishTaskUpdated(bus mono.EventBus, e TaskEvent) error {
	return TaskUpdatedV1.Publish(bus, e, nil)
}

// PublishTaskDeleted publishes e as TaskDeletedV1.
func PublishTaskDeleted(bus mono.EventBus, e TaskEvent) error {
	return TaskDeletedV1.Publish(bus, e, nil)
}
