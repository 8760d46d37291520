package activity

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/tarefa-api/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Kinds of activity entries.
const (
	KindCreated = "task_created"
	KindUpdated = "task_updated"
	KindDeleted = "task_deleted"
)

// Entry is one recorded task lifecycle event.
type Entry struct {
	TaskID    uint      `json:"task_id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityModule keeps an in-memory log of task lifecycle events.
type ActivityModule struct {
	entries []Entry
	mu      sync.RWMutex
}

var _ mono.Module = (*ActivityModule)(nil)
var _ mono.EventConsumerModule = (*ActivityModule)(nil)

func NewModule() *ActivityModule {
	return &ActivityModule{
		entries: make([]Entry, 0),
	}
}

func (m *ActivityModule) Name() string {
	return "activity"
}

func (m *ActivityModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskUpdatedV1, m.handleTaskUpdated, m); err != nil {
		return fmt.Errorf("failed to register TaskUpdated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}

	log.Printf("[activity] Registered event consumers: TaskCreated, TaskUpdated, TaskDeleted")
	return nil
}

func (m *ActivityModule) handleTaskCreated(_ context.Context, event events.TaskEvent, _ *mono.Msg) error {
	log.Printf("[activity] Task created: %d - %s", event.TaskID, event.Title)
	m.record(event, KindCreated, fmt.Sprintf("Tarefa '%s' criada para %s", event.Title, event.Date.Format(time.DateOnly)))
	return nil
}

func (m *ActivityModule) handleTaskUpdated(_ context.Context, event events.TaskEvent, _ *mono.Msg) error {
	log.Printf("[activity] Task updated: %d - %s (%s)", event.TaskID, event.Title, event.Status)
	m.record(event, KindUpdated, fmt.Sprintf("Tarefa %d atualizada: %s", event.TaskID, event.Status))
	return nil
}

func (m *ActivityModule) handleTaskDeleted(_ context.Context, event events.TaskEvent, _ *mono.Msg) error {
	log.Printf("[activity] Task deleted: %d", event.TaskID)
	m.record(event, KindDeleted, fmt.Sprintf("Tarefa %d removida", event.TaskID))
	return nil
}

func (m *ActivityModule) record(event events.TaskEvent, kind, message string) {
	ts := event.OccurredAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, Entry{
		TaskID:    event.TaskID,
		Kind:      kind,
		Message:   message,
		Timestamp: ts,
	})
}

// Entries returns a copy of the recorded entries, oldest first.
func (m *ActivityModule) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Entry, len(m.entries))
	copy(result, m.entries)
	return result
}

func (m *ActivityModule) Start(_ context.Context) error {
	log.Println("[activity] Module started - listening for task events")
	return nil
}

func (m *ActivityModule) Stop(_ context.Context) error {
	log.Println("[activity] Module stopped")
	return nil
}
