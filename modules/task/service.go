package task

import (
	"context"
	"log"
	"time"

	domain "github.com/example/tarefa-api/domain/task"
	"github.com/example/tarefa-api/events"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// Service implements the task operations on top of a domain.Store.
// It keeps no state between calls.
type Service struct {
	store    domain.Store
	eventBus mono.EventBus
}

var _ TaskPort = (*Service)(nil)

// NewService creates a task service. A nil eventBus disables event publishing.
func NewService(store domain.Store, eventBus mono.EventBus) *Service {
	return &Service{
		store:    store,
		eventBus: eventBus,
	}
}

// GetByID returns the task with the given ID or domain.ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id uint) (*domain.Task, error) {
	return s.store.FindByID(ctx, id)
}

// GetAll returns every stored task.
func (s *Service) GetAll(ctx context.Context) ([]domain.Task, error) {
	return s.store.FindAll(ctx)
}

// GetByTitle returns the tasks whose title equals title exactly.
func (s *Service) GetByTitle(ctx context.Context, title string) ([]domain.Task, error) {
	return s.store.FindBy(ctx, domain.ByTitle(title))
}

// GetByDate returns the tasks dated on the calendar day of date.
func (s *Service) GetByDate(ctx context.Context, date time.Time) ([]domain.Task, error) {
	return s.store.FindBy(ctx, domain.ByDay(date))
}

// GetByStatus returns the tasks in the given status.
func (s *Service) GetByStatus(ctx context.Context, status domain.Status) ([]domain.Task, error) {
	return s.store.FindBy(ctx, domain.ByStatus(status))
}

// Create persists payload as a new task. The ID on payload is ignored.
func (s *Service) Create(ctx context.Context, payload domain.Task) (*domain.Task, error) {
	if domain.IsUnset(payload.Date) {
		return nil, domain.ErrDateRequired
	}

	t := &domain.Task{
		Title:       payload.Title,
		Description: payload.Description,
		Date:        payload.Date,
		Status:      payload.Status,
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}

	s.publish("TaskCreated", t, events.PublishTaskCreated)
	return t, nil
}

// Update overwrites every mutable field of the task with the payload values.
// Fields left at their zero value in payload are written as such.
func (s *Service) Update(ctx context.Context, id uint, payload domain.Task) (*domain.Task, error) {
	t, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if domain.IsUnset(payload.Date) {
		return nil, domain.ErrDateRequired
	}

	t.Title = payload.Title
	t.Description = payload.Description
	t.Date = payload.Date
	t.Status = payload.Status

	if err := s.store.Update(ctx, t); err != nil {
		return nil, err
	}

	s.publish("TaskUpdated", t, events.PublishTaskUpdated)
	return t, nil
}

// Delete removes the task with the given ID.
func (s *Service) Delete(ctx context.Context, id uint) error {
	t, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, t); err != nil {
		return err
	}

	s.publish("TaskDeleted", t, events.PublishTaskDeleted)
	return nil
}

// publish emits a lifecycle event. Failures are logged and never returned.
func (s *Service) publish(name string, t *domain.Task, emit func(mono.EventBus, events.TaskEvent) error) {
	if s.eventBus == nil {
		return
	}

	event := events.TaskEvent{
		EventID:    uuid.NewString(),
		TaskID:     t.ID,
		Title:      t.Title,
		Status:     t.Status.String(),
		Date:       t.Date,
		OccurredAt: time.Now().UTC(),
	}
	if err := emit(s.eventBus, event); err != nil {
		log.Printf("[task] Warning: failed to publish %s event for task %d: %v", name, t.ID, err)
	}
}
