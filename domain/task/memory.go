package task

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore provides in-memory task storage.
// IDs are assigned from a counter starting at 1 and never reused.
type MemoryStore struct {
	tasks  map[uint]Task
	nextID uint
	mu     sync.RWMutex
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory task store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks: make(map[uint]Task),
	}
}

// FindByID finds a task by ID.
func (s *MemoryStore) FindByID(_ context.Context, id uint) (*Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, found := s.tasks[id]
	if !found {
		return nil, ErrNotFound
	}
	return &t, nil
}

// FindAll returns all tasks ordered by ID.
func (s *MemoryStore) FindAll(ctx context.Context) ([]Task, error) {
	return s.FindBy(ctx, Filter{})
}

// FindBy returns the tasks matching f ordered by ID.
func (s *MemoryStore) FindBy(_ context.Context, f Filter) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.Match(t) {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Create stores a copy of t under a fresh ID and writes the ID back to t.
func (s *MemoryStore) Create(_ context.Context, t *Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t.ID = s.nextID
	t.Date = t.Date.UTC()
	s.tasks[t.ID] = *t
	return nil
}

// Update replaces the stored copy of t.
func (s *MemoryStore) Update(_ context.Context, t *Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.tasks[t.ID]; !found {
		return ErrNotFound
	}
	t.Date = t.Date.UTC()
	s.tasks[t.ID] = *t
	return nil
}

// Delete removes t by ID.
func (s *MemoryStore) Delete(_ context.Context, t *Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.tasks[t.ID]; !found {
		return ErrNotFound
	}
	delete(s.tasks, t.ID)
	return nil
}
