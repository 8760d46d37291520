package task

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormStore persists tasks in a relational database through GORM.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// NewGormStore creates a new GORM-backed task store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the tarefas table.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&Task{})
}

// FindByID retrieves a task by its primary key.
func (s *GormStore) FindByID(ctx context.Context, id uint) (*Task, error) {
	var t Task
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

// FindAll retrieves every task ordered by ID.
func (s *GormStore) FindAll(ctx context.Context) ([]Task, error) {
	tasks := make([]Task, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// FindBy retrieves the tasks matching every predicate set on f.
func (s *GormStore) FindBy(ctx context.Context, f Filter) ([]Task, error) {
	query := s.db.WithContext(ctx).Model(&Task{})
	if f.Title != nil {
		query = query.Where("titulo = ?", *f.Title)
	}
	if f.Day != nil {
		start, end := DayWindow(*f.Day)
		query = query.Where("data >= ? AND data < ?", start, end)
	}
	if f.Status != nil {
		query = query.Where("status = ?", *f.Status)
	}

	tasks := make([]Task, 0)
	if err := query.Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to filter tasks: %w", err)
	}
	return tasks, nil
}

// Create inserts t and fills in its assigned ID.
func (s *GormStore) Create(ctx context.Context, t *Task) error {
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// Update writes every column of t, zero values included.
// A row that no longer exists is reported as ErrNotFound, never re-inserted.
func (s *GormStore) Update(ctx context.Context, t *Task) error {
	result := s.db.WithContext(ctx).Select("*").Save(t)
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes t permanently.
func (s *GormStore) Delete(ctx context.Context, t *Task) error {
	result := s.db.WithContext(ctx).Delete(&Task{}, t.ID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
