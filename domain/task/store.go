package task

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no task has the requested ID.
	ErrNotFound = errors.New("task not found")
	// ErrDateRequired is returned when a payload carries the UnsetDate sentinel.
	ErrDateRequired = errors.New("task date is required")
)

// Filter is a conjunction of optional predicates over Task fields.
// A nil field does not constrain the result.
type Filter struct {
	Title  *string
	Day    *time.Time
	Status *Status
}

// ByTitle matches tasks whose title is exactly title.
func ByTitle(title string) Filter {
	return Filter{Title: &title}
}

// ByDay matches tasks whose date falls on the calendar day of d.
func ByDay(d time.Time) Filter {
	return Filter{Day: &d}
}

// ByStatus matches tasks in status s.
func ByStatus(s Status) Filter {
	return Filter{Status: &s}
}

// Match evaluates the filter against t.
func (f Filter) Match(t Task) bool {
	if f.Title != nil && t.Title != *f.Title {
		return false
	}
	if f.Day != nil {
		start, end := DayWindow(*f.Day)
		d := t.Date.UTC()
		if d.Before(start) || !d.Before(end) {
			return false
		}
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	return true
}

// Store is the data-access capability the task service depends on.
// Every write is committed before it returns.
type Store interface {
	FindByID(ctx context.Context, id uint) (*Task, error)
	FindAll(ctx context.Context) ([]Task, error)
	FindBy(ctx context.Context, f Filter) ([]Task, error)
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, t *Task) error
}
