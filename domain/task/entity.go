package task

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Status is the closed set of states a task can be in.
// It carries no transition rules.
type Status uint8

const (
	StatusPending Status = iota
	StatusDone
)

var statusNames = map[Status]string{
	StatusPending: "Pendente",
	StatusDone:    "Finalizado",
}

// String returns the wire name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is a member of the enum.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseStatus accepts either the wire name or the integral value.
func ParseStatus(v string) (Status, error) {
	for s, name := range statusNames {
		if name == v {
			return s, nil
		}
	}
	if n, err := strconv.ParseUint(v, 10, 8); err == nil && Status(n).Valid() {
		return Status(n), nil
	}
	return 0, fmt.Errorf("unknown task status %q", v)
}

// MarshalJSON encodes the status by name.
func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown task status %d", s)
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status name or its integral value.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParseStatus(name)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("task status must be a string or integer: %w", err)
	}
	if n < 0 || n > math.MaxUint8 || !Status(n).Valid() {
		return fmt.Errorf("unknown task status %d", n)
	}
	*s = Status(n)
	return nil
}

// UnsetDate is the sentinel for a missing task date: the zero time.Time,
// 0001-01-01T00:00:00Z. No legitimate task date equals it.
var UnsetDate = time.Time{}

// IsUnset reports whether d is the UnsetDate sentinel.
func IsUnset(d time.Time) bool {
	return d.Equal(UnsetDate)
}

// DayWindow returns the UTC calendar day containing d's calendar date as a
// half-open interval [start, end). Time of day and zone offset of d are ignored.
func DayWindow(d time.Time) (start, end time.Time) {
	y, m, day := d.Date()
	start = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// Task is the single persisted entity of the organizer.
type Task struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:titulo;type:text;index" json:"titulo"`
	Description string    `gorm:"column:descricao;type:text" json:"descricao"`
	Date        time.Time `gorm:"column:data;not null;index" json:"data"`
	Status      Status    `gorm:"column:status;not null;default:0;index" json:"status"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tarefas"
}

// BeforeSave normalizes the date to UTC so day-window queries compare like with like.
func (t *Task) BeforeSave(_ *gorm.DB) error {
	t.Date = t.Date.UTC()
	return nil
}
