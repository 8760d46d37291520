package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	domain "github.com/example/tarefa-api/domain/task"
)

// Accepted date layouts, most specific first. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// parseDate parses the date formats clients send for tasks.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// Date is a task date as it appears in request bodies.
// null and "" decode to domain.UnsetDate.
type Date struct {
	time.Time
}

// UnmarshalJSON decodes any of the accepted date layouts.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Time = domain.UnsetDate
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if raw == "" {
		d.Time = domain.UnsetDate
		return nil
	}

	parsed, err := parseDate(raw)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// TaskRequest is the HTTP body for creating and updating a task.
// An id in the body is not part of it and is dropped.
type TaskRequest struct {
	Title       string        `json:"titulo"`
	Description string        `json:"descricao"`
	Date        Date          `json:"data"`
	Status      domain.Status `json:"status"`
}

// toDomain converts the request into a task payload.
func (r TaskRequest) toDomain() domain.Task {
	return domain.Task{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date.Time,
		Status:      r.Status,
	}
}

// dateQuery binds GET /tarefa/ObterPorData.
type dateQuery struct {
	Data string `query:"data" validate:"required"`
}

// statusQuery binds GET /tarefa/ObterPorStatus.
type statusQuery struct {
	Status string `query:"status" validate:"required"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error string `json:"erro"`
}
