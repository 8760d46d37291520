package activity

import (
	"context"
	"testing"
	"time"

	"github.com/example/tarefa-api/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityModule_RecordsEvents(t *testing.T) {
	m := NewModule()
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, m.handleTaskCreated(ctx, events.TaskEvent{TaskID: 1, Title: "A", Date: at, OccurredAt: at}, nil))
	require.NoError(t, m.handleTaskUpdated(ctx, events.TaskEvent{TaskID: 1, Title: "A", Status: "Finalizado", OccurredAt: at}, nil))
	require.NoError(t, m.handleTaskDeleted(ctx, events.TaskEvent{TaskID: 1}, nil))

	entries := m.Entries()
	require.Len(t, entries, 3)

	assert.Equal(t, KindCreated, entries[0].Kind)
	assert.Equal(t, "Tarefa 'A' criada para 2024-05-01", entries[0].Message)
	assert.Equal(t, at, entries[0].Timestamp)

	assert.Equal(t, KindUpdated, entries[1].Kind)
	assert.Contains(t, entries[1].Message, "Finalizado")

	assert.Equal(t, KindDeleted, entries[2].Kind)
	assert.Equal(t, uint(1), entries[2].TaskID)
	assert.False(t, entries[2].Timestamp.IsZero(), "missing OccurredAt falls back to now")
}

func TestActivityModule_EntriesIsCopy(t *testing.T) {
	m := NewModule()
	require.NoError(t, m.handleTaskDeleted(context.Background(), events.TaskEvent{TaskID: 9}, nil))

	entries := m.Entries()
	entries[0].TaskID = 100
	assert.Equal(t, uint(9), m.Entries()[0].TaskID)
	assert.Equal(t, "activity", m.Name())
}
