package task

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/example/tarefa-api/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore implements domain.Store and fails every call with err.
type failingStore struct {
	err error
}

func (s failingStore) FindByID(context.Context, uint) (*domain.Task, error) { return nil, s.err }
func (s failingStore) FindAll(context.Context) ([]domain.Task, error)        { return nil, s.err }
func (s failingStore) FindBy(context.Context, domain.Filter) ([]domain.Task, error) {
	return nil, s.err
}
func (s failingStore) Create(context.Context, *domain.Task) error { return s.err }
func (s failingStore) Update(context.Context, *domain.Task) error { return s.err }
func (s failingStore) Delete(context.Context, *domain.Task) error { return s.err }

var day = time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *domain.MemoryStore) {
	t.Helper()
	store := domain.NewMemoryStore()
	return NewService(store, nil), store
}

func ids(tasks []domain.Task) []uint {
	out := make([]uint, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestService_CreateThenGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	payload := domain.Task{
		ID:          99,
		Title:       "Comprar pão",
		Description: "Padaria da esquina",
		Date:        day,
		Status:      domain.StatusDone,
	}

	created, err := svc.Create(ctx, payload)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, uint(99), created.ID, "payload ID must be ignored")

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)

	want := payload
	want.ID = created.ID
	assert.Equal(t, want.ID, found.ID)
	assert.Equal(t, want.Title, found.Title)
	assert.Equal(t, want.Description, found.Description)
	assert.True(t, want.Date.Equal(found.Date))
	assert.Equal(t, want.Status, found.Status)
}

func TestService_CreateRejectsUnsetDate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Task{Title: "sem data", Date: domain.UnsetDate})
	assert.ErrorIs(t, err, domain.ErrDateRequired)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "nothing must be persisted")
}

func TestService_GetByIDNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Task{Title: "A", Date: day})
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("non-existent id wins over validation", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Update(ctx, 7, domain.Task{Date: day})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = svc.Update(ctx, 7, domain.Task{Date: domain.UnsetDate})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unset date leaves record unchanged", func(t *testing.T) {
		svc, _ := newTestService(t)
		created, err := svc.Create(ctx, domain.Task{Title: "A", Description: "d", Date: day, Status: domain.StatusDone})
		require.NoError(t, err)

		_, err = svc.Update(ctx, created.ID, domain.Task{Title: "B", Date: domain.UnsetDate})
		assert.ErrorIs(t, err, domain.ErrDateRequired)

		found, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "A", found.Title)
		assert.Equal(t, "d", found.Description)
		assert.Equal(t, domain.StatusDone, found.Status)
	})

	t.Run("full overwrite", func(t *testing.T) {
		svc, _ := newTestService(t)
		created, err := svc.Create(ctx, domain.Task{Title: "A", Description: "keep?", Date: day, Status: domain.StatusDone})
		require.NoError(t, err)

		newDate := day.AddDate(0, 1, 0)
		updated, err := svc.Update(ctx, created.ID, domain.Task{ID: 500, Title: "B", Date: newDate})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)

		found, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "B", found.Title)
		assert.Equal(t, "", found.Description, "omitted fields are not preserved")
		assert.True(t, newDate.Equal(found.Date))
		assert.Equal(t, domain.StatusPending, found.Status)
	})
}

func TestService_Delete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, domain.Task{Title: "A", Date: day})
	require.NoError(t, err)
	b, err := svc.Create(ctx, domain.Task{Title: "B", Date: day})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, a.ID), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1000), domain.ErrNotFound)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{b.ID}, ids(all))
}

func TestService_Filters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	x, err := svc.Create(ctx, domain.Task{Title: "X", Date: day})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.Task{Title: "Xylophone", Date: day.AddDate(0, 0, 1)})
	require.NoError(t, err)
	empty, err := svc.Create(ctx, domain.Task{Title: "", Date: day.Add(9 * time.Hour)})
	require.NoError(t, err)

	byTitle, err := svc.GetByTitle(ctx, "X")
	require.NoError(t, err)
	assert.Equal(t, []uint{x.ID}, ids(byTitle))

	byEmpty, err := svc.GetByTitle(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []uint{empty.ID}, ids(byEmpty))

	midnight := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	byDate, err := svc.GetByDate(ctx, midnight)
	require.NoError(t, err)
	assert.Equal(t, []uint{x.ID, empty.ID}, ids(byDate))
}

func TestService_Scenario(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seed := []domain.Task{
		{Title: "A", Date: day, Status: domain.StatusDone},
		{Title: "B", Date: day, Status: domain.StatusPending},
		{Title: "A", Date: day, Status: domain.StatusPending},
	}
	for _, task := range seed {
		_, err := svc.Create(ctx, task)
		require.NoError(t, err)
	}

	byTitle, err := svc.GetByTitle(ctx, "A")
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 3}, ids(byTitle))

	pending, err := svc.GetByStatus(ctx, domain.StatusPending)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{2, 3}, ids(pending))

	require.NoError(t, svc.Delete(ctx, 2))
	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 3}, ids(all))
}

func TestService_StoreFailurePropagates(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewService(failingStore{err: boom}, nil)
	ctx := context.Background()

	_, err := svc.GetAll(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.Create(ctx, domain.Task{Date: day})
	assert.ErrorIs(t, err, boom)
	_, err = svc.Update(ctx, 1, domain.Task{Date: day})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, svc.Delete(ctx, 1), boom)
}
