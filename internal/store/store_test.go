package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"household-ledger/internal/models"
	"household-ledger/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T) (*Store, *storage.MemoryBackend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	s := New(backend,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
	)
	require.NoError(t, s.Open(context.Background()))
	return s, backend
}

func persistedHousehold(t *testing.T, b *storage.MemoryBackend) models.HouseholdSnapshot {
	t.Helper()
	var snap models.HouseholdSnapshot
	require.NoError(t, json.Unmarshal(b.Raw("cia-app-store"), &snap))
	return snap
}

func TestNew_DefaultState(t *testing.T) {
	s, b := newTestStore(t)

	assert.Empty(t, s.Household().Tasks)
	assert.Len(t, s.Finance().Categories, 10)
	assert.Equal(t, models.ThemeLight, s.Theme())
	assert.Equal(t, 0, b.Puts, "opening must not write")
}

func TestAddTask_PersistsSnapshot(t *testing.T) {
	ctx := context.Background()
	s, b := newTestStore(t)

	id, err := s.AddTask(ctx, models.Task{Title: "Pay rent", DueDate: "2024-03-20"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)

	tasks := s.Household().Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, models.TaskPending, tasks[0].Status)
	assert.Equal(t, models.PriorityMedium, tasks[0].Priority)

	snap := persistedHousehold(t, b)
	assert.Equal(t, 1, snap.Version)
	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, "Pay rent", snap.Tasks[0].Title)
}

func TestAdd_BlankRequiredFieldIsSkipped(t *testing.T) {
	ctx := context.Background()
	s, b := newTestStore(t)

	cases := []func() (string, error){
		func() (string, error) { return s.AddTask(ctx, models.Task{Title: "   "}) },
		func() (string, error) { return s.AddList(ctx, "") },
		func() (string, error) { return s.AddItem(ctx, models.ShoppingItem{ListID: "x"}) },
		func() (string, error) { return s.AddEvent(ctx, models.Event{Title: "Party"}) },
		func() (string, error) { return s.AddReminder(ctx, models.Reminder{Title: "Call"}) },
		func() (string, error) {
			return s.AddTransaction(ctx, models.Transaction{Type: models.Expense})
		},
	}
	for i, add := range cases {
		id, err := add()
		assert.NoError(t, err, "case %d", i)
		assert.Empty(t, id, "case %d", i)
	}
	assert.Equal(t, 0, b.Puts)
}

func TestUpdateAndDelete_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	s, b := newTestStore(t)

	title := "x"
	require.NoError(t, s.UpdateTask(ctx, "missing", models.TaskPatch{Title: &title}))
	require.NoError(t, s.DeleteTask(ctx, "missing"))
	require.NoError(t, s.DeleteList(ctx, "missing"))
	require.NoError(t, s.ToggleItemPurchased(ctx, "missing"))
	require.NoError(t, s.DeleteGoal(ctx, "missing"))
	assert.Equal(t, 0, b.Puts)
}

func TestUpdateTask_MergesPatch(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	id, err := s.AddTask(ctx, models.Task{Title: "Clean", Category: "casa", Priority: models.PriorityLow})
	require.NoError(t, err)

	high := models.PriorityHigh
	require.NoError(t, s.UpdateTask(ctx, id, models.TaskPatch{Priority: &high}))
	require.NoError(t, s.ToggleTask(ctx, id))

	got := s.Household().Tasks[0]
	assert.Equal(t, "Clean", got.Title)
	assert.Equal(t, "casa", got.Category)
	assert.Equal(t, models.PriorityHigh, got.Priority)
	assert.Equal(t, models.TaskDone, got.Status)

	require.NoError(t, s.DeleteTask(ctx, id))
	assert.Empty(t, s.Household().Tasks)
}

func TestPersistFailure_LeavesMemoryUntouched(t *testing.T) {
	ctx := context.Background()
	s, b := newTestStore(t)

	id, err := s.AddTask(ctx, models.Task{Title: "Keep"})
	require.NoError(t, err)

	boom := errors.New("quota exceeded")
	b.SetFailPut(boom)

	_, err = s.AddTask(ctx, models.Task{Title: "Lost"})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.DeleteTask(ctx, id), boom)
	_, err = s.ToggleTheme(ctx)
	assert.ErrorIs(t, err, boom)

	tasks := s.Household().Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, "Keep", tasks[0].Title)
	assert.Equal(t, models.ThemeLight, s.Theme())
}

func TestOpen_RestoresPersistedState(t *testing.T) {
	ctx := context.Background()
	s, b := newTestStore(t)

	_, err := s.AddTask(ctx, models.Task{Title: "Persisted"})
	require.NoError(t, err)
	_, err = s.ToggleTheme(ctx)
	require.NoError(t, err)

	reopened := New(b)
	require.NoError(t, reopened.Open(ctx))
	assert.Len(t, reopened.Household().Tasks, 1)
	assert.Equal(t, models.ThemeDark, reopened.Theme())
	assert.Len(t, reopened.Finance().Categories, 10)
}

func TestOpen_CorruptDomainResetsOnlyThatDomain(t *testing.T) {
	ctx := context.Background()
	s, b := newTestStore(t)

	_, err := s.AddTask(ctx, models.Task{Title: "Survives"})
	require.NoError(t, err)
	require.NoError(t, s.SetTheme(ctx, models.ThemeDark))
	b.SetRaw("finance-storage", []byte("{not json"))

	reopened := New(b)
	require.NoError(t, reopened.Open(ctx))
	assert.Len(t, reopened.Household().Tasks, 1)
	assert.Equal(t, models.ThemeDark, reopened.Theme())
	assert.Equal(t, models.DefaultCategories(), reopened.Finance().Categories)
	assert.Empty(t, reopened.Finance().Transactions)
}

func TestClose_RejectsMutations(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.AddTask(context.Background(), models.Task{Title: "late"})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	s := New(storage.NewMemoryBackend())
	require.NoError(t, s.Open(ctx))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.AddTask(ctx, models.Task{Title: fmt.Sprintf("task %d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	tasks := s.Household().Tasks
	assert.Len(t, tasks, 50)
	seen := make(map[string]bool)
	for _, task := range tasks {
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestTheme(t *testing.T) {
	ctx := context.Background()
	s, b := newTestStore(t)

	require.NoError(t, s.SetTheme(ctx, "sepia"))
	assert.Equal(t, models.ThemeLight, s.Theme())
	assert.Equal(t, 0, b.Puts)

	next, err := s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, next)

	var snap models.ThemeSnapshot
	require.NoError(t, json.Unmarshal(b.Raw("theme-storage"), &snap))
	assert.Equal(t, models.ThemeDark, snap.Theme)
}
