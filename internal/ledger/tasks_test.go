package ledger

import (
	"testing"
	"time"

	"household-ledger/internal/models"

	"github.com/stretchr/testify/assert"
)

// 2024-03-15 is a Friday
var today = time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

func task(id string, status models.TaskStatus, prio models.Priority, cat, due string) models.Task {
	return models.Task{ID: id, Title: id, Status: status, Priority: prio, Category: cat, DueDate: due}
}

func ids[T any](xs []T, id func(T) string) []string {
	out := []string{}
	for _, x := range xs {
		out = append(out, id(x))
	}
	return out
}

func taskIDs(ts []models.Task) []string { return ids(ts, func(t models.Task) string { return t.ID }) }

func TestFilterTasks_SortsByDueDateUndatedLast(t *testing.T) {
	tasks := []models.Task{
		task("a", models.TaskPending, models.PriorityLow, "", ""),
		task("b", models.TaskPending, models.PriorityLow, "", "2024-03-20"),
		task("c", models.TaskDone, models.PriorityLow, "", "2024-03-01"),
		task("d", models.TaskPending, models.PriorityLow, "", ""),
		task("e", models.TaskPending, models.PriorityLow, "", "2024-03-20"),
	}

	got := FilterTasks(tasks, TaskFilter{Status: "all"})
	assert.Equal(t, []string{"c", "b", "e", "a", "d"}, taskIDs(got))
}

func TestFilterTasks_ExactMatch(t *testing.T) {
	tasks := []models.Task{
		task("a", models.TaskPending, models.PriorityHigh, "casa", ""),
		task("b", models.TaskDone, models.PriorityHigh, "casa", ""),
		task("c", models.TaskPending, models.PriorityLow, "Casa", ""),
		task("d", models.TaskPending, models.PriorityHigh, "trabalho", ""),
	}

	got := FilterTasks(tasks, TaskFilter{Status: "pendente", Priority: "alta", Category: "casa"})
	assert.Equal(t, []string{"a"}, taskIDs(got))

	got = FilterTasks(tasks, TaskFilter{Category: "casa"})
	assert.Equal(t, []string{"a", "b"}, taskIDs(got))
}

func TestIsOverdue(t *testing.T) {
	yesterday := "2024-03-14"

	assert.True(t, IsOverdue(task("a", models.TaskPending, "", "", yesterday), today))
	assert.False(t, IsOverdue(task("a", models.TaskDone, "", "", yesterday), today))
	assert.False(t, IsOverdue(task("a", models.TaskPending, "", "", "2024-03-15"), today))
	assert.False(t, IsOverdue(task("a", models.TaskPending, "", "", ""), today))
}

func TestCompletionPercent(t *testing.T) {
	assert.Equal(t, 0, CompletionPercent(nil))

	tasks := []models.Task{
		task("a", models.TaskDone, "", "", ""),
		task("b", models.TaskPending, "", "", ""),
		task("c", models.TaskPending, "", "", ""),
	}
	assert.Equal(t, 33, CompletionPercent(tasks))

	tasks[1].Status = models.TaskDone
	assert.Equal(t, 67, CompletionPercent(tasks))
}

func TestCountTasks(t *testing.T) {
	tasks := []models.Task{
		task("a", models.TaskDone, "", "", "2024-03-01"),
		task("b", models.TaskPending, "", "", "2024-03-01"),
		task("c", models.TaskPending, "", "", "2024-04-01"),
	}
	assert.Equal(t, TaskCounts{Pending: 2, Done: 1, Overdue: 1, Total: 3}, CountTasks(tasks, today))
}

func TestTaskCategoriesAndDueOn(t *testing.T) {
	tasks := []models.Task{
		task("a", models.TaskPending, "", "casa", "2024-03-15"),
		task("b", models.TaskPending, "", "", "2024-03-16"),
		task("c", models.TaskPending, "", "mercado", "2024-03-15"),
		task("d", models.TaskPending, "", "casa", ""),
	}
	assert.Equal(t, []string{"casa", "mercado"}, TaskCategories(tasks))
	assert.Equal(t, []string{"a", "c"}, taskIDs(TasksDueOn(tasks, "2024-03-15")))
}

func TestItemsForListAndProgress(t *testing.T) {
	items := []models.ShoppingItem{
		{ID: "1", ListID: "l1", Purchased: true},
		{ID: "2", ListID: "l2"},
		{ID: "3", ListID: "l1"},
	}
	got := ItemsForList(items, "l1")
	assert.Equal(t, []string{"1", "3"}, ids(got, func(it models.ShoppingItem) string { return it.ID }))
	assert.Equal(t, ListProgress{Purchased: 1, Total: 2}, ProgressOf(items, "l1"))
	assert.Empty(t, ItemsForList(items, "missing"))
}
