package ledger

import (
	"math"
	"sort"
	"time"

	"household-ledger/internal/models"
)

// TaskFilter fields match exactly; "" or "all" disables a field.
type TaskFilter struct {
	Status   string `form:"status"`
	Priority string `form:"prioridade"`
	Category string `form:"categoria"`
}

// FilterTasks returns the matching tasks ordered by due date, undated tasks
// last. Ties keep insertion order.
func FilterTasks(tasks []models.Task, f TaskFilter) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !isAll(f.Status) && string(t.Status) != f.Status {
			continue
		}
		if !isAll(f.Priority) && string(t.Priority) != f.Priority {
			continue
		}
		if !isAll(f.Category) && t.Category != f.Category {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := datePart(out[i].DueDate), datePart(out[j].DueDate)
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a < b
	})
	return out
}

// IsOverdue reports a pending task whose due date is before today.
func IsOverdue(t models.Task, today time.Time) bool {
	if t.Status != models.TaskPending || t.DueDate == "" {
		return false
	}
	return datePart(t.DueDate) < Day(today)
}

type TaskCounts struct {
	Pending int `json:"pendentes"`
	Done    int `json:"concluidas"`
	Overdue int `json:"atrasadas"`
	Total   int `json:"total"`
}

func CountTasks(tasks []models.Task, today time.Time) TaskCounts {
	c := TaskCounts{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.TaskDone:
			c.Done++
		case models.TaskPending:
			c.Pending++
		}
		if IsOverdue(t, today) {
			c.Overdue++
		}
	}
	return c
}

// CompletionPercent is round(done/total*100), 0 without tasks.
func CompletionPercent(tasks []models.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Status == models.TaskDone {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(tasks)) * 100))
}

// TaskCategories lists the distinct non-empty categories in first-seen order.
func TaskCategories(tasks []models.Task) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, t := range tasks {
		if t.Category == "" || seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		out = append(out, t.Category)
	}
	return out
}

// TasksDueOn returns the tasks due on date.
func TasksDueOn(tasks []models.Task, date string) []models.Task {
	out := []models.Task{}
	for _, t := range tasks {
		if t.DueDate != "" && datePart(t.DueDate) == date {
			out = append(out, t)
		}
	}
	return out
}
