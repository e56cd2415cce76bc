package ledger

import (
	"sort"
	"time"

	"household-ledger/internal/models"

	"github.com/shopspring/decimal"
)

const dashboardLimit = 5

// Dashboard is the home screen overview.
type Dashboard struct {
	Today             string            `json:"hoje"`
	TasksDueToday     []models.Task     `json:"tarefas_hoje"`
	TasksDueThisWeek  []models.Task     `json:"tarefas_semana"`
	NextEvents        []models.Event    `json:"proximos_eventos"`
	NextReminders     []models.Reminder `json:"proximos_lembretes"`
	TaskCounts        TaskCounts        `json:"contagem_tarefas"`
	CompletionPercent int               `json:"percentual_concluido"`
	Finance           Summary           `json:"financas"`
	Balance           decimal.Decimal   `json:"saldo_atual"`
}

// BuildDashboard gathers pending tasks due today and in the next seven days,
// the next five events and reminders, and the current month's finances.
func BuildDashboard(h models.Household, f models.Finance, today time.Time) Dashboard {
	d := Day(today)
	weekEnd := addDays(today, 7)

	dueToday := []models.Task{}
	dueWeek := []models.Task{}
	for _, t := range h.Tasks {
		if t.Status != models.TaskPending || t.DueDate == "" {
			continue
		}
		due := datePart(t.DueDate)
		if due == d {
			dueToday = append(dueToday, t)
		}
		if due >= d && due <= weekEnd {
			dueWeek = append(dueWeek, t)
		}
	}
	dueWeek = FilterTasks(dueWeek, TaskFilter{})

	events := []models.Event{}
	for _, e := range h.Events {
		if datePart(e.StartDate) >= d {
			events = append(events, e)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return datePart(events[i].StartDate) < datePart(events[j].StartDate)
	})
	if len(events) > dashboardLimit {
		events = events[:dashboardLimit]
	}

	reminders := []models.Reminder{}
	for _, r := range h.Reminders {
		if datePart(r.Date) >= d {
			reminders = append(reminders, r)
		}
	}
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminderKey(reminders[i]) < reminderKey(reminders[j])
	})
	if len(reminders) > dashboardLimit {
		reminders = reminders[:dashboardLimit]
	}

	return Dashboard{
		Today:             d,
		TasksDueToday:     dueToday,
		TasksDueThisWeek:  dueWeek,
		NextEvents:        events,
		NextReminders:     reminders,
		TaskCounts:        CountTasks(h.Tasks, today),
		CompletionPercent: CompletionPercent(h.Tasks),
		Finance:           Summarize(f, MonthOf(today), today),
		Balance:           OverallBalance(f.Transactions),
	}
}
