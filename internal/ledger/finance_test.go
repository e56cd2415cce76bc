package ledger

import (
	"testing"

	"household-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func tx(id string, typ models.EntryType, amount, cat, date string) models.Transaction {
	return models.Transaction{ID: id, Description: id, Type: typ, Amount: d(amount), CategoryID: cat, Date: date}
}

var march = Window{Year: 2024, Month: 3}

func TestSummarize_BalanceAndSavingsRate(t *testing.T) {
	f := models.Finance{
		Categories: models.DefaultCategories(),
		Transactions: []models.Transaction{
			tx("in", models.Income, "1000", "cat-salario", "2024-03-05"),
			tx("out", models.Expense, "400", "cat-contas", "2024-03-06"),
			tx("feb", models.Expense, "999", "cat-contas", "2024-02-28"),
		},
	}
	s := Summarize(f, march, today)

	assert.True(t, d("1000").Equal(s.Income))
	assert.True(t, d("400").Equal(s.Expense))
	assert.True(t, d("600").Equal(s.Balance))
	assert.True(t, d("60").Equal(s.SavingsRate), s.SavingsRate.String())
	assert.Empty(t, s.Alerts)
}

func TestSavingsRate_ZeroIncome(t *testing.T) {
	assert.True(t, SavingsRate(decimal.Zero, d("-250")).IsZero())

	f := models.Finance{Transactions: []models.Transaction{tx("out", models.Expense, "250", "", "2024-03-01")}}
	s := Summarize(f, march, today)
	assert.True(t, s.SavingsRate.IsZero())
}

func TestAlerts_HighSpendingBoundary(t *testing.T) {
	income := d("1000")

	alerts := Alerts(nil, income, d("800"), today)
	assert.Empty(t, alerts, "exactly 80 percent does not alert")

	alerts = Alerts(nil, income, d("800.01"), today)
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertHighSpending, alerts[0].Kind)
}

func TestAlerts_NegativeBalance(t *testing.T) {
	alerts := Alerts(nil, d("100"), d("100"), today)
	assert.Len(t, alerts, 1, "balance zero only trips the spending alert")
	assert.Equal(t, AlertHighSpending, alerts[0].Kind)

	alerts = Alerts(nil, d("100"), d("100.01"), today)
	kinds := []AlertKind{}
	for _, a := range alerts {
		kinds = append(kinds, a.Kind)
	}
	assert.Equal(t, []AlertKind{AlertHighSpending, AlertNegativeBalance}, kinds)

	alerts = Alerts(nil, decimal.Zero, decimal.Zero, today)
	assert.Empty(t, alerts)
}

func TestAlerts_GoalDueSoon(t *testing.T) {
	goal := models.Goal{ID: "g1", Title: "Viagem", Status: models.GoalActive, Deadline: "2024-03-20"}

	alerts := Alerts([]models.Goal{goal}, decimal.Zero, decimal.Zero, today)
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertGoalDueSoon, alerts[0].Kind)
	assert.Equal(t, 5, alerts[0].DaysLeft)
	assert.Equal(t, "g1", alerts[0].GoalID)
	assert.Contains(t, alerts[0].Message, "5 dias")

	paused := goal
	paused.Status = models.GoalPaused
	assert.Empty(t, Alerts([]models.Goal{paused}, decimal.Zero, decimal.Zero, today))

	far := goal
	far.Deadline = "2024-03-23"
	assert.Empty(t, Alerts([]models.Goal{far}, decimal.Zero, decimal.Zero, today))

	edge := goal
	edge.Deadline = "2024-03-22"
	assert.Len(t, Alerts([]models.Goal{edge}, decimal.Zero, decimal.Zero, today), 1)

	due := goal
	due.Deadline = "2024-03-15"
	assert.Empty(t, Alerts([]models.Goal{due}, decimal.Zero, decimal.Zero, today))
}

func TestExpenseByCategory_FirstOccurrenceOrder(t *testing.T) {
	f := models.Finance{
		Categories: models.DefaultCategories(),
		Transactions: []models.Transaction{
			tx("1", models.Expense, "10", "cat-lazer", "2024-03-01"),
			tx("2", models.Expense, "500", "cat-casa", "2024-03-02"),
			tx("3", models.Income, "900", "cat-salario", "2024-03-02"),
			tx("4", models.Expense, "15.5", "cat-lazer", "2024-03-03"),
			tx("5", models.Expense, "7", "deleted-category", "2024-03-04"),
			tx("6", models.Expense, "3", "", "2024-03-05"),
			tx("7", models.Expense, "1000", "cat-saude", "2024-04-01"),
		},
	}
	got := ExpenseByCategory(f, march)

	require.Len(t, got, 3)
	assert.Equal(t, "Lazer", got[0].Name)
	assert.Equal(t, "#8b5cf6", got[0].Color)
	assert.True(t, d("25.5").Equal(got[0].Total))
	assert.Equal(t, "Casa", got[1].Name)
	assert.Equal(t, "Sem categoria", got[2].Name)
	assert.True(t, d("10").Equal(got[2].Total))
}

func TestRecentTransactions(t *testing.T) {
	txs := []models.Transaction{
		tx("a", models.Expense, "1", "", "2024-01-01"),
		tx("b", models.Expense, "1", "", "2024-03-10"),
		tx("c", models.Expense, "1", "", "2024-02-01"),
		tx("d", models.Expense, "1", "", "2024-03-12"),
		tx("e", models.Expense, "1", "", "2023-12-01"),
		tx("f", models.Expense, "1", "", "2024-03-01"),
	}
	got := RecentTransactions(txs, 5)
	assert.Equal(t, []string{"d", "b", "f", "c", "a"}, ids(got, func(t models.Transaction) string { return t.ID }))
}

func TestGoalProgressAndBalance(t *testing.T) {
	assert.True(t, GoalProgress(models.Goal{Target: decimal.Zero, Current: d("10")}).IsZero())
	assert.True(t, d("25").Equal(GoalProgress(models.Goal{Target: d("400"), Current: d("100")})))

	txs := []models.Transaction{
		tx("a", models.Income, "100", "", "2023-01-01"),
		tx("b", models.Expense, "30.25", "", "2024-03-01"),
	}
	assert.True(t, d("69.75").Equal(OverallBalance(txs)))
	assert.Len(t, TransactionsInPeriod(txs, "2024-01-01", "2024-12-31"), 1)
	assert.Len(t, TransactionsByCategory(txs, ""), 2)
	assert.Len(t, CategoriesByType(models.DefaultCategories(), models.Income), 4)
	assert.Len(t, CategoriesByType(models.DefaultCategories(), models.Expense), 6)
}

func TestDailyTotals(t *testing.T) {
	txs := []models.Transaction{
		tx("b", models.Expense, "30", "cat-mercado", "2024-03-10"),
		tx("a", models.Income, "100", "cat-salario", "2024-03-02"),
		tx("c", models.Expense, "20.50", "cat-mercado", "2024-03-10T09:00:00"),
		tx("x", models.Income, "5", "cat-salario", "2024-04-01"),
	}
	days := DailyTotals(txs, march)

	require.Len(t, days, 2)
	assert.Equal(t, "2024-03-02", days[0].Date)
	assert.True(t, d("100").Equal(days[0].Balance))
	assert.Equal(t, "2024-03-10", days[1].Date)
	assert.True(t, d("50.5").Equal(days[1].Expense))
	assert.True(t, d("-50.5").Equal(days[1].Balance))
}

func TestBuildDashboard(t *testing.T) {
	h := models.Household{
		Tasks: []models.Task{
			task("today", models.TaskPending, "", "", "2024-03-15"),
			task("week", models.TaskPending, "", "", "2024-03-22"),
			task("beyond", models.TaskPending, "", "", "2024-03-23"),
			task("done", models.TaskDone, "", "", "2024-03-15"),
			task("late", models.TaskPending, "", "", "2024-03-14"),
		},
		Events: []models.Event{
			{ID: "e-past", StartDate: "2024-03-14"},
			{ID: "e1", StartDate: "2024-03-20"},
			{ID: "e0", StartDate: "2024-03-15"},
		},
		Reminders: []models.Reminder{
			{ID: "r1", Date: "2024-03-16", Time: "10:00"},
			{ID: "r0", Date: "2024-03-15", Time: "08:00"},
			{ID: "r-past", Date: "2024-03-01"},
		},
	}
	dash := BuildDashboard(h, models.Finance{}, today)

	assert.Equal(t, "2024-03-15", dash.Today)
	assert.Equal(t, []string{"today"}, taskIDs(dash.TasksDueToday))
	assert.Equal(t, []string{"today", "week"}, taskIDs(dash.TasksDueThisWeek))
	assert.Equal(t, []string{"e0", "e1"}, eventIDs(dash.NextEvents))
	assert.Equal(t, []string{"r0", "r1"}, reminderIDs(dash.NextReminders))
	assert.Equal(t, 1, dash.TaskCounts.Overdue)
	assert.Equal(t, 20, dash.CompletionPercent)
}
