package ledger

import (
	"fmt"
	"sort"
	"time"

	"household-ledger/internal/models"

	"github.com/shopspring/decimal"
)

const (
	recentLimit      = 5
	goalAlertMaxDays = 7
	uncategorized    = "Sem categoria"
	uncategorizedHex = "#9ca3af"
)

var (
	hundred        = decimal.NewFromInt(100)
	highSpendRatio = decimal.RequireFromString("0.8")
)

// Window is a calendar month.
type Window struct {
	Year  int        `json:"ano"`
	Month time.Month `json:"mes"`
}

func MonthOf(t time.Time) Window {
	return Window{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether the date falls inside the month.
func (w Window) Contains(date string) bool {
	d, ok := parseDay(date)
	return ok && d.Year() == w.Year && d.Month() == w.Month
}

type CategoryTotal struct {
	CategoryID string          `json:"categoria_id"`
	Name       string          `json:"nome"`
	Color      string          `json:"cor"`
	Total      decimal.Decimal `json:"total"`
}

type AlertKind string

const (
	AlertHighSpending    AlertKind = "high_spending"
	AlertNegativeBalance AlertKind = "negative_balance"
	AlertGoalDueSoon     AlertKind = "goal_due_soon"
)

type Alert struct {
	Kind     AlertKind `json:"tipo"`
	Message  string    `json:"mensagem"`
	GoalID   string    `json:"meta_id,omitempty"`
	DaysLeft int       `json:"dias_restantes,omitempty"`
}

// Summary is the monthly finance overview.
type Summary struct {
	Window             Window               `json:"periodo"`
	Income             decimal.Decimal      `json:"receitas_mes"`
	Expense            decimal.Decimal      `json:"despesas_mes"`
	Balance            decimal.Decimal      `json:"saldo"`
	SavingsRate        decimal.Decimal      `json:"taxa_economia"`
	RecentTransactions []models.Transaction `json:"transacoes_recentes"`
	ExpenseByCategory  []CategoryTotal      `json:"despesas_por_categoria"`
	Alerts             []Alert              `json:"alertas"`
}

// Summarize computes the overview of window w. Recent transactions ignore the
// window; goal alerts are relative to today.
func Summarize(f models.Finance, w Window, today time.Time) Summary {
	income, expense := MonthTotals(f.Transactions, w)
	balance := income.Sub(expense)
	return Summary{
		Window:             w,
		Income:             income,
		Expense:            expense,
		Balance:            balance,
		SavingsRate:        SavingsRate(income, balance),
		RecentTransactions: RecentTransactions(f.Transactions, recentLimit),
		ExpenseByCategory:  ExpenseByCategory(f, w),
		Alerts:             Alerts(f.Goals, income, expense, today),
	}
}

// MonthTotals sums income and expense dated inside w.
func MonthTotals(txs []models.Transaction, w Window) (income, expense decimal.Decimal) {
	for _, t := range txs {
		if !w.Contains(t.Date) {
			continue
		}
		switch t.Type {
		case models.Income:
			income = income.Add(t.Amount)
		case models.Expense:
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}

// SavingsRate is balance/income*100 rounded to two places, 0 without income.
func SavingsRate(income, balance decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return balance.Mul(hundred).DivRound(income, 2)
}

// RecentTransactions returns up to n transactions, newest date first.
func RecentTransactions(txs []models.Transaction, n int) []models.Transaction {
	sorted := append([]models.Transaction{}, txs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return datePart(sorted[i].Date) > datePart(sorted[j].Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// ExpenseByCategory groups the window's expenses by category in order of
// first occurrence. Unknown category ids are grouped as uncategorized.
func ExpenseByCategory(f models.Finance, w Window) []CategoryTotal {
	cats := make(map[string]models.Category, len(f.Categories))
	for _, c := range f.Categories {
		cats[c.ID] = c
	}

	out := []CategoryTotal{}
	pos := make(map[string]int)
	for _, t := range f.Transactions {
		if t.Type != models.Expense || !w.Contains(t.Date) {
			continue
		}
		key := t.CategoryID
		c, known := cats[key]
		if !known {
			key = ""
		}
		i, seen := pos[key]
		if !seen {
			ct := CategoryTotal{CategoryID: key, Name: uncategorized, Color: uncategorizedHex}
			if known {
				ct.Name, ct.Color = c.Name, c.Color
			}
			out = append(out, ct)
			i = len(out) - 1
			pos[key] = i
		}
		out[i].Total = out[i].Total.Add(t.Amount)
	}
	return out
}

// Alerts are advisory and never stored. Goal deadlines count from today.
func Alerts(goals []models.Goal, income, expense decimal.Decimal, today time.Time) []Alert {
	out := []Alert{}
	if expense.GreaterThan(income.Mul(highSpendRatio)) {
		out = append(out, Alert{
			Kind:    AlertHighSpending,
			Message: "Gastos acima de 80% das receitas do mês",
		})
	}
	if income.Sub(expense).IsNegative() {
		out = append(out, Alert{
			Kind:    AlertNegativeBalance,
			Message: "Saldo do mês negativo",
		})
	}
	for _, g := range goals {
		if g.Status != models.GoalActive {
			continue
		}
		days, ok := DaysBetween(today, g.Deadline)
		if !ok || days < 1 || days > goalAlertMaxDays {
			continue
		}
		out = append(out, Alert{
			Kind:     AlertGoalDueSoon,
			Message:  fmt.Sprintf("Meta \"%s\" vence em %d dias", g.Title, days),
			GoalID:   g.ID,
			DaysLeft: days,
		})
	}
	return out
}

// GoalProgress is current/target as a percentage rounded to two places,
// 0 for a zero target. It may exceed 100.
func GoalProgress(g models.Goal) decimal.Decimal {
	if !g.Target.IsPositive() {
		return decimal.Zero
	}
	return g.Current.Mul(hundred).DivRound(g.Target, 2)
}

// OverallBalance is all-time income minus expense.
func OverallBalance(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case models.Income:
			total = total.Add(t.Amount)
		case models.Expense:
			total = total.Sub(t.Amount)
		}
	}
	return total
}

// TransactionsInPeriod keeps transactions dated within [from, to].
func TransactionsInPeriod(txs []models.Transaction, from, to string) []models.Transaction {
	out := []models.Transaction{}
	for _, t := range txs {
		d := datePart(t.Date)
		if (from == "" || d >= from) && (to == "" || d <= to) {
			out = append(out, t)
		}
	}
	return out
}

func TransactionsByCategory(txs []models.Transaction, categoryID string) []models.Transaction {
	out := []models.Transaction{}
	for _, t := range txs {
		if t.CategoryID == categoryID {
			out = append(out, t)
		}
	}
	return out
}

func CategoriesByType(cats []models.Category, typ models.EntryType) []models.Category {
	out := []models.Category{}
	for _, c := range cats {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

// DayTotal is one day of a month's cash flow.
type DayTotal struct {
	Date    string          `json:"data"`
	Income  decimal.Decimal `json:"receitas"`
	Expense decimal.Decimal `json:"despesas"`
	Balance decimal.Decimal `json:"saldo"`
}

// DailyTotals groups the transactions of w by day, ascending. Days without
// transactions are omitted.
func DailyTotals(txs []models.Transaction, w Window) []DayTotal {
	byDay := make(map[string]*DayTotal)
	for _, t := range txs {
		if !w.Contains(t.Date) {
			continue
		}
		key := datePart(t.Date)
		d, ok := byDay[key]
		if !ok {
			d = &DayTotal{Date: key}
			byDay[key] = d
		}
		if t.Type == models.Income {
			d.Income = d.Income.Add(t.Amount)
		} else {
			d.Expense = d.Expense.Add(t.Amount)
		}
	}

	out := make([]DayTotal, 0, len(byDay))
	for _, d := range byDay {
		d.Balance = d.Income.Sub(d.Expense)
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
