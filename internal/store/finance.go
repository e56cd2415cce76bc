package store

import (
	"context"
	"fmt"

	"household-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// AddTransaction records income or expense. Entries without a description,
// with a negative amount or an unknown type are ignored.
func (s *Store) AddTransaction(ctx context.Context, t models.Transaction) (string, error) {
	if blank(t.Description) || t.Amount.IsNegative() || !t.Type.Valid() {
		return "", nil
	}
	t.ID = s.newID()
	if blank(t.Date) {
		t.Date = s.today()
	}
	if t.Origin == "" {
		t.Origin = models.OriginManual
	}

	err := s.mutateFinance(ctx, func(f *models.Finance) (bool, error) {
		f.Transactions = append(f.Transactions, t)
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return t.ID, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) error {
	return s.mutateFinance(ctx, func(f *models.Finance) (bool, error) {
		i := indexOf(f.Transactions, id, transactionID)
		if i < 0 {
			return false, nil
		}
		patch.Apply(&f.Transactions[i])
		return true, nil
	})
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	return s.mutateFinance(ctx, func(f *models.Finance) (bool, error) {
		i := indexOf(f.Transactions, id, transactionID)
		if i < 0 {
			return false, nil
		}
		f.Transactions = removeAt(f.Transactions, i)
		return true, nil
	})
}

// RecordPurchase books a bought shopping item as an expense dated today.
func (s *Store) RecordPurchase(ctx context.Context, originID, description string, amount decimal.Decimal, categoryID string) (string, error) {
	return s.AddTransaction(ctx, models.Transaction{
		Description: description,
		Amount:      amount,
		Type:        models.Expense,
		CategoryID:  categoryID,
		Date:        s.today(),
		Origin:      models.OriginPurchase,
		OriginID:    originID,
	})
}

// RecordTaskIncome books income earned by completing a task.
func (s *Store) RecordTaskIncome(ctx context.Context, originID, description string, amount decimal.Decimal, categoryID string) (string, error) {
	return s.AddTransaction(ctx, models.Transaction{
		Description: description,
		Amount:      amount,
		Type:        models.Income,
		CategoryID:  categoryID,
		Date:        s.today(),
		Origin:      models.OriginTask,
		OriginID:    originID,
	})
}

func (s *Store) AddCategory(ctx context.Context, c models.Category) (string, error) {
	if blank(c.Name) || !c.Type.Valid() {
		return "", nil
	}
	c.ID = s.newID()
	err := s.mutateFinance(ctx, func(f *models.Finance) (bool, error) {
		f.Categories = append(f.Categories, c)
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) error {
	return s.mutateFinance(ctx, func(f *models.Finance) (bool, error) {
		i := indexOf(f.Categories, id, categoryID)
		if i < 0 {
			return false, nil
		}
		patch.Apply(&f.Categories[i])
		return true, nil
	})
}

// DeleteCategory leaves transactions that point to it untouched; they show
// up as uncategorized.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return s.mutateFinance(ctx, func(f *models.Finance) (bool, error) {
		i := indexOf(f.Categories, id, categoryID)
		if i < 0 {
			return false, nil
		}
		f.Categories = removeAt(f.Categories, i)
		return true, nil
	})
}

// AddGoal starts a goal in the active state.
func (s *Store) AddGoal(ctx context.Context, g models.Goal) (string, error) {
	if blank(g.Title) || g.Target.IsNegative() || g.Current.IsNegative() {
		return "", nil
	}
	g.ID = s.newID()
	g.Status = models.GoalActive
	if blank(g.StartDate) {
		g.StartDate = s.today()
	}
	err := s.mutateFinance(ctx, func(f *models.Finance) (bool, error) {
		f.Goals = append(f.Goals, g)
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return g.ID, nil
}

func (s *Store) UpdateGoal(ctx context.Context, id string, patch models.GoalPatch) error {
	return s.mutateFinance(ctx, func(f *models.Finance) (bool, error) {
		i := indexOf(f.Goals, id, goalID)
		if i < 0 {
			return false, nil
		}
		patch.Apply(&f.Goals[i])
		return true, nil
	})
}

// UpdateGoalProgress sets the amount saved so far. Reaching the target does
// not complete the goal.
func (s *Store) UpdateGoalProgress(ctx context.Context, id string, current decimal.Decimal) error {
	if current.IsNegative() {
		return nil
	}
	return s.UpdateGoal(ctx, id, models.GoalPatch{Current: &current})
}

// SetGoalStatus moves a goal through active, paused and completed.
// Setting the current status again is a no-op.
func (s *Store) SetGoalStatus(ctx context.Context, id string, status models.GoalStatus) error {
	return s.mutateFinance(ctx, func(f *models.Finance) (bool, error) {
		i := indexOf(f.Goals, id, goalID)
		if i < 0 {
			return false, nil
		}
		cur := f.Goals[i].Status
		if cur == status {
			return false, nil
		}
		if !cur.CanTransition(status) {
			return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur, status)
		}
		f.Goals[i].Status = status
		return true, nil
	})
}

func (s *Store) DeleteGoal(ctx context.Context, id string) error {
	return s.mutateFinance(ctx, func(f *models.Finance) (bool, error) {
		i := indexOf(f.Goals, id, goalID)
		if i < 0 {
			return false, nil
		}
		f.Goals = removeAt(f.Goals, i)
		return true, nil
	})
}
