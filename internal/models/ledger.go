package models

import "github.com/shopspring/decimal"

func init() {
	// amounts travel as JSON numbers, the way existing backup files store them
	decimal.MarshalJSONWithoutQuotes = true
}

// Origin records which feature created a transaction.
type Origin string

const (
	OriginManual   Origin = "manual"
	OriginPurchase Origin = "compra"
	OriginTask     Origin = "tarefa"
)

// Transaction represents a single income or expense record.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"descricao"`
	Amount      decimal.Decimal `json:"valor"`
	Type        EntryType       `json:"tipo"`
	CategoryID  string          `json:"categoria_id"`
	Date        string          `json:"data"`
	Note        string          `json:"observacao,omitempty"`
	Origin      Origin          `json:"origem,omitempty"`
	OriginID    string          `json:"origem_id,omitempty"`
}

type TransactionPatch struct {
	Description *string          `json:"descricao"`
	Amount      *decimal.Decimal `json:"valor"`
	Type        *EntryType       `json:"tipo"`
	CategoryID  *string          `json:"categoria_id"`
	Date        *string          `json:"data"`
	Note        *string          `json:"observacao"`
}

func (p TransactionPatch) Apply(t *Transaction) {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Note != nil {
		t.Note = *p.Note
	}
}

type GoalStatus string

const (
	GoalActive    GoalStatus = "ativa"
	GoalCompleted GoalStatus = "concluida"
	GoalPaused    GoalStatus = "pausada"
)

// CanTransition reports whether a goal may move from s to next.
// Active and paused toggle freely, completion is only reachable from
// active and is terminal.
func (s GoalStatus) CanTransition(next GoalStatus) bool {
	switch s {
	case GoalActive:
		return next == GoalPaused || next == GoalCompleted
	case GoalPaused:
		return next == GoalActive
	}
	return false
}

// Goal 储蓄目标，进度 = Current / Target
type Goal struct {
	ID          string          `json:"id"`
	Title       string          `json:"titulo"`
	Description string          `json:"descricao,omitempty"`
	Target      decimal.Decimal `json:"valor_objetivo"`
	Current     decimal.Decimal `json:"valor_atual"`
	StartDate   string          `json:"data_inicio"`
	Deadline    string          `json:"data_limite"`
	Status      GoalStatus      `json:"status"`
	Category    string          `json:"categoria,omitempty"`
}

// GoalPatch has no status; use Store.SetGoalStatus.
type GoalPatch struct {
	Title       *string          `json:"titulo"`
	Description *string          `json:"descricao"`
	Target      *decimal.Decimal `json:"valor_objetivo"`
	Current     *decimal.Decimal `json:"valor_atual"`
	StartDate   *string          `json:"data_inicio"`
	Deadline    *string          `json:"data_limite"`
	Category    *string          `json:"categoria"`
}

func (p GoalPatch) Apply(g *Goal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Target != nil {
		g.Target = *p.Target
	}
	if p.Current != nil {
		g.Current = *p.Current
	}
	if p.StartDate != nil {
		g.StartDate = *p.StartDate
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
}
