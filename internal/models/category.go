package models

// EntryType separates income from expense for categories and transactions.
type EntryType string

const (
	Income  EntryType = "receita"
	Expense EntryType = "despesa"
)

func (t EntryType) Valid() bool {
	return t == Income || t == Expense
}

// Category represents income/expense category.
type Category struct {
	ID    string    `json:"id"`
	Name  string    `json:"nome"`
	Type  EntryType `json:"tipo"`
	Color string    `json:"cor"`
	Icon  string    `json:"icone"`
}

type CategoryPatch struct {
	Name  *string    `json:"nome"`
	Type  *EntryType `json:"tipo"`
	Color *string    `json:"cor"`
	Icon  *string    `json:"icone"`
}

func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
}

// DefaultCategories returns a fresh copy of the categories seeded on first run.
func DefaultCategories() []Category {
	return []Category{
		{ID: "cat-alimentacao", Name: "Alimentação", Type: Expense, Color: "#ef4444", Icon: "🍽️"},
		{ID: "cat-contas", Name: "Contas", Type: Expense, Color: "#f97316", Icon: "📄"},
		{ID: "cat-lazer", Name: "Lazer", Type: Expense, Color: "#8b5cf6", Icon: "🎉"},
		{ID: "cat-transporte", Name: "Transporte", Type: Expense, Color: "#06b6d4", Icon: "🚗"},
		{ID: "cat-saude", Name: "Saúde", Type: Expense, Color: "#ec4899", Icon: "🏥"},
		{ID: "cat-casa", Name: "Casa", Type: Expense, Color: "#84cc16", Icon: "🏠"},
		{ID: "cat-salario", Name: "Salário", Type: Income, Color: "#22c55e", Icon: "💼"},
		{ID: "cat-freelance", Name: "Freelance", Type: Income, Color: "#3b82f6", Icon: "💻"},
		{ID: "cat-reembolso", Name: "Reembolso", Type: Income, Color: "#10b981", Icon: "💰"},
		{ID: "cat-investimento", Name: "Investimento", Type: Income, Color: "#6366f1", Icon: "📈"},
	}
}
