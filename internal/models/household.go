package models

// DateLayout is the calendar-day format used by every date field.
const DateLayout = "2006-01-02"

// TimeLayout is the wall-clock format of Reminder.Time.
const TimeLayout = "15:04"

type Priority string

const (
	PriorityLow    Priority = "baixa"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskPending TaskStatus = "pendente"
	TaskDone    TaskStatus = "concluida"
)

// Task 待办事项
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"titulo"`
	Description string     `json:"descricao,omitempty"`
	Category    string     `json:"categoria,omitempty"`
	Priority    Priority   `json:"prioridade"`
	DueDate     string     `json:"data_vencimento,omitempty"`
	Status      TaskStatus `json:"status"`
}

// TaskPatch 只合并非 nil 字段
type TaskPatch struct {
	Title       *string     `json:"titulo"`
	Description *string     `json:"descricao"`
	Category    *string     `json:"categoria"`
	Priority    *Priority   `json:"prioridade"`
	DueDate     *string     `json:"data_vencimento"`
	Status      *TaskStatus `json:"status"`
}

// Apply merges the non-nil fields of p into t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// ShoppingList 购物清单
type ShoppingList struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	CreatedOn string `json:"data_criacao"`
}

// ShoppingItem 清单中的条目，ListID 指向所属清单
type ShoppingItem struct {
	ID        string `json:"id"`
	ListID    string `json:"lista_id"`
	Name      string `json:"nome"`
	Quantity  string `json:"quantidade,omitempty"`
	Note      string `json:"observacao,omitempty"`
	Purchased bool   `json:"comprado"`
}

type ShoppingItemPatch struct {
	Name      *string `json:"nome"`
	Quantity  *string `json:"quantidade"`
	Note      *string `json:"observacao"`
	Purchased *bool   `json:"comprado"`
}

func (p ShoppingItemPatch) Apply(it *ShoppingItem) {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Quantity != nil {
		it.Quantity = *p.Quantity
	}
	if p.Note != nil {
		it.Note = *p.Note
	}
	if p.Purchased != nil {
		it.Purchased = *p.Purchased
	}
}

// Event 日程，EndDate 为空表示单日事件
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"titulo"`
	StartDate   string `json:"data_inicio"`
	EndDate     string `json:"data_fim,omitempty"`
	Category    string `json:"categoria,omitempty"`
	Description string `json:"descricao,omitempty"`
}

type EventPatch struct {
	Title       *string `json:"titulo"`
	StartDate   *string `json:"data_inicio"`
	EndDate     *string `json:"data_fim"`
	Category    *string `json:"categoria"`
	Description *string `json:"descricao"`
}

func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
}

// Reminder 提醒，Time 为可选的 HH:mm
type Reminder struct {
	ID          string `json:"id"`
	Title       string `json:"titulo"`
	Date        string `json:"data"`
	Time        string `json:"hora,omitempty"`
	Category    string `json:"categoria,omitempty"`
	Description string `json:"descricao,omitempty"`
}

type ReminderPatch struct {
	Title       *string `json:"titulo"`
	Date        *string `json:"data"`
	Time        *string `json:"hora"`
	Category    *string `json:"categoria"`
	Description *string `json:"descricao"`
}

func (p ReminderPatch) Apply(r *Reminder) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
}
