package remote

import (
	"time"

	"household-ledger/internal/models"
)

// taskEntity is the stored form of a task. The id lives in the key name.
type taskEntity struct {
	Title       string    `datastore:"titulo"`
	Description string    `datastore:"descricao,noindex"`
	Category    string    `datastore:"categoria"`
	Priority    string    `datastore:"prioridade"`
	DueDate     string    `datastore:"data_vencimento"`
	Status      string    `datastore:"status"`
	CreatedAt   time.Time `datastore:"created_at"`
}

func newTaskEntity(t models.Task, createdAt time.Time) *taskEntity {
	return &taskEntity{
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		Status:      string(t.Status),
		CreatedAt:   createdAt,
	}
}

func (e *taskEntity) toModel(id string) models.Task {
	return models.Task{
		ID:          id,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Priority:    models.Priority(e.Priority),
		DueDate:     e.DueDate,
		Status:      models.TaskStatus(e.Status),
	}
}

type itemEntity struct {
	ListID    string    `datastore:"lista_id"`
	Name      string    `datastore:"nome"`
	Quantity  string    `datastore:"quantidade,noindex"`
	Note      string    `datastore:"observacao,noindex"`
	Purchased bool      `datastore:"comprado"`
	CreatedAt time.Time `datastore:"created_at"`
}

func newItemEntity(it models.ShoppingItem, createdAt time.Time) *itemEntity {
	return &itemEntity{
		ListID:    it.ListID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		Note:      it.Note,
		Purchased: it.Purchased,
		CreatedAt: createdAt,
	}
}

func (e *itemEntity) toModel(id string) models.ShoppingItem {
	return models.ShoppingItem{
		ID:        id,
		ListID:    e.ListID,
		Name:      e.Name,
		Quantity:  e.Quantity,
		Note:      e.Note,
		Purchased: e.Purchased,
	}
}
