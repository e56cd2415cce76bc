package remote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"household-ledger/internal/models"

	"cloud.google.com/go/datastore"
	"github.com/google/uuid"
)

// CreateTask stores t under a new id and returns the stored task.
func (c *Client) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return models.Task{}, fmt.Errorf("remote: task title is empty")
	}
	if !t.Priority.Valid() {
		t.Priority = models.PriorityMedium
	}
	if t.Status != models.TaskDone {
		t.Status = models.TaskPending
	}
	t.ID = uuid.NewString()

	key := datastore.NameKey(KindTask, t.ID, c.householdKey())
	if _, err := c.ds.Put(ctx, key, newTaskEntity(t, time.Now())); err != nil {
		return models.Task{}, fmt.Errorf("put task: %w", err)
	}
	return t, nil
}

// ListTasks returns the household's tasks, newest first.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	query := datastore.NewQuery(KindTask).Ancestor(c.householdKey()).Order("-created_at")

	var entities []taskEntity
	keys, err := c.ds.GetAll(ctx, query, &entities)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]models.Task, len(entities))
	for i, key := range keys {
		out[i] = entities[i].toModel(key.Name)
	}
	return out, nil
}

// UpdateTask merges patch into the stored task inside a transaction.
func (c *Client) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) error {
	key := datastore.NameKey(KindTask, id, c.householdKey())
	_, err := c.ds.RunInTransaction(ctx, func(tx *datastore.Transaction) error {
		var e taskEntity
		if err := tx.Get(key, &e); err != nil {
			return err
		}
		t := e.toModel(id)
		patch.Apply(&t)
		_, err := tx.Put(key, newTaskEntity(t, e.CreatedAt))
		return err
	})
	return wrapError(err)
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	key := datastore.NameKey(KindTask, id, c.householdKey())
	return wrapError(c.ds.Delete(ctx, key))
}

func (c *Client) CreateItem(ctx context.Context, it models.ShoppingItem) (models.ShoppingItem, error) {
	if strings.TrimSpace(it.Name) == "" {
		return models.ShoppingItem{}, fmt.Errorf("remote: item name is empty")
	}
	it.ID = uuid.NewString()
	it.Purchased = false

	key := datastore.NameKey(KindShoppingItem, it.ID, c.householdKey())
	if _, err := c.ds.Put(ctx, key, newItemEntity(it, time.Now())); err != nil {
		return models.ShoppingItem{}, fmt.Errorf("put item: %w", err)
	}
	return it, nil
}

// ListItems returns the items of one list, oldest first. An empty listID
// returns every item of the household.
func (c *Client) ListItems(ctx context.Context, listID string) ([]models.ShoppingItem, error) {
	query := datastore.NewQuery(KindShoppingItem).Ancestor(c.householdKey())
	if listID != "" {
		query = query.FilterField("lista_id", "=", listID)
	}
	query = query.Order("created_at")

	var entities []itemEntity
	keys, err := c.ds.GetAll(ctx, query, &entities)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	out := make([]models.ShoppingItem, len(entities))
	for i, key := range keys {
		out[i] = entities[i].toModel(key.Name)
	}
	return out, nil
}

func (c *Client) UpdateItem(ctx context.Context, id string, patch models.ShoppingItemPatch) error {
	key := datastore.NameKey(KindShoppingItem, id, c.householdKey())
	_, err := c.ds.RunInTransaction(ctx, func(tx *datastore.Transaction) error {
		var e itemEntity
		if err := tx.Get(key, &e); err != nil {
			return err
		}
		it := e.toModel(id)
		patch.Apply(&it)
		_, err := tx.Put(key, newItemEntity(it, e.CreatedAt))
		return err
	})
	return wrapError(err)
}

func (c *Client) DeleteItem(ctx context.Context, id string) error {
	key := datastore.NameKey(KindShoppingItem, id, c.householdKey())
	return wrapError(c.ds.Delete(ctx, key))
}
