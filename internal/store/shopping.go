package store

import (
	"context"
	"strings"

	"household-ledger/internal/models"
)

const copySuffix = " (cópia)"

// AddList creates an empty shopping list dated today.
func (s *Store) AddList(ctx context.Context, name string) (string, error) {
	if blank(name) {
		return "", nil
	}
	l := models.ShoppingList{ID: s.newID(), Name: strings.TrimSpace(name), CreatedOn: s.today()}
	err := s.mutateHousehold(ctx, func(h *models.Household) bool {
		h.Lists = append(h.Lists, l)
		return true
	})
	if err != nil {
		return "", err
	}
	return l.ID, nil
}

func (s *Store) RenameList(ctx context.Context, id, name string) error {
	if blank(name) {
		return nil
	}
	return s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Lists, id, listID)
		if i < 0 {
			return false
		}
		h.Lists[i].Name = strings.TrimSpace(name)
		return true
	})
}

// DeleteList removes the list together with every item that belongs to it.
func (s *Store) DeleteList(ctx context.Context, id string) error {
	return s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Lists, id, listID)
		if i < 0 {
			return false
		}
		h.Lists = removeAt(h.Lists, i)
		kept := h.Items[:0]
		for _, it := range h.Items {
			if it.ListID != id {
				kept = append(kept, it)
			}
		}
		h.Items = kept
		return true
	})
}

// DuplicateList copies a list and all of its items in one step. Copied items
// get fresh ids and start unpurchased. An unknown source returns "".
func (s *Store) DuplicateList(ctx context.Context, id string) (string, error) {
	var newListID string
	err := s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Lists, id, listID)
		if i < 0 {
			return false
		}
		src := h.Lists[i]
		dup := models.ShoppingList{
			ID:        s.newID(),
			Name:      src.Name + copySuffix,
			CreatedOn: s.today(),
		}
		h.Lists = append(h.Lists, dup)

		n := len(h.Items)
		for _, it := range h.Items[:n] {
			if it.ListID != id {
				continue
			}
			it.ID = s.newID()
			it.ListID = dup.ID
			it.Purchased = false
			h.Items = append(h.Items, it)
		}
		newListID = dup.ID
		return true
	})
	if err != nil {
		return "", err
	}
	return newListID, nil
}

// AddItem appends an item to a list. The list id is not checked.
func (s *Store) AddItem(ctx context.Context, it models.ShoppingItem) (string, error) {
	if blank(it.Name) {
		return "", nil
	}
	it.ID = s.newID()
	it.Purchased = false
	err := s.mutateHousehold(ctx, func(h *models.Household) bool {
		h.Items = append(h.Items, it)
		return true
	})
	if err != nil {
		return "", err
	}
	return it.ID, nil
}

func (s *Store) UpdateItem(ctx context.Context, id string, patch models.ShoppingItemPatch) error {
	return s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Items, id, itemID)
		if i < 0 {
			return false
		}
		patch.Apply(&h.Items[i])
		return true
	})
}

// ToggleItemPurchased flips the purchased flag of an item.
func (s *Store) ToggleItemPurchased(ctx context.Context, id string) error {
	return s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Items, id, itemID)
		if i < 0 {
			return false
		}
		h.Items[i].Purchased = !h.Items[i].Purchased
		return true
	})
}

func (s *Store) DeleteItem(ctx context.Context, id string) error {
	return s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Items, id, itemID)
		if i < 0 {
			return false
		}
		h.Items = removeAt(h.Items, i)
		return true
	})
}
