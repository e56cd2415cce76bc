package ledger

import "household-ledger/internal/models"

// ItemsForList keeps the items of one list in insertion order.
func ItemsForList(items []models.ShoppingItem, listID string) []models.ShoppingItem {
	out := []models.ShoppingItem{}
	for _, it := range items {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	return out
}

type ListProgress struct {
	Purchased int `json:"comprados"`
	Total     int `json:"total"`
}

func ProgressOf(items []models.ShoppingItem, listID string) ListProgress {
	var p ListProgress
	for _, it := range items {
		if it.ListID != listID {
			continue
		}
		p.Total++
		if it.Purchased {
			p.Purchased++
		}
	}
	return p
}
