package store

import (
	"context"

	"household-ledger/internal/models"
)

// AddTask stores t under a new id. A task without a title is ignored and
// the returned id is empty.
func (s *Store) AddTask(ctx context.Context, t models.Task) (string, error) {
	if blank(t.Title) {
		return "", nil
	}
	t.ID = s.newID()
	if !t.Priority.Valid() {
		t.Priority = models.PriorityMedium
	}
	if t.Status != models.TaskDone {
		t.Status = models.TaskPending
	}

	err := s.mutateHousehold(ctx, func(h *models.Household) bool {
		h.Tasks = append(h.Tasks, t)
		return true
	})
	if err != nil {
		return "", err
	}
	return t.ID, nil
}

func (s *Store) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) error {
	return s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Tasks, id, taskID)
		if i < 0 {
			return false
		}
		patch.Apply(&h.Tasks[i])
		return true
	})
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Tasks, id, taskID)
		if i < 0 {
			return false
		}
		h.Tasks = removeAt(h.Tasks, i)
		return true
	})
}

// ToggleTask flips a task between pending and done.
func (s *Store) ToggleTask(ctx context.Context, id string) error {
	return s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Tasks, id, taskID)
		if i < 0 {
			return false
		}
		if h.Tasks[i].Status == models.TaskDone {
			h.Tasks[i].Status = models.TaskPending
		} else {
			h.Tasks[i].Status = models.TaskDone
		}
		return true
	})
}
