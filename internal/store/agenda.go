package store

import (
	"context"

	"household-ledger/internal/models"
)

// AddEvent needs a title and a start date; otherwise nothing is stored.
func (s *Store) AddEvent(ctx context.Context, e models.Event) (string, error) {
	if blank(e.Title) || blank(e.StartDate) {
		return "", nil
	}
	e.ID = s.newID()
	err := s.mutateHousehold(ctx, func(h *models.Household) bool {
		h.Events = append(h.Events, e)
		return true
	})
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

func (s *Store) UpdateEvent(ctx context.Context, id string, patch models.EventPatch) error {
	return s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Events, id, eventID)
		if i < 0 {
			return false
		}
		patch.Apply(&h.Events[i])
		return true
	})
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	return s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Events, id, eventID)
		if i < 0 {
			return false
		}
		h.Events = removeAt(h.Events, i)
		return true
	})
}

// AddReminder needs a title and a date.
func (s *Store) AddReminder(ctx context.Context, r models.Reminder) (string, error) {
	if blank(r.Title) || blank(r.Date) {
		return "", nil
	}
	r.ID = s.newID()
	err := s.mutateHousehold(ctx, func(h *models.Household) bool {
		h.Reminders = append(h.Reminders, r)
		return true
	})
	if err != nil {
		return "", err
	}
	return r.ID, nil
}

func (s *Store) UpdateReminder(ctx context.Context, id string, patch models.ReminderPatch) error {
	return s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Reminders, id, reminderID)
		if i < 0 {
			return false
		}
		patch.Apply(&h.Reminders[i])
		return true
	})
}

func (s *Store) DeleteReminder(ctx context.Context, id string) error {
	return s.mutateHousehold(ctx, func(h *models.Household) bool {
		i := indexOf(h.Reminders, id, reminderID)
		if i < 0 {
			return false
		}
		h.Reminders = removeAt(h.Reminders, i)
		return true
	})
}
