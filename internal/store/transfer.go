package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"household-ledger/internal/models"
)

// ExportFileName is the suggested name of an export written on day t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("cia-backup-%s.json", t.Format(models.DateLayout))
}

// Export returns every domain in one document.
func (s *Store) Export() models.ExportDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.ExportDocument{
		Version:     models.SnapshotVersion,
		GeneratedAt: s.now().UTC(),
		App:         cloneHousehold(s.household),
		Finance:     cloneFinance(s.finance),
		Theme:       models.ThemeSnapshot{Version: models.SnapshotVersion, Theme: s.theme},
	}
}

// Import replaces each domain present in data. The document must be a JSON
// object whose version is set; otherwise ErrInvalidDocument is returned and
// nothing changes. Within a domain every array is decoded on its own and a
// missing or malformed array becomes empty. Domains are persisted one by
// one, so a failed write leaves only that domain as it was.
func (s *Store) Import(ctx context.Context, data []byte) error {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil || root == nil {
		return ErrInvalidDocument
	}
	if !truthy(root["version"]) {
		return fmt.Errorf("%w: version missing", ErrInvalidDocument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	var errs []error
	if app, ok := object(root["app"]); ok {
		h := models.Household{
			Tasks:     decodeArray[models.Task](app, "tarefas"),
			Lists:     decodeArray[models.ShoppingList](app, "listas"),
			Items:     decodeArray[models.ShoppingItem](app, "itens"),
			Events:    decodeArray[models.Event](app, "eventos"),
			Reminders: decodeArray[models.Reminder](app, "lembretes"),
		}
		s.fillHouseholdIDs(&h)
		if err := s.saveHousehold(ctx, h); err != nil {
			errs = append(errs, err)
		} else {
			s.household = h
		}
	}

	if fin, ok := object(root["finance"]); ok {
		f := models.Finance{
			Transactions: decodeArray[models.Transaction](fin, "transacoes"),
			Categories:   decodeArray[models.Category](fin, "categorias"),
			Goals:        decodeArray[models.Goal](fin, "metas"),
		}
		s.fillFinanceIDs(&f)
		if err := s.saveFinance(ctx, f); err != nil {
			errs = append(errs, err)
		} else {
			s.finance = f
		}
	}

	if th, ok := object(root["theme"]); ok {
		var t string
		if raw, ok := th["theme"]; ok && json.Unmarshal(raw, &t) == nil && validTheme(models.Theme(t)) {
			if err := s.saveTheme(ctx, models.Theme(t)); err != nil {
				errs = append(errs, err)
			} else {
				s.theme = models.Theme(t)
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.log.Info().Msg("import applied")
	return nil
}

// ResetAll deletes the three snapshots and returns memory to the first-run
// state: no records, seeded categories and the light theme.
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	var errs []error
	for _, key := range []string{s.keys.App, s.keys.Finance, s.keys.Theme} {
		if err := s.backend.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	s.household = defaultHousehold()
	s.finance = defaultFinance()
	s.theme = models.ThemeLight
	s.log.Warn().Msg("all data reset")
	return nil
}

func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	}
	return true
}

func object(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}

func decodeArray[T any](obj map[string]json.RawMessage, key string) []T {
	out := []T{}
	raw, ok := obj[key]
	if !ok {
		return out
	}
	var xs []T
	if err := json.Unmarshal(raw, &xs); err != nil || xs == nil {
		return out
	}
	return xs
}

func (s *Store) fillHouseholdIDs(h *models.Household) {
	for i := range h.Tasks {
		if h.Tasks[i].ID == "" {
			h.Tasks[i].ID = s.newID()
		}
	}
	for i := range h.Lists {
		if h.Lists[i].ID == "" {
			h.Lists[i].ID = s.newID()
		}
	}
	for i := range h.Items {
		if h.Items[i].ID == "" {
			h.Items[i].ID = s.newID()
		}
	}
	for i := range h.Events {
		if h.Events[i].ID == "" {
			h.Events[i].ID = s.newID()
		}
	}
	for i := range h.Reminders {
		if h.Reminders[i].ID == "" {
			h.Reminders[i].ID = s.newID()
		}
	}
}

func (s *Store) fillFinanceIDs(f *models.Finance) {
	for i := range f.Transactions {
		if f.Transactions[i].ID == "" {
			f.Transactions[i].ID = s.newID()
		}
	}
	for i := range f.Categories {
		if f.Categories[i].ID == "" {
			f.Categories[i].ID = s.newID()
		}
	}
	for i := range f.Goals {
		if f.Goals[i].ID == "" {
			f.Goals[i].ID = s.newID()
		}
	}
}
