package store

import (
	"context"

	"household-ledger/internal/models"
)

func validTheme(t models.Theme) bool {
	return t == models.ThemeLight || t == models.ThemeDark
}

func (s *Store) Theme() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme ignores values other than light and dark.
func (s *Store) SetTheme(ctx context.Context, t models.Theme) error {
	if !validTheme(t) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := s.saveTheme(ctx, t); err != nil {
		return err
	}
	s.theme = t
	return nil
}

func (s *Store) ToggleTheme(ctx context.Context) (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.theme, ErrClosed
	}
	next := models.ThemeDark
	if s.theme == models.ThemeDark {
		next = models.ThemeLight
	}
	if err := s.saveTheme(ctx, next); err != nil {
		return s.theme, err
	}
	s.theme = next
	return next, nil
}
