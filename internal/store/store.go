// Package store holds the household and finance collections in memory and
// writes the full snapshot of a domain on every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"household-ledger/internal/logger"
	"household-ledger/internal/models"
	"household-ledger/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrClosed            = errors.New("store: closed")
	ErrInvalidDocument   = errors.New("store: invalid import document")
	ErrInvalidTransition = errors.New("store: invalid goal status transition")
)

// Keys names the storage entries of the three domains.
type Keys struct {
	App     string
	Finance string
	Theme   string
}

func DefaultKeys() Keys {
	return Keys{App: "cia-app-store", Finance: "finance-storage", Theme: "theme-storage"}
}

type Option func(*Store)

func WithKeys(k Keys) Option {
	return func(s *Store) { s.keys = k }
}

// WithClock overrides the source of "today" for creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// Store is safe for concurrent use. Readers get deep copies; writers are
// serialised and a mutation becomes visible only after its snapshot is saved.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend
	keys    Keys
	now     func() time.Time
	newID   func() string
	log     logger.Logger
	closed  bool

	household models.Household
	finance   models.Finance
	theme     models.Theme
}

// New builds a store holding default state. Call Open to load persisted data.
func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		keys:    DefaultKeys(),
		now:     time.Now,
		newID:   uuid.NewString,
		log:     logger.Store(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.household = defaultHousehold()
	s.finance = defaultFinance()
	s.theme = models.ThemeLight
	return s
}

func defaultHousehold() models.Household {
	return cloneHousehold(models.Household{})
}

func defaultFinance() models.Finance {
	return cloneFinance(models.Finance{Categories: models.DefaultCategories()})
}

// Open reads the three domains independently. A domain that is missing,
// unreadable or corrupt starts from its default and the others are kept.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	var hs models.HouseholdSnapshot
	if s.load(ctx, s.keys.App, &hs) {
		s.household = cloneHousehold(hs.Household)
	} else {
		s.household = defaultHousehold()
	}

	var fs models.FinanceSnapshot
	if s.load(ctx, s.keys.Finance, &fs) {
		if fs.Categories == nil {
			fs.Categories = models.DefaultCategories()
		}
		s.finance = cloneFinance(fs.Finance)
	} else {
		s.finance = defaultFinance()
	}

	var ts models.ThemeSnapshot
	if s.load(ctx, s.keys.Theme, &ts) && validTheme(ts.Theme) {
		s.theme = ts.Theme
	} else {
		s.theme = models.ThemeLight
	}

	s.log.Info().
		Int("tasks", len(s.household.Tasks)).
		Int("transactions", len(s.finance.Transactions)).
		Str("theme", string(s.theme)).
		Msg("state loaded")
	return nil
}

func (s *Store) load(ctx context.Context, key string, dst interface{}) bool {
	data, err := s.backend.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("snapshot unreadable, using defaults")
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("snapshot corrupt, using defaults")
		return false
	}
	return true
}

// Close stops the store from accepting further mutations.
func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// Household returns a copy of the non-financial collections.
func (s *Store) Household() models.Household {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneHousehold(s.household)
}

// Finance returns a copy of the financial collections.
func (s *Store) Finance() models.Finance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneFinance(s.finance)
}

func (s *Store) today() string {
	return s.now().Format(models.DateLayout)
}

// mutateHousehold runs fn on a copy of the household collections. When fn
// reports a change, the copy is persisted and only then swapped in.
func (s *Store) mutateHousehold(ctx context.Context, fn func(h *models.Household) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	next := cloneHousehold(s.household)
	if !fn(&next) {
		return nil
	}
	if err := s.saveHousehold(ctx, next); err != nil {
		return err
	}
	s.household = next
	return nil
}

func (s *Store) mutateFinance(ctx context.Context, fn func(f *models.Finance) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	next := cloneFinance(s.finance)
	changed, err := fn(&next)
	if err != nil || !changed {
		return err
	}
	if err := s.saveFinance(ctx, next); err != nil {
		return err
	}
	s.finance = next
	return nil
}

func (s *Store) saveHousehold(ctx context.Context, h models.Household) error {
	return s.put(ctx, s.keys.App, models.HouseholdSnapshot{Version: models.SnapshotVersion, Household: h})
}

func (s *Store) saveFinance(ctx context.Context, f models.Finance) error {
	return s.put(ctx, s.keys.Finance, models.FinanceSnapshot{Version: models.SnapshotVersion, Finance: f})
}

func (s *Store) saveTheme(ctx context.Context, t models.Theme) error {
	return s.put(ctx, s.keys.Theme, models.ThemeSnapshot{Version: models.SnapshotVersion, Theme: t})
}

func (s *Store) put(ctx context.Context, key string, snapshot interface{}) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Put(ctx, key, data); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("persist failed")
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func blank(v string) bool {
	return strings.TrimSpace(v) == ""
}

func indexOf[T any](xs []T, id string, idOf func(T) string) int {
	for i := range xs {
		if idOf(xs[i]) == id {
			return i
		}
	}
	return -1
}

func removeAt[T any](xs []T, i int) []T {
	return append(xs[:i], xs[i+1:]...)
}

func cloneSlice[T any](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	return out
}

func cloneHousehold(h models.Household) models.Household {
	return models.Household{
		Tasks:     cloneSlice(h.Tasks),
		Lists:     cloneSlice(h.Lists),
		Items:     cloneSlice(h.Items),
		Events:    cloneSlice(h.Events),
		Reminders: cloneSlice(h.Reminders),
	}
}

func cloneFinance(f models.Finance) models.Finance {
	return models.Finance{
		Transactions: cloneSlice(f.Transactions),
		Categories:   cloneSlice(f.Categories),
		Goals:        cloneSlice(f.Goals),
	}
}

func taskID(t models.Task) string { return t.ID }
func listID(l models.ShoppingList) string { return l.ID }
func itemID(it models.ShoppingItem) string { return it.ID }
func eventID(e models.Event) string { return e.ID }
func reminderID(r models.Reminder) string { return r.ID }
func transactionID(t models.Transaction) string { return t.ID }
func categoryID(c models.Category) string { return c.ID }
func goalID(g models.Goal) string { return g.ID }
