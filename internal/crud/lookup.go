package crud

import (
	"context"
	"fmt"
	"sync"
)

// Lookup is a reference list a screen loads next to its own records.
type Lookup interface {
	Load(ctx context.Context) error
}

// TableConfig describes how a Table loads and labels its rows.
type TableConfig[L any] struct {
	Load  func(ctx context.Context) ([]L, error)
	ID    func(L) int64
	Label func(L) string
	// Fallback is formatted with the raw id when Name misses, e.g. "Cat ID: %d".
	Fallback string
	// Failure is notified when Load fails.
	Failure string
}

// Table caches one lookup list for the lifetime of a screen.
type Table[L any] struct {
	cfg      TableConfig[L]
	notifier Notifier

	mu    sync.RWMutex
	items []L
	state OpState
}

// NewTable constructs a lookup table.
func NewTable[L any](cfg TableConfig[L], notifier Notifier) *Table[L] {
	if notifier == nil {
		notifier = Discard
	}
	return &Table[L]{cfg: cfg, notifier: notifier}
}

// Load replaces the cached rows. On failure the previous rows are kept.
func (t *Table[L]) Load(ctx context.Context) error {
	t.mu.Lock()
	t.state = InFlight
	t.mu.Unlock()

	items, err := t.cfg.Load(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.state = Errored
		if t.cfg.Failure != "" {
			t.notifier.Notify(KindError, t.cfg.Failure)
		}
		return fmt.Errorf("load lookup: %w", err)
	}
	t.items = items
	t.state = Idle
	return nil
}

// Items returns a copy of the cached rows.
func (t *Table[L]) Items() []L {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]L, len(t.items))
	copy(out, t.items)
	return out
}

// State reports the status of the last Load.
func (t *Table[L]) State() OpState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Name resolves id to its label by linear scan.
func (t *Table[L]) Name(id int64) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, item := range t.items {
		if t.cfg.ID(item) == id {
			return t.cfg.Label(item)
		}
	}
	return fmt.Sprintf(t.cfg.Fallback, id)
}

// First returns the id of the first row, or 0 when the table is empty.
func (t *Table[L]) First() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.items) == 0 {
		return 0
	}
	return t.cfg.ID(t.items[0])
}
