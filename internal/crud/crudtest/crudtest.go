// Package crudtest provides in-memory doubles for screen tests.
package crudtest

import (
	"context"
	"io"
	"sync"

	"github.com/smartmart/smartmart-dashboard/internal/crud"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
)

// Note is one recorded notification.
type Note struct {
	Kind    string
	Message string
}

// Recorder is a crud.Notifier that keeps every notification.
type Recorder struct {
	mu    sync.Mutex
	notes []Note
}

// Notify records the notification.
func (r *Recorder) Notify(kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, Note{Kind: kind, Message: message})
}

// Notes returns the recorded notifications in order.
func (r *Recorder) Notes() []Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Note, len(r.notes))
	copy(out, r.notes)
	return out
}

// Last returns the latest notification, or the zero Note.
func (r *Recorder) Last() Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return Note{}
	}
	return r.notes[len(r.notes)-1]
}

// Call is one recorded resource invocation.
type Call struct {
	Op     string
	ID     int64
	Filter any
	Entity any
}

// Resource is an in-memory crud.Resource. Create assigns ids through Assign.
type Resource[E crud.Entity, F retail.Filter] struct {
	name   string
	assign func(E, int64) E

	mu     sync.Mutex
	items  []E
	nextID int64
	calls  []Call

	// ListFunc, when set, replaces the in-memory list.
	ListFunc     func(ctx context.Context, filter F) ([]E, error)
	CreateErr    error
	UpdateErr    error
	RemoveErr    error
	ImportErr    error
	ImportResult retail.ImportResult
	// Imported is appended to the store on a successful import.
	Imported []E
}

// NewResource seeds a fake resource with items.
func NewResource[E crud.Entity, F retail.Filter](name string, assign func(E, int64) E, items ...E) *Resource[E, F] {
	r := &Resource[E, F]{name: name, assign: assign, items: append([]E(nil), items...)}
	for _, item := range items {
		if item.Identity() > r.nextID {
			r.nextID = item.Identity()
		}
	}
	return r
}

// Name implements crud.Resource.
func (r *Resource[E, F]) Name() string { return r.name }

// List implements crud.Resource.
func (r *Resource[E, F]) List(ctx context.Context, filter F) ([]E, error) {
	r.record(Call{Op: "list", Filter: filter})
	if r.ListFunc != nil {
		return r.ListFunc(ctx, filter)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]E{}, r.items...), nil
}

// Create implements crud.Resource.
func (r *Resource[E, F]) Create(_ context.Context, entity E) (E, error) {
	r.record(Call{Op: "create", Entity: entity})
	if r.CreateErr != nil {
		var zero E
		return zero, r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := r.assign(entity, r.nextID)
	r.items = append(r.items, created)
	return created, nil
}

// Update implements crud.Resource.
func (r *Resource[E, F]) Update(_ context.Context, id int64, entity E) (E, error) {
	r.record(Call{Op: "update", ID: id, Entity: entity})
	if r.UpdateErr != nil {
		var zero E
		return zero, r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	updated := r.assign(entity, id)
	for i, item := range r.items {
		if item.Identity() == id {
			r.items[i] = updated
		}
	}
	return updated, nil
}

// Remove implements crud.Resource.
func (r *Resource[E, F]) Remove(_ context.Context, id int64) error {
	r.record(Call{Op: "remove", ID: id})
	if r.RemoveErr != nil {
		return r.RemoveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, item := range r.items {
		if item.Identity() != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

// Import implements crud.Resource.
func (r *Resource[E, F]) Import(_ context.Context, filename string, content io.Reader) (retail.ImportResult, error) {
	_, _ = io.Copy(io.Discard, content)
	r.record(Call{Op: "import", Entity: filename})
	if r.ImportErr != nil {
		return retail.ImportResult{}, r.ImportErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.Imported {
		r.nextID++
		r.items = append(r.items, r.assign(item, r.nextID))
	}
	return r.ImportResult, nil
}

// Calls returns every recorded invocation.
func (r *Resource[E, F]) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns the number of invocations of op.
func (r *Resource[E, F]) Count(op string) int {
	n := 0
	for _, c := range r.Calls() {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Snapshot returns the stored records.
func (r *Resource[E, F]) Snapshot() []E {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]E{}, r.items...)
}

func (r *Resource[E, F]) record(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}
