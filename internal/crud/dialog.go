package crud

import (
	"context"
	"sync"
)

// Mode is the dialog state.
type Mode int

const (
	// Closed means the dialog is hidden.
	Closed Mode = iota
	// Creating edits a record that has no id yet.
	Creating
	// Editing edits an existing record.
	Editing
)

// Dialog is the modal form editing one draft.
type Dialog[D any] struct {
	blank func() D
	idOf  func(D) int64

	mu     sync.Mutex
	mode   Mode
	draft  D
	saving OpState
}

// NewDialog constructs a closed dialog. blank produces the create template.
func NewDialog[D any](blank func() D, idOf func(D) int64) *Dialog[D] {
	return &Dialog[D]{blank: blank, idOf: idOf}
}

// Open shows the dialog and resets the draft. A nil record opens it in create
// mode with a blank draft; otherwise the draft is a copy of *record.
func (d *Dialog[D]) Open(record *D) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if record == nil {
		d.mode = Creating
		d.draft = d.blank()
	} else {
		d.mode = Editing
		d.draft = *record
	}
	d.saving = Idle
}

// Restore reopens the dialog holding a draft the user already edited. The
// mode follows the draft id.
func (d *Dialog[D]) Restore(draft D) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = Creating
	if d.idOf(draft) != 0 {
		d.mode = Editing
	}
	d.draft = draft
}

// Close hides the dialog. The draft is kept until the next Open.
func (d *Dialog[D]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = Closed
}

// Mode reports the current state.
func (d *Dialog[D]) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// IsOpen reports whether the dialog is shown.
func (d *Dialog[D]) IsOpen() bool {
	return d.Mode() != Closed
}

// Draft returns the working copy.
func (d *Dialog[D]) Draft() D {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft
}

// Saving reports the status of the last Save.
func (d *Dialog[D]) Saving() OpState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saving
}

// DialogView is a rendering snapshot of a dialog.
type DialogView[D any] struct {
	Open    bool
	Editing bool
	Draft   D
	Saving  OpState
}

// View snapshots the dialog for a template.
func (d *Dialog[D]) View() DialogView[D] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DialogView[D]{
		Open:    d.mode != Closed,
		Editing: d.mode == Editing,
		Draft:   d.draft,
		Saving:  d.saving,
	}
}

// Save hands the draft to fn. The dialog stays in its current mode whatever
// fn returns; the caller decides whether to close it.
func (d *Dialog[D]) Save(ctx context.Context, fn func(context.Context, D) error) error {
	d.mu.Lock()
	d.saving = InFlight
	draft := d.draft
	d.mu.Unlock()

	err := fn(ctx, draft)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.saving = Errored
		return err
	}
	d.saving = Idle
	return nil
}
