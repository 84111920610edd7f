package crud

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDraft struct {
	ID         int64
	Name       string
	CategoryID int64
}

func newTestDialog(first int64) *Dialog[testDraft] {
	return NewDialog(func() testDraft { return testDraft{CategoryID: first} }, func(d testDraft) int64 { return d.ID })
}

func TestDialogResetsOnOpen(t *testing.T) {
	dialog := newTestDialog(4)
	assert.Equal(t, Closed, dialog.Mode())

	dialog.Open(nil)
	assert.Equal(t, Creating, dialog.Mode())
	assert.Equal(t, testDraft{CategoryID: 4}, dialog.Draft())

	dialog.Restore(testDraft{Name: "rascunho", CategoryID: 2})
	dialog.Close()
	assert.False(t, dialog.IsOpen())
	assert.Equal(t, "rascunho", dialog.Draft().Name, "closing keeps the draft")

	record := testDraft{ID: 5, Name: "X", CategoryID: 1}
	dialog.Open(&record)
	assert.Equal(t, Editing, dialog.Mode())
	assert.Equal(t, record, dialog.Draft())

	dialog.Restore(testDraft{ID: 5, Name: "alterado", CategoryID: 1})
	dialog.Close()
	dialog.Open(&record)
	assert.Equal(t, record, dialog.Draft(), "reopening the same record shows fresh data")

	dialog.Open(nil)
	assert.Equal(t, testDraft{CategoryID: 4}, dialog.Draft())
}

func TestDialogOpenCopiesRecord(t *testing.T) {
	dialog := newTestDialog(0)
	record := testDraft{ID: 1, Name: "A"}
	dialog.Open(&record)
	record.Name = "B"
	assert.Equal(t, "A", dialog.Draft().Name)
}

func TestDialogRestoreFollowsDraftID(t *testing.T) {
	dialog := newTestDialog(0)
	dialog.Restore(testDraft{Name: "novo"})
	assert.Equal(t, Creating, dialog.Mode())
	dialog.Restore(testDraft{ID: 9})
	assert.Equal(t, Editing, dialog.Mode())
}

func TestDialogSaveAlwaysLeavesInFlight(t *testing.T) {
	dialog := newTestDialog(0)
	dialog.Open(nil)

	var during OpState
	var got testDraft
	err := dialog.Save(context.Background(), func(_ context.Context, d testDraft) error {
		during = dialog.Saving()
		got = d
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, InFlight, during)
	assert.Equal(t, Idle, dialog.Saving())
	assert.Equal(t, testDraft{}, got)
	assert.True(t, dialog.IsOpen(), "the dialog never closes itself")

	boom := errors.New("boom")
	err = dialog.Save(context.Background(), func(context.Context, testDraft) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Errored, dialog.Saving())
	assert.True(t, dialog.IsOpen())
}

func TestOpStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "in_flight", InFlight.String())
	assert.Equal(t, "errored", Errored.String())
	assert.True(t, InFlight.Busy())
	assert.False(t, Errored.Busy())
}

func TestValidationErrorMatchesErrInvalid(t *testing.T) {
	err := error(Reject("CategoryID", "Selecione uma categoria válida."))
	assert.ErrorIs(t, err, ErrInvalid)
	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, KindError, invalid.Kind)
	assert.Equal(t, KindWarning, Warn("Name", "x").Kind)
}
