package crud

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/smartmart/smartmart-dashboard/internal/apiclient"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
)

// ErrStale reports a list response that arrived after a newer one was applied.
var ErrStale = errors.New("crud: stale list response")

// Ordering decides which of two overlapping list responses ends up in the
// snapshot.
type Ordering string

const (
	// LastRequestWins drops a response older than the one already applied.
	LastRequestWins Ordering = "last_request"
	// LastResponseWins applies responses in arrival order.
	LastResponseWins Ordering = "last_response"
)

// ParseOrdering validates a configured ordering. Empty selects LastRequestWins.
func ParseOrdering(raw string) (Ordering, error) {
	switch Ordering(strings.ToLower(strings.TrimSpace(raw))) {
	case "", LastRequestWins:
		return LastRequestWins, nil
	case LastResponseWins:
		return LastResponseWins, nil
	default:
		return "", fmt.Errorf("crud: unknown response ordering %q", raw)
	}
}

// Entity is a backend record with a server-assigned id.
type Entity interface {
	Identity() int64
}

// Resource is the backend collection a screen drives.
type Resource[E Entity, F retail.Filter] interface {
	Name() string
	List(ctx context.Context, filter F) ([]E, error)
	Create(ctx context.Context, entity E) (E, error)
	Update(ctx context.Context, id int64, entity E) (E, error)
	Remove(ctx context.Context, id int64) error
	Import(ctx context.Context, filename string, content io.Reader) (retail.ImportResult, error)
}

// Messages are the user-facing texts of one resource.
type Messages struct {
	ListFailed string
	Created    string
	Updated    string
	SaveFailed string
	Removed    string
	Imported   string
}

const (
	deleteFailedPrefix = "Erro: "
	importFailed       = "Erro ao importar CSV."
)

// Schema binds a resource's draft type to its entity and filter.
type Schema[E Entity, F retail.Filter, D any] struct {
	Messages Messages
	// Neutral is the filter with every field reset.
	Neutral func() F
	// Blank is the create template.
	Blank func() D
	// Draft seeds an edit draft from a stored record.
	Draft func(E) D
	// DraftID is 0 for drafts that were never saved.
	DraftID func(D) int64
	// Payload validates the draft and coerces it into the wire entity. It
	// returns a *ValidationError on the first failing field.
	Payload func(D) (E, error)
}

// Option customises a Screen.
type Option func(*options)

type options struct {
	lookups  []Lookup
	ordering Ordering
}

// WithLookups registers reference tables loaded on Mount and LoadLookups.
func WithLookups(lookups ...Lookup) Option {
	return func(o *options) { o.lookups = append(o.lookups, lookups...) }
}

// WithOrdering selects how overlapping list responses are applied.
func WithOrdering(ordering Ordering) Option {
	return func(o *options) {
		if ordering != "" {
			o.ordering = ordering
		}
	}
}

// Screen owns the list snapshot of one resource, its filter and its dialog.
type Screen[E Entity, F retail.Filter, D any] struct {
	resource Resource[E, F]
	schema   Schema[E, F, D]
	notifier Notifier
	lookups  []Lookup
	ordering Ordering

	// Dialog is the create/edit modal.
	Dialog *Dialog[D]

	mu      sync.Mutex
	items   []E
	filter  F
	loaded  bool
	issued  uint64
	applied uint64
	pending int
	ops     Ops
}

// NewScreen constructs a screen with an empty snapshot and a neutral filter.
func NewScreen[E Entity, F retail.Filter, D any](resource Resource[E, F], schema Schema[E, F, D], notifier Notifier, opts ...Option) *Screen[E, F, D] {
	cfg := options{ordering: LastRequestWins}
	for _, opt := range opts {
		opt(&cfg)
	}
	if notifier == nil {
		notifier = Discard
	}
	return &Screen[E, F, D]{
		resource: resource,
		schema:   schema,
		notifier: notifier,
		lookups:  cfg.lookups,
		ordering: cfg.ordering,
		Dialog:   NewDialog(schema.Blank, schema.DraftID),
		items:    make([]E, 0),
		filter:   schema.Neutral(),
	}
}

// Mount loads the unfiltered list and every lookup concurrently.
func (s *Screen[E, F, D]) Mount(ctx context.Context) error {
	s.mu.Lock()
	s.filter = s.schema.Neutral()
	filter := s.filter
	s.mu.Unlock()

	var g errgroup.Group
	for _, lookup := range s.lookups {
		g.Go(func() error { return lookup.Load(ctx) })
	}
	g.Go(func() error { return s.fetch(ctx, filter) })
	return g.Wait()
}

// LoadLookups reloads the reference tables only.
func (s *Screen[E, F, D]) LoadLookups(ctx context.Context) error {
	var g errgroup.Group
	for _, lookup := range s.lookups {
		g.Go(func() error { return lookup.Load(ctx) })
	}
	return g.Wait()
}

// Submit stores filter and fetches with it.
func (s *Screen[E, F, D]) Submit(ctx context.Context, filter F) error {
	s.mu.Lock()
	s.filter = filter
	s.mu.Unlock()
	return s.fetch(ctx, filter)
}

// Clear resets the filter and issues its own unfiltered fetch.
func (s *Screen[E, F, D]) Clear(ctx context.Context) error {
	neutral := s.schema.Neutral()
	s.mu.Lock()
	s.filter = neutral
	s.mu.Unlock()
	return s.fetch(ctx, s.schema.Neutral())
}

// UseFilter sets the filter that later refreshes apply, without fetching.
func (s *Screen[E, F, D]) UseFilter(filter F) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
}

// Refresh re-fetches with the current filter.
func (s *Screen[E, F, D]) Refresh(ctx context.Context) error {
	return s.fetch(ctx, s.Filter())
}

// Delete removes id and re-fetches whatever the outcome.
func (s *Screen[E, F, D]) Delete(ctx context.Context, id int64) error {
	s.setOp(func(o *Ops) { o.Delete = InFlight })
	err := s.resource.Remove(ctx, id)
	if err != nil {
		s.setOp(func(o *Ops) { o.Delete = Errored })
		s.notifier.Notify(KindError, deleteFailedPrefix+apiclient.Detail(err))
		err = fmt.Errorf("delete %s %d: %w", s.resource.Name(), id, err)
	} else {
		s.setOp(func(o *Ops) { o.Delete = Idle })
		s.notifier.Notify(KindSuccess, s.schema.Messages.Removed)
	}
	return errors.Join(err, s.Refresh(ctx))
}

// Save validates draft and creates or updates it. On success the dialog is
// closed and the list re-fetched; on failure the dialog keeps the draft.
func (s *Screen[E, F, D]) Save(ctx context.Context, draft D) error {
	entity, err := s.schema.Payload(draft)
	if err != nil {
		var invalid *ValidationError
		if errors.As(err, &invalid) {
			s.notifier.Notify(invalid.Kind, invalid.Message)
		} else {
			s.notifier.Notify(KindWarning, err.Error())
		}
		return err
	}

	id := s.schema.DraftID(draft)
	success := s.schema.Messages.Created
	if id == 0 {
		_, err = s.resource.Create(ctx, entity)
	} else {
		_, err = s.resource.Update(ctx, id, entity)
		success = s.schema.Messages.Updated
	}
	if err != nil {
		s.notifier.Notify(KindError, s.schema.Messages.SaveFailed)
		return fmt.Errorf("save %s: %w", s.resource.Name(), err)
	}

	s.notifier.Notify(KindSuccess, success)
	s.Dialog.Close()
	return s.Refresh(ctx)
}

// Import forwards a spreadsheet and re-fetches on success.
func (s *Screen[E, F, D]) Import(ctx context.Context, filename string, content io.Reader) error {
	s.setOp(func(o *Ops) { o.Import = InFlight })
	result, err := s.resource.Import(ctx, filename, content)
	if err != nil {
		s.setOp(func(o *Ops) { o.Import = Errored })
		s.notifier.Notify(KindError, importFailed)
		return fmt.Errorf("import %s: %w", s.resource.Name(), err)
	}
	s.setOp(func(o *Ops) { o.Import = Idle })
	message := strings.TrimSpace(result.Message)
	if message == "" {
		message = s.schema.Messages.Imported
	}
	s.notifier.Notify(KindSuccess, message)
	return s.Refresh(ctx)
}

// OpenCreate opens the dialog with a blank draft.
func (s *Screen[E, F, D]) OpenCreate() {
	s.Dialog.Open(nil)
}

// OpenEdit opens the dialog on the snapshot record id. It reports false when
// the record is not in the snapshot.
func (s *Screen[E, F, D]) OpenEdit(id int64) bool {
	record, ok := s.Find(id)
	if !ok {
		return false
	}
	draft := s.schema.Draft(record)
	s.Dialog.Open(&draft)
	return true
}

// Find looks id up in the snapshot.
func (s *Screen[E, F, D]) Find(id int64) (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Identity() == id {
			return item, true
		}
	}
	var zero E
	return zero, false
}

// Items returns a copy of the snapshot.
func (s *Screen[E, F, D]) Items() []E {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]E, len(s.items))
	copy(out, s.items)
	return out
}

// Filter returns the active filter.
func (s *Screen[E, F, D]) Filter() F {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Loaded reports whether any list response has been applied.
func (s *Screen[E, F, D]) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Ops reports the per-operation status.
func (s *Screen[E, F, D]) Ops() Ops {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops
}

func (s *Screen[E, F, D]) setOp(fn func(*Ops)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.ops)
}

// fetch replaces the snapshot with one list response. Under LastRequestWins a
// response issued before the applied one is dropped with ErrStale, failures
// included.
func (s *Screen[E, F, D]) fetch(ctx context.Context, filter F) error {
	s.mu.Lock()
	s.issued++
	ticket := s.issued
	s.pending++
	s.ops.List = InFlight
	s.mu.Unlock()

	items, err := s.resource.List(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending--
	if s.ordering == LastRequestWins && ticket < s.applied {
		s.settle(Idle)
		return ErrStale
	}
	if err != nil {
		s.settle(Errored)
		s.notifier.Notify(KindError, s.schema.Messages.ListFailed)
		return fmt.Errorf("list %s: %w", s.resource.Name(), err)
	}
	if items == nil {
		items = make([]E, 0)
	}
	s.items = items
	s.applied = ticket
	s.loaded = true
	s.settle(Idle)
	return nil
}

func (s *Screen[E, F, D]) settle(state OpState) {
	if s.pending > 0 {
		s.ops.List = InFlight
		return
	}
	s.ops.List = state
}
