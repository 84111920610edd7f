// Package crudhttp serves the list, dialog, import and export routes of a
// resource screen.
package crudhttp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/smartmart/smartmart-dashboard/internal/crud"
	"github.com/smartmart/smartmart-dashboard/internal/export"
	"github.com/smartmart/smartmart-dashboard/internal/platform/httpx"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
	"github.com/smartmart/smartmart-dashboard/internal/shared"
	"github.com/smartmart/smartmart-dashboard/internal/view"
)

const (
	recordMissing = "Registro não encontrado."
	formInvalid   = "Dados do formulário inválidos."
	fileMissing   = "Selecione um arquivo para importar."
)

// Instance is one request's screen plus the resource-specific views of it.
type Instance[E crud.Entity, F retail.Filter, D any] struct {
	Screen *crud.Screen[E, F, D]
	// Rows builds the table rows from the snapshot and lookups.
	Rows func() any
	// Options lists the lookup choices for selects, or nil.
	Options func() any
	// Table builds the export of the snapshot.
	Table func() export.Table
}

// Binding describes one resource page.
type Binding[E crud.Entity, F retail.Filter, D any] struct {
	// Name is the path segment, e.g. "products".
	Name     string
	Title    string
	Template string
	// Empty is the table placeholder for an empty snapshot.
	Empty       string
	New         func(notifier crud.Notifier) Instance[E, F, D]
	ParseFilter func(url.Values) F
	ParseDraft  func(r *http.Request) (D, error)
}

// Page is the template payload of a resource page.
type Page[F retail.Filter, D any] struct {
	Resource string
	Base     string
	Title    string
	Empty    string
	Rows     any
	Options  any
	Filter   F
	// Query is the encoded filter carried by mutating forms.
	Query string
	// ListURL reproduces the current list; the export URLs carry its filter.
	ListURL string
	CSVURL  string
	XLSXURL string
	Dialog  crud.DialogView[D]
	Ops     crud.Ops
	Loaded  bool
}

// Handler serves one resource.
type Handler[E crud.Entity, F retail.Filter, D any] struct {
	logger  *slog.Logger
	pages   *view.Responder
	binding Binding[E, F, D]
}

// NewHandler constructs a resource handler.
func NewHandler[E crud.Entity, F retail.Filter, D any](logger *slog.Logger, pages *view.Responder, binding Binding[E, F, D]) *Handler[E, F, D] {
	return &Handler[E, F, D]{logger: logger, pages: pages, binding: binding}
}

// MountRoutes registers the resource routes.
func (h *Handler[E, F, D]) MountRoutes(r chi.Router) {
	limiter := httprate.Limit(10, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Get("/", h.List)
	r.Get("/clear", h.Clear)
	r.Post("/save", h.Save)
	r.Post("/{id}/delete", h.Delete)
	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Post("/import", h.Import)
		gr.Get("/export.csv", h.export("csv"))
		gr.Get("/export.xlsx", h.export("xlsx"))
	})
}

// List renders the page. With apply=1 the query filter is submitted,
// otherwise the screen mounts unfiltered. dialog=new and dialog=edit&id=N
// open the modal.
func (h *Handler[E, F, D]) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	inst := h.instance(ctx)
	query := r.URL.Query()

	if query.Get("apply") != "" {
		h.logErr(ctx, "load lookups", inst.Screen.LoadLookups(ctx))
		h.logErr(ctx, "submit filter", inst.Screen.Submit(ctx, h.binding.ParseFilter(query)))
	} else {
		h.logErr(ctx, "mount", inst.Screen.Mount(ctx))
	}

	switch query.Get("dialog") {
	case "new":
		inst.Screen.OpenCreate()
	case "edit":
		id, err := httpx.ParseID(query.Get("id"))
		if err != nil || !inst.Screen.OpenEdit(id) {
			shared.NotifierFromContext(ctx).Notify(crud.KindWarning, recordMissing)
		}
	}
	h.render(w, r, inst, http.StatusOK)
}

// Clear reloads the lookups and issues the unfiltered fetch.
func (h *Handler[E, F, D]) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	inst := h.instance(ctx)
	h.logErr(ctx, "load lookups", inst.Screen.LoadLookups(ctx))
	h.logErr(ctx, "clear filter", inst.Screen.Clear(ctx))
	h.render(w, r, inst, http.StatusOK)
}

// Save creates or updates the posted draft. A rejected draft re-renders the
// page with the dialog still open; an unreadable form re-renders the list
// with a warning.
func (h *Handler[E, F, D]) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.RespondError(w, httpx.ErrBadRequest)
		return
	}
	ctx := r.Context()
	inst := h.instance(ctx)
	inst.Screen.UseFilter(h.binding.ParseFilter(httpx.CarriedQuery(r)))
	h.logErr(ctx, "load lookups", inst.Screen.LoadLookups(ctx))

	draft, err := h.binding.ParseDraft(r)
	if err != nil {
		h.logErr(ctx, "parse draft", err)
		shared.NotifierFromContext(ctx).Notify(crud.KindWarning, formInvalid)
		h.render(w, r, inst, http.StatusUnprocessableEntity)
		return
	}
	inst.Screen.Dialog.Restore(draft)

	if err := inst.Screen.Dialog.Save(ctx, inst.Screen.Save); err != nil && !errors.Is(err, crud.ErrInvalid) {
		h.logErr(ctx, "save", err)
	}
	status := http.StatusOK
	if inst.Screen.Dialog.IsOpen() {
		status = http.StatusUnprocessableEntity
	}
	h.render(w, r, inst, status)
}

// Delete removes the record and renders the refreshed list.
func (h *Handler[E, F, D]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.RespondError(w, httpx.ErrBadRequest)
		return
	}
	ctx := r.Context()
	inst := h.instance(ctx)
	inst.Screen.UseFilter(h.binding.ParseFilter(httpx.CarriedQuery(r)))
	h.logErr(ctx, "load lookups", inst.Screen.LoadLookups(ctx))
	h.logErr(ctx, "delete", inst.Screen.Delete(ctx, id))
	h.render(w, r, inst, http.StatusOK)
}

// Import forwards the uploaded spreadsheet. A post without a file only warns.
func (h *Handler[E, F, D]) Import(w http.ResponseWriter, r *http.Request) {
	upload, err := httpx.FormUpload(w, r, "file")
	if err != nil && !errors.Is(err, httpx.ErrNoFile) {
		httpx.RespondError(w, err)
		return
	}

	ctx := r.Context()
	inst := h.instance(ctx)
	inst.Screen.UseFilter(h.binding.ParseFilter(httpx.CarriedQuery(r)))
	h.logErr(ctx, "load lookups", inst.Screen.LoadLookups(ctx))
	if upload == nil {
		shared.NotifierFromContext(ctx).Notify(crud.KindWarning, fileMissing)
		h.render(w, r, inst, http.StatusOK)
		return
	}
	defer upload.Close()
	h.logErr(ctx, "import", inst.Screen.Import(ctx, upload.Filename, upload.File))
	h.render(w, r, inst, http.StatusOK)
}

func (h *Handler[E, F, D]) export(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		inst := h.instance(ctx)
		h.logErr(ctx, "load lookups", inst.Screen.LoadLookups(ctx))
		if err := inst.Screen.Submit(ctx, h.binding.ParseFilter(r.URL.Query())); err != nil {
			h.logger.Error("export fetch failed", slog.String("resource", h.binding.Name), slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
			return
		}
		if err := export.Serve(w, format, h.binding.Name, inst.Table()); err != nil {
			h.logger.Error("export failed", slog.String("resource", h.binding.Name), slog.String("format", format), slog.Any("error", err))
		}
	}
}

func (h *Handler[E, F, D]) instance(ctx context.Context) Instance[E, F, D] {
	notifier := crud.LogNotifier(h.logger, h.binding.Name, shared.NotifierFromContext(ctx))
	return h.binding.New(notifier)
}

// render shows the snapshot. A request that never fetched (a failed save or
// import) fetches once so the table is not empty.
func (h *Handler[E, F, D]) render(w http.ResponseWriter, r *http.Request, inst Instance[E, F, D], status int) {
	ctx := r.Context()
	screen := inst.Screen
	if !screen.Loaded() && screen.Ops().List != crud.Errored {
		h.logErr(ctx, "refresh", screen.Refresh(ctx))
	}

	filter := screen.Filter()
	base := "/" + h.binding.Name
	query := filter.Values().Encode()
	canonical := CanonicalURL(base, filter)
	page := Page[F, D]{
		Resource: h.binding.Name,
		Base:     base,
		Title:    h.binding.Title,
		Empty:    h.binding.Empty,
		Rows:     inst.Rows(),
		Filter:   filter,
		Query:    query,
		ListURL:  canonical,
		CSVURL:   exportURL(base, "csv", query),
		XLSXURL:  exportURL(base, "xlsx", query),
		Dialog:   screen.Dialog.View(),
		Ops:      screen.Ops(),
		Loaded:   screen.Loaded(),
	}
	if inst.Options != nil {
		page.Options = inst.Options()
	}
	h.pages.Page(w, r, h.binding.Template, view.TemplateData{
		Title:        h.binding.Title,
		CurrentPath:  base,
		CanonicalURL: canonical,
		Data:         page,
	}, status)
}

// CanonicalURL is the GET address that reproduces the list for filter.
func CanonicalURL(base string, filter retail.Filter) string {
	values := filter.Values()
	if len(values) == 0 {
		return base
	}
	values.Set("apply", "1")
	return base + "?" + values.Encode()
}

func exportURL(base, format, query string) string {
	u := base + "/export." + format
	if query != "" {
		u += "?" + query
	}
	return u
}

func (h *Handler[E, F, D]) logErr(ctx context.Context, op string, err error) {
	if err == nil || errors.Is(err, crud.ErrStale) {
		return
	}
	h.logger.WarnContext(ctx, "screen operation failed",
		slog.String("resource", h.binding.Name),
		slog.String("op", op),
		slog.Any("error", err),
	)
}
