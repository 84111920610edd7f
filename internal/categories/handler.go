package categories

import (
	"log/slog"
	"net/url"

	"github.com/smartmart/smartmart-dashboard/internal/crud"
	"github.com/smartmart/smartmart-dashboard/internal/crud/crudhttp"
	"github.com/smartmart/smartmart-dashboard/internal/export"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
	"github.com/smartmart/smartmart-dashboard/internal/view"
)

// Handler serves /categories.
type Handler = crudhttp.Handler[retail.Category, retail.NoFilter, Draft]

// NewHandler wires the category page.
func NewHandler(logger *slog.Logger, service *Service, pages *view.Responder) *Handler {
	return crudhttp.NewHandler(logger, pages, crudhttp.Binding[retail.Category, retail.NoFilter, Draft]{
		Name:     "categories",
		Title:    "Categorias",
		Template: "categories.html",
		Empty:    "Nenhuma categoria encontrada.",
		New: func(notifier crud.Notifier) crudhttp.Instance[retail.Category, retail.NoFilter, Draft] {
			screen := service.Screen(notifier)
			return crudhttp.Instance[retail.Category, retail.NoFilter, Draft]{
				Screen: screen,
				Rows:   func() any { return screen.Items() },
				Table:  func() export.Table { return Table(screen.Items()) },
			}
		},
		ParseFilter: func(url.Values) retail.NoFilter { return retail.NoFilter{} },
		ParseDraft:  ParseDraft,
	})
}

// Table lays the snapshot out for export.
func Table(items []retail.Category) export.Table {
	rows := make([][]any, 0, len(items))
	for _, c := range items {
		rows = append(rows, []any{c.ID, c.Name})
	}
	return export.Table{Sheet: "Categorias", Header: []string{"ID", "Nome"}, Rows: rows}
}
