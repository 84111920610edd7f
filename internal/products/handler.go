package products

import (
	"log/slog"

	"github.com/smartmart/smartmart-dashboard/internal/crud"
	"github.com/smartmart/smartmart-dashboard/internal/crud/crudhttp"
	"github.com/smartmart/smartmart-dashboard/internal/export"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
	"github.com/smartmart/smartmart-dashboard/internal/view"
)

// Handler serves /products.
type Handler = crudhttp.Handler[retail.Product, retail.ProductFilter, Draft]

// NewHandler wires the product page.
func NewHandler(logger *slog.Logger, service *Service, pages *view.Responder) *Handler {
	return crudhttp.NewHandler(logger, pages, crudhttp.Binding[retail.Product, retail.ProductFilter, Draft]{
		Name:     "products",
		Title:    "Produtos",
		Template: "products.html",
		Empty:    "Nenhum produto encontrado.",
		New: func(notifier crud.Notifier) crudhttp.Instance[retail.Product, retail.ProductFilter, Draft] {
			screen := service.Screen(notifier)
			return crudhttp.Instance[retail.Product, retail.ProductFilter, Draft]{
				Screen:  screen.Screen,
				Rows:    func() any { return screen.Rows() },
				Options: func() any { return screen.Categories.Items() },
				Table:   func() export.Table { return Table(screen.Rows()) },
			}
		},
		ParseFilter: ParseFilter,
		ParseDraft:  ParseDraft,
	})
}

// Table lays the rows out for export.
func Table(rows []Row) export.Table {
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, []any{r.ID, r.Name, r.Brand, r.CategoryName, r.Price, r.Description})
	}
	return export.Table{
		Sheet:  "Produtos",
		Header: []string{"ID", "Nome", "Marca", "Categoria", "Preço", "Descrição"},
		Rows:   out,
	}
}
