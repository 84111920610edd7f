package sales

import (
	"log/slog"

	"github.com/smartmart/smartmart-dashboard/internal/crud"
	"github.com/smartmart/smartmart-dashboard/internal/crud/crudhttp"
	"github.com/smartmart/smartmart-dashboard/internal/export"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
	"github.com/smartmart/smartmart-dashboard/internal/view"
)

// Handler serves /sales.
type Handler = crudhttp.Handler[retail.Sale, retail.SaleFilter, Draft]

// NewHandler wires the sales page.
func NewHandler(logger *slog.Logger, service *Service, pages *view.Responder) *Handler {
	return crudhttp.NewHandler(logger, pages, crudhttp.Binding[retail.Sale, retail.SaleFilter, Draft]{
		Name:     "sales",
		Title:    "Vendas",
		Template: "sales.html",
		Empty:    "Nenhuma venda encontrada.",
		New: func(notifier crud.Notifier) crudhttp.Instance[retail.Sale, retail.SaleFilter, Draft] {
			screen := service.Screen(notifier)
			return crudhttp.Instance[retail.Sale, retail.SaleFilter, Draft]{
				Screen:  screen.Screen,
				Rows:    func() any { return screen.Rows() },
				Options: func() any { return screen.Products.Items() },
				Table:   func() export.Table { return Table(screen.Rows()) },
			}
		},
		ParseFilter: ParseFilter,
		ParseDraft:  ParseDraft,
	})
}

// Table lays the rows out for export. Dates keep the ISO layout.
func Table(rows []Row) export.Table {
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, []any{r.ID, r.Date, r.ProductName, r.Quantity, r.TotalPrice})
	}
	return export.Table{
		Sheet:  "Vendas",
		Header: []string{"ID", "Data", "Produto", "Quantidade", "Total"},
		Rows:   out,
	}
}
