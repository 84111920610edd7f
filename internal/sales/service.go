package sales

import (
	"context"
	"time"

	"github.com/smartmart/smartmart-dashboard/internal/crud"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
	"github.com/smartmart/smartmart-dashboard/internal/shared"
)

var messages = crud.Messages{
	ListFailed: "Erro ao carregar vendas.",
	Created:    "Venda criada.",
	Updated:    "Venda atualizada.",
	SaveFailed: "Erro ao salvar venda.",
	Removed:    "Venda removida.",
	Imported:   "Vendas importadas com sucesso.",
}

// Screen is the sale list plus the product lookup.
type Screen struct {
	*crud.Screen[retail.Sale, retail.SaleFilter, Draft]
	Products *crud.Table[retail.Product]
}

// Row is one line of the sales table.
type Row struct {
	retail.Sale
	ProductName string
}

// Service builds sale screens.
type Service struct {
	sales    crud.Resource[retail.Sale, retail.SaleFilter]
	products crud.Resource[retail.Product, retail.ProductFilter]
	ordering crud.Ordering
	now      func() time.Time
}

// NewService constructs a Service.
func NewService(sales crud.Resource[retail.Sale, retail.SaleFilter], products crud.Resource[retail.Product, retail.ProductFilter], ordering crud.Ordering) *Service {
	return &Service{sales: sales, products: products, ordering: ordering, now: time.Now}
}

// Screen returns a fresh screen reporting to notifier.
func (s *Service) Screen(notifier crud.Notifier) *Screen {
	products := crud.NewTable(crud.TableConfig[retail.Product]{
		Load: func(ctx context.Context) ([]retail.Product, error) {
			return s.products.List(ctx, retail.NewProductFilter())
		},
		ID:       func(p retail.Product) int64 { return p.ID },
		Label:    func(p retail.Product) string { return p.Name },
		Fallback: "Prod ID: %d",
		Failure:  "Erro ao carregar lista de produtos.",
	}, notifier)

	schema := crud.Schema[retail.Sale, retail.SaleFilter, Draft]{
		Messages: messages,
		Neutral:  retail.NewSaleFilter,
		Blank: func() Draft {
			return Draft{ProductID: products.First(), Date: s.now().UTC().Format(shared.ISODate)}
		},
		Draft:   FromEntity,
		DraftID: func(d Draft) int64 { return d.ID },
		Payload: Payload,
	}
	return &Screen{
		Screen: crud.NewScreen(s.sales, schema, notifier,
			crud.WithLookups(products),
			crud.WithOrdering(s.ordering),
		),
		Products: products,
	}
}

// Rows joins the snapshot with product names.
func (s *Screen) Rows() []Row {
	items := s.Items()
	rows := make([]Row, 0, len(items))
	for _, sale := range items {
		rows = append(rows, Row{Sale: sale, ProductName: s.Products.Name(sale.ProductID)})
	}
	return rows
}
