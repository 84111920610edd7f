package products

import (
	"context"

	"github.com/smartmart/smartmart-dashboard/internal/crud"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
)

var messages = crud.Messages{
	ListFailed: "Erro ao carregar produtos.",
	Created:    "Produto criado.",
	Updated:    "Produto atualizado.",
	SaveFailed: "Erro ao salvar produto.",
	Removed:    "Produto removido.",
	Imported:   "Dados importados com sucesso.",
}

// Screen is the product list plus the category lookup its rows and dialog
// depend on.
type Screen struct {
	*crud.Screen[retail.Product, retail.ProductFilter, Draft]
	Categories *crud.Table[retail.Category]
}

// Row is one line of the product table.
type Row struct {
	retail.Product
	CategoryName string
}

// Service builds product screens.
type Service struct {
	products   crud.Resource[retail.Product, retail.ProductFilter]
	categories crud.Resource[retail.Category, retail.NoFilter]
	ordering   crud.Ordering
}

// NewService constructs a Service.
func NewService(products crud.Resource[retail.Product, retail.ProductFilter], categories crud.Resource[retail.Category, retail.NoFilter], ordering crud.Ordering) *Service {
	return &Service{products: products, categories: categories, ordering: ordering}
}

// Screen returns a fresh screen reporting to notifier.
func (s *Service) Screen(notifier crud.Notifier) *Screen {
	categories := crud.NewTable(crud.TableConfig[retail.Category]{
		Load: func(ctx context.Context) ([]retail.Category, error) {
			return s.categories.List(ctx, retail.NoFilter{})
		},
		ID:       func(c retail.Category) int64 { return c.ID },
		Label:    func(c retail.Category) string { return c.Name },
		Fallback: "Cat ID: %d",
		Failure:  "Erro ao carregar categorias.",
	}, notifier)

	schema := crud.Schema[retail.Product, retail.ProductFilter, Draft]{
		Messages: messages,
		Neutral:  retail.NewProductFilter,
		// New products start on the first category.
		Blank:   func() Draft { return Draft{CategoryID: categories.First()} },
		Draft:   FromEntity,
		DraftID: func(d Draft) int64 { return d.ID },
		Payload: Payload,
	}
	return &Screen{
		Screen: crud.NewScreen(s.products, schema, notifier,
			crud.WithLookups(categories),
			crud.WithOrdering(s.ordering),
		),
		Categories: categories,
	}
}

// Rows joins the snapshot with category names.
func (s *Screen) Rows() []Row {
	items := s.Items()
	rows := make([]Row, 0, len(items))
	for _, p := range items {
		rows = append(rows, Row{Product: p, CategoryName: s.Categories.Name(p.CategoryID)})
	}
	return rows
}
