// Package products is the product management page.
package products

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smartmart/smartmart-dashboard/internal/platform/httpx"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
	"github.com/smartmart/smartmart-dashboard/internal/shared"
)

// Draft is the product being edited. Price stays text until save.
type Draft struct {
	ID          int64
	Name        string `validate:"notblank"`
	Brand       string `validate:"notblank"`
	CategoryID  int64  `validate:"gt=0"`
	Price       string `validate:"required,numeric"`
	Description string
}

// FromEntity seeds an edit draft.
func FromEntity(p retail.Product) Draft {
	return Draft{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		CategoryID:  p.CategoryID,
		Price:       p.Price.String(),
		Description: p.Description,
	}
}

// ParseDraft reads the dialog form.
func ParseDraft(r *http.Request) (Draft, error) {
	id, err := httpx.FormInt64(r, "id")
	if err != nil {
		return Draft{}, err
	}
	categoryID, err := httpx.FormInt64(r, "category_id")
	if err != nil {
		return Draft{}, err
	}
	return Draft{
		ID:          id,
		Name:        r.PostFormValue("name"),
		Brand:       r.PostFormValue("brand"),
		CategoryID:  categoryID,
		Price:       r.PostFormValue("price"),
		Description: r.PostFormValue("description"),
	}, nil
}

// ParseFilter reads the filter panel fields.
func ParseFilter(values url.Values) retail.ProductFilter {
	filter := retail.NewProductFilter()
	filter.Brand = strings.TrimSpace(values.Get("brand"))
	if category := strings.TrimSpace(values.Get("category_id")); category != "" {
		filter.CategoryID = category
	}
	filter.MinPrice = strings.TrimSpace(values.Get("min_price"))
	filter.MaxPrice = strings.TrimSpace(values.Get("max_price"))
	return filter
}

// Payload validates d and coerces it into the wire entity.
func Payload(d Draft) (retail.Product, error) {
	d.Price = shared.DecimalText(d.Price)
	if err := d.Validate(); err != nil {
		return retail.Product{}, err
	}
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return retail.Product{}, invalidPrice()
	}
	return retail.Product{
		ID:          d.ID,
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Price:       price,
		Brand:       strings.TrimSpace(d.Brand),
		CategoryID:  d.CategoryID,
	}, nil
}
