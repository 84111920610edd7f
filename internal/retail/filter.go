package retail

import (
	"net/url"
	"strings"
)

// AllOption is the select value meaning "no restriction".
const AllOption = "all"

// Filter translates list criteria into query parameters.
type Filter interface {
	Values() url.Values
}

// NoFilter is used by resources whose list endpoint takes no criteria.
type NoFilter struct{}

// Values implements Filter.
func (NoFilter) Values() url.Values { return url.Values{} }

// ProductFilter holds the product list criteria as typed by the operator.
type ProductFilter struct {
	Brand      string
	CategoryID string
	MinPrice   string
	MaxPrice   string
}

// NewProductFilter returns the neutral product filter.
func NewProductFilter() ProductFilter {
	return ProductFilter{CategoryID: AllOption}
}

// Values implements Filter. Empty fields and the "all" sentinel are omitted.
func (f ProductFilter) Values() url.Values {
	v := url.Values{}
	addText(v, "brand", f.Brand)
	addChoice(v, "category_id", f.CategoryID)
	addText(v, "min_price", f.MinPrice)
	addText(v, "max_price", f.MaxPrice)
	return v
}

// IsZero reports whether no criterion is set.
func (f ProductFilter) IsZero() bool { return len(f.Values()) == 0 }

// SaleFilter holds the sale list criteria.
type SaleFilter struct {
	ProductID string
	StartDate string
	EndDate   string
}

// NewSaleFilter returns the neutral sale filter.
func NewSaleFilter() SaleFilter {
	return SaleFilter{ProductID: AllOption}
}

// Values implements Filter.
func (f SaleFilter) Values() url.Values {
	v := url.Values{}
	addChoice(v, "product_id", f.ProductID)
	addText(v, "start_date", f.StartDate)
	addText(v, "end_date", f.EndDate)
	return v
}

// IsZero reports whether no criterion is set.
func (f SaleFilter) IsZero() bool { return len(f.Values()) == 0 }

func addText(v url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		v.Set(key, value)
	}
}

func addChoice(v url.Values, key, value string) {
	value = strings.TrimSpace(value)
	if value == "" || value == AllOption {
		return
	}
	v.Set(key, value)
}
