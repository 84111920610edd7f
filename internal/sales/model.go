// Package sales is the sale management page.
package sales

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smartmart/smartmart-dashboard/internal/platform/httpx"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
	"github.com/smartmart/smartmart-dashboard/internal/shared"
)

// Draft is the sale being edited. Quantity and total stay text until save.
type Draft struct {
	ID         int64
	ProductID  int64  `validate:"gt=0"`
	Date       string `validate:"required,isodate"`
	Quantity   string `validate:"required,number"`
	TotalPrice string `validate:"required,numeric"`
}

// FromEntity seeds an edit draft.
func FromEntity(s retail.Sale) Draft {
	return Draft{
		ID:         s.ID,
		ProductID:  s.ProductID,
		Date:       s.Date,
		Quantity:   strconv.Itoa(s.Quantity),
		TotalPrice: s.TotalPrice.String(),
	}
}

// ParseDraft reads the dialog form.
func ParseDraft(r *http.Request) (Draft, error) {
	id, err := httpx.FormInt64(r, "id")
	if err != nil {
		return Draft{}, err
	}
	productID, err := httpx.FormInt64(r, "product_id")
	if err != nil {
		return Draft{}, err
	}
	return Draft{
		ID:         id,
		ProductID:  productID,
		Date:       strings.TrimSpace(r.PostFormValue("date")),
		Quantity:   strings.TrimSpace(r.PostFormValue("quantity")),
		TotalPrice: r.PostFormValue("total_price"),
	}, nil
}

// ParseFilter reads the filter panel fields.
func ParseFilter(values url.Values) retail.SaleFilter {
	filter := retail.NewSaleFilter()
	if product := strings.TrimSpace(values.Get("product_id")); product != "" {
		filter.ProductID = product
	}
	filter.StartDate = strings.TrimSpace(values.Get("start_date"))
	filter.EndDate = strings.TrimSpace(values.Get("end_date"))
	return filter
}

// Payload validates d and coerces it into the wire entity.
func Payload(d Draft) (retail.Sale, error) {
	d.Quantity = strings.TrimSpace(d.Quantity)
	d.TotalPrice = shared.DecimalText(d.TotalPrice)
	if err := d.Validate(); err != nil {
		return retail.Sale{}, err
	}
	quantity, err := strconv.Atoi(d.Quantity)
	if err != nil || quantity < 1 {
		return retail.Sale{}, invalidQuantity()
	}
	total, err := decimal.NewFromString(d.TotalPrice)
	if err != nil {
		return retail.Sale{}, invalidTotal()
	}
	return retail.Sale{
		ID:         d.ID,
		ProductID:  d.ProductID,
		Quantity:   quantity,
		TotalPrice: total,
		Date:       strings.TrimSpace(d.Date),
	}, nil
}
