package retail

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFilterValues(t *testing.T) {
	cases := []struct {
		name   string
		filter ProductFilter
		want   string
	}{
		{name: "neutral", filter: NewProductFilter(), want: ""},
		{name: "zero value", filter: ProductFilter{}, want: ""},
		{name: "brand only", filter: ProductFilter{Brand: "Nike", CategoryID: AllOption}, want: "brand=Nike"},
		{name: "category", filter: ProductFilter{CategoryID: "3"}, want: "category_id=3"},
		{name: "price range", filter: ProductFilter{CategoryID: AllOption, MinPrice: "10", MaxPrice: "99.90"}, want: "max_price=99.90&min_price=10"},
		{name: "blank brand", filter: ProductFilter{Brand: "   ", CategoryID: AllOption}, want: ""},
		{
			name:   "everything",
			filter: ProductFilter{Brand: "Acme", CategoryID: "2", MinPrice: "1", MaxPrice: "5"},
			want:   "brand=Acme&category_id=2&max_price=5&min_price=1",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.filter.Values().Encode()
			assert.Equal(t, tc.want, got)
			assert.NotContains(t, got, "category_id=all")
		})
	}
}

func TestSaleFilterValues(t *testing.T) {
	assert.Equal(t, "", NewSaleFilter().Values().Encode())
	assert.True(t, NewSaleFilter().IsZero())

	f := SaleFilter{ProductID: "7", StartDate: "2025-01-01", EndDate: "2025-01-31"}
	assert.Equal(t, "end_date=2025-01-31&product_id=7&start_date=2025-01-01", f.Values().Encode())

	f = SaleFilter{ProductID: AllOption, EndDate: "2025-02-01"}
	assert.Equal(t, "end_date=2025-02-01", f.Values().Encode())
	assert.False(t, f.IsZero())
}

func TestProductJSONOmitsIDAndUsesNumbers(t *testing.T) {
	p := Product{Name: "Mouse", Price: decimal.RequireFromString("49.90"), Brand: "Logi", CategoryID: 1}
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Mouse","description":"","price":49.9,"brand":"Logi","category_id":1}`, string(raw))
	assert.NotContains(t, string(raw), `"id"`)
}

func TestDashboardDataDecodesNestedPayload(t *testing.T) {
	payload := `{"summary":{"total_revenue":1500.5,"total_sales":12,"total_products":4,"total_categories":2},
		"charts":{"monthly_revenue":[{"date":"2025-01","total":700.25},{"date":"2025-02","total":"800.25"}]}}`
	var data DashboardData
	require.NoError(t, json.Unmarshal([]byte(payload), &data))
	assert.True(t, data.Summary.TotalRevenue.Equal(decimal.RequireFromString("1500.5")))
	assert.Equal(t, 12, data.Summary.TotalSales)
	require.Len(t, data.Charts.MonthlyRevenue, 2)
	assert.Equal(t, "2025-02", data.Charts.MonthlyRevenue[1].Date)
	assert.True(t, data.Charts.MonthlyRevenue[1].Total.Equal(decimal.RequireFromString("800.25")))
}
