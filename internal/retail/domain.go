// Package retail defines the records exchanged with the SmartMart API.
package retail

import "github.com/shopspring/decimal"

func init() {
	// The API expects monetary amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Category groups products.
type Category struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// Product is a catalogue item. CategoryID must reference an existing Category.
type Product struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	CategoryID  int64           `json:"category_id"`
}

// Sale records units of a product sold on a calendar date.
type Sale struct {
	ID         int64           `json:"id,omitempty"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	// Date is an ISO 8601 calendar date (YYYY-MM-DD).
	Date string `json:"date"`
}

// ImportResult is returned by the bulk import endpoints.
type ImportResult struct {
	Message string `json:"message"`
}

// Summary holds the headline dashboard totals.
type Summary struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalSales      int             `json:"total_sales"`
	TotalProducts   int             `json:"total_products"`
	TotalCategories int             `json:"total_categories"`
}

// RevenuePoint is one bar of the monthly revenue chart.
type RevenuePoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// Charts groups chart series of the dashboard payload.
type Charts struct {
	MonthlyRevenue []RevenuePoint `json:"monthly_revenue"`
}

// DashboardData is the read-only aggregate served by /dashboard/revenue.
type DashboardData struct {
	Summary Summary `json:"summary"`
	Charts  Charts  `json:"charts"`
}

// Identity returns the record identifier.
func (c Category) Identity() int64 { return c.ID }

// Identity returns the record identifier.
func (p Product) Identity() int64 { return p.ID }

// Identity returns the record identifier.
func (s Sale) Identity() int64 { return s.ID }
