// Package dashboard is the read-only summary page.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/smartmart/smartmart-dashboard/internal/dashboard/svg"
	"github.com/smartmart/smartmart-dashboard/internal/retail"
	"github.com/smartmart/smartmart-dashboard/internal/view"
)

// LoadFailed is shown in place of the cards when the payload cannot be fetched.
const LoadFailed = "Erro ao carregar dados."

// Source fetches the pre-aggregated dashboard payload.
type Source interface {
	Revenue(ctx context.Context) (retail.DashboardData, error)
}

// Card is one headline metric.
type Card struct {
	Label string
	Value string
	Icon  string
}

// ViewModel is everything the dashboard templates need.
type ViewModel struct {
	Error  string
	Cards  []Card
	Chart  template.HTML
	Series []retail.RevenuePoint
	Data   retail.DashboardData
	// PDF is set when the PDF export route is mounted.
	PDF bool
}

// Service loads the dashboard once per visit.
type Service struct {
	source Source
}

// NewService constructs a Service.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Load fetches the payload and builds the view model. On failure the
// returned model carries only the error text.
func (s *Service) Load(ctx context.Context) (ViewModel, error) {
	data, err := s.source.Revenue(ctx)
	if err != nil {
		return ViewModel{Error: LoadFailed}, err
	}
	return Build(data)
}

// Build turns a payload into cards and the monthly revenue chart.
func Build(data retail.DashboardData) (ViewModel, error) {
	summary := data.Summary
	vm := ViewModel{
		Data:   data,
		Series: data.Charts.MonthlyRevenue,
		Cards: []Card{
			{Label: "Receita Total", Value: view.BRL(summary.TotalRevenue), Icon: "money"},
			{Label: "Total de Vendas", Value: view.Count(summary.TotalSales), Icon: "cart"},
			{Label: "Produtos", Value: view.Count(summary.TotalProducts), Icon: "box"},
			{Label: "Categorias", Value: view.Count(summary.TotalCategories), Icon: "tag"},
		},
	}

	values := make([]float64, len(vm.Series))
	labels := make([]string, len(vm.Series))
	for i, point := range vm.Series {
		values[i], _ = point.Total.Float64()
		labels[i] = point.Date
	}
	chart, err := svg.Bars(0, 0, values, labels, svg.BarOpts{
		Title:       "Receita Mensal",
		Description: "Receita total por mês",
		SeriesLabel: "Receita",
	})
	if err != nil && !errors.Is(err, svg.ErrEmptySeries) {
		return vm, fmt.Errorf("dashboard chart: %w", err)
	}
	vm.Chart = chart
	return vm, nil
}
