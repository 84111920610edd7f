package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/smartmart/smartmart-dashboard/internal/retail"
)

// Dashboard reads the pre-aggregated dashboard payload.
type Dashboard struct {
	client *Client
}

// NewDashboard constructs the dashboard reader.
func NewDashboard(client *Client) *Dashboard {
	return &Dashboard{client: client}
}

// Revenue fetches GET /dashboard/revenue.
func (d *Dashboard) Revenue(ctx context.Context) (retail.DashboardData, error) {
	var data retail.DashboardData
	err := d.client.fetchJSON(ctx, call{
		resource: "dashboard",
		method:   http.MethodGet,
		url:      d.client.endpoint("/dashboard/revenue", nil),
	}, &data, false)
	if err != nil {
		return retail.DashboardData{}, fmt.Errorf("dashboard revenue: %w", err)
	}
	return data, nil
}
