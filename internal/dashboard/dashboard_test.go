package dashboard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmart/smartmart-dashboard/internal/retail"
	"github.com/smartmart/smartmart-dashboard/internal/shared"
	"github.com/smartmart/smartmart-dashboard/internal/view"
)

type stubSource struct {
	data retail.DashboardData
	err  error
}

func (s stubSource) Revenue(context.Context) (retail.DashboardData, error) {
	return s.data, s.err
}

type stubPDF struct {
	enabled bool
	html    []byte
	err     error
}

func (s *stubPDF) Enabled() bool { return s.enabled }

func (s *stubPDF) RenderHTML(_ context.Context, html []byte) ([]byte, error) {
	s.html = html
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-1.7"), nil
}

func sampleData() retail.DashboardData {
	return retail.DashboardData{
		Summary: retail.Summary{
			TotalRevenue:    decimal.RequireFromString("1500.25"),
			TotalSales:      12,
			TotalProducts:   4,
			TotalCategories: 2,
		},
		Charts: retail.Charts{MonthlyRevenue: []retail.RevenuePoint{
			{Date: "2026-01", Total: decimal.RequireFromString("500")},
			{Date: "2026-02", Total: decimal.RequireFromString("1000.25")},
		}},
	}
}

func newTestHandler(t *testing.T, source Source, pdf PDFRenderer) http.Handler {
	t.Helper()
	engine, err := view.NewEngine()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, NewService(source), view.NewResponder(logger, engine, shared.NewCSRFManager("s")), engine, pdf)
	h.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	r := chi.NewRouter()
	h.MountRoutes(r)
	return r
}

func TestBuildCards(t *testing.T) {
	vm, err := Build(sampleData())
	require.NoError(t, err)

	require.Len(t, vm.Cards, 4)
	assert.Equal(t, "Receita Total", vm.Cards[0].Label)
	assert.Contains(t, vm.Cards[0].Value, "1.500,25")
	assert.Equal(t, "12", vm.Cards[1].Value)
	assert.Equal(t, "Categorias", vm.Cards[3].Label)
	assert.Contains(t, string(vm.Chart), "2026-02")
}

func TestBuildWithoutSeries(t *testing.T) {
	data := sampleData()
	data.Charts.MonthlyRevenue = nil

	vm, err := Build(data)
	require.NoError(t, err)
	assert.Empty(t, vm.Chart)
	assert.Len(t, vm.Cards, 4)
}

func TestLoadFailure(t *testing.T) {
	svc := NewService(stubSource{err: errors.New("boom")})
	vm, err := svc.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, LoadFailed, vm.Error)
	assert.Empty(t, vm.Cards)
}

func TestWriteCSV(t *testing.T) {
	vm, err := Build(sampleData())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, vm))
	want := strings.Join([]string{
		"Métrica,Valor",
		"Receita Total,1500.25",
		"Total de Vendas,12",
		"Produtos,4",
		"Categorias,2",
		"",
		"Mês,Receita",
		"2026-01,500.00",
		"2026-02,1000.25",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestExportCSVRoute(t *testing.T) {
	srv := newTestHandler(t, stubSource{data: sampleData()}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/export.csv", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="dashboard-20260301.csv"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Métrica,Valor\n"))
}

func TestExportCSVUpstreamFailure(t *testing.T) {
	srv := newTestHandler(t, stubSource{err: errors.New("down")}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/export.csv", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestPDFRouteOnlyWhenEnabled(t *testing.T) {
	srv := newTestHandler(t, stubSource{data: sampleData()}, &stubPDF{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/pdf", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportPDF(t *testing.T) {
	pdf := &stubPDF{enabled: true}
	srv := newTestHandler(t, stubSource{data: sampleData()}, pdf)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/pdf", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.7", rec.Body.String())
	assert.Contains(t, string(pdf.html), "Receita Total")
	assert.Contains(t, string(pdf.html), "<svg")
}

func TestExportPDFRendererFailure(t *testing.T) {
	srv := newTestHandler(t, stubSource{data: sampleData()}, &stubPDF{enabled: true, err: errors.New("gotenberg down")})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/pdf", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
