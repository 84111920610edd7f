package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/smartmart/smartmart-dashboard/internal/export"
	"github.com/smartmart/smartmart-dashboard/internal/view"
	"github.com/smartmart/smartmart-dashboard/report"
)

const (
	pageTitle      = "SmartMart Dashboard"
	reportTemplate = "dashboard_report.html"
)

// PDFRenderer converts HTML to PDF.
type PDFRenderer interface {
	Enabled() bool
	RenderHTML(ctx context.Context, html []byte) ([]byte, error)
}

var _ PDFRenderer = (*report.Client)(nil)

// Handler serves the dashboard page and its exports.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	pages     *view.Responder
	templates *view.Engine
	pdf       PDFRenderer
	now       func() time.Time
}

// NewHandler constructs the dashboard handler. pdf may be nil.
func NewHandler(logger *slog.Logger, service *Service, pages *view.Responder, templates *view.Engine, pdf PDFRenderer) *Handler {
	return &Handler{logger: logger, service: service, pages: pages, templates: templates, pdf: pdf, now: time.Now}
}

// MountRoutes registers / and the /dashboard routes.
func (h *Handler) MountRoutes(r chi.Router) {
	limiter := httprate.Limit(10, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Get("/", h.page)
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", h.page)
		r.Group(func(gr chi.Router) {
			gr.Use(limiter)
			gr.Get("/export.csv", h.exportCSV)
			if h.pdfEnabled() {
				gr.Get("/pdf", h.exportPDF)
			}
		})
	})
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	vm, err := h.service.Load(r.Context())
	if err != nil {
		h.logger.WarnContext(r.Context(), "load dashboard", slog.Any("error", err))
	}
	vm.PDF = h.pdfEnabled()
	h.pages.Page(w, r, "dashboard.html", view.TemplateData{
		Title:       pageTitle,
		CurrentPath: "/",
		Data:        vm,
	}, http.StatusOK)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	vm, err := h.service.Load(r.Context())
	if err != nil {
		h.upstreamError(w, "load dashboard", err)
		return
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, vm); err != nil {
		h.logger.Error("write dashboard csv", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", export.CSVContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"dashboard-%s.csv\"", h.now().Format("20060102")))
	_, _ = buf.WriteTo(w)
}

func (h *Handler) exportPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vm, err := h.service.Load(ctx)
	if err != nil {
		h.upstreamError(w, "load dashboard", err)
		return
	}
	var html bytes.Buffer
	if err := h.templates.Execute(&html, reportTemplate, view.TemplateData{Title: pageTitle, Data: vm}); err != nil {
		h.logger.Error("render dashboard report", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	pdf, err := h.pdf.RenderHTML(ctx, html.Bytes())
	if err != nil {
		h.upstreamError(w, "render pdf", err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"dashboard-%s.pdf\"", h.now().Format("20060102")))
	_, _ = w.Write(pdf)
}

func (h *Handler) pdfEnabled() bool {
	return h.pdf != nil && h.pdf.Enabled()
}

func (h *Handler) upstreamError(w http.ResponseWriter, op string, err error) {
	h.logger.Error("dashboard export failed", slog.String("op", op), slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
}

// WriteCSV emits the summary followed by the monthly series.
func WriteCSV(buf *bytes.Buffer, vm ViewModel) error {
	s := vm.Data.Summary
	summary := export.Table{
		Header: []string{"Métrica", "Valor"},
		Rows: [][]any{
			{"Receita Total", s.TotalRevenue},
			{"Total de Vendas", s.TotalSales},
			{"Produtos", s.TotalProducts},
			{"Categorias", s.TotalCategories},
		},
	}
	if err := export.WriteCSV(buf, summary); err != nil {
		return err
	}
	buf.WriteString("\n")
	series := export.Table{Header: []string{"Mês", "Receita"}}
	for _, p := range vm.Series {
		series.Rows = append(series.Rows, []any{p.Date, p.Total})
	}
	return export.WriteCSV(buf, series)
}
