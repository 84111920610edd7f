package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smartmart/smartmart-dashboard/internal/shared"
	"github.com/smartmart/smartmart-dashboard/web"
)

// Engine renders HTML templates.
type Engine struct {
	templates *template.Template
}

// NavItem is one sidebar link.
type NavItem struct {
	Label string
	Href  string
	Icon  string
}

// Navigation lists the sidebar links in display order.
var Navigation = []NavItem{
	{Label: "Dashboard", Href: "/", Icon: "chart"},
	{Label: "Categorias", Href: "/categories", Icon: "tag"},
	{Label: "Produtos", Href: "/products", Icon: "box"},
	{Label: "Vendas", Href: "/sales", Icon: "cart"},
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	CSRFToken   string
	Flashes     []shared.FlashMessage
	CurrentPath string
	// CanonicalURL replaces the address bar after a form post renders a page.
	CanonicalURL string
	Nav          []NavItem
	Data         any
}

// NewEngine parses the embedded templates.
func NewEngine() (*Engine, error) {
	tpl, err := template.New("root").Funcs(Funcs()).ParseFS(web.Templates, "templates/layouts/*.html", "templates/partials/*.html", "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Funcs exposes the template helpers.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":    Money,
		"brl":      BRL,
		"count":    Count,
		"dateBR":   DateBR,
		"isActive": IsActive,
		"urlWith":  URLWith,
		"decimalText": func(d decimal.Decimal) string {
			return d.String()
		},
	}
}

// Render executes a named template with TemplateData.
func (e *Engine) Render(w http.ResponseWriter, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return e.templates.ExecuteTemplate(w, name, data)
}

// Execute renders name into w without touching headers.
func (e *Engine) Execute(w io.Writer, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	return e.templates.ExecuteTemplate(w, name, data)
}

// RenderBuffered renders into memory first so a template failure can still
// be answered with a clean 500.
func (e *Engine) RenderBuffered(w http.ResponseWriter, name string, data TemplateData, status int) error {
	var buf bytes.Buffer
	if err := e.Execute(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// IsActive reports whether href is the sidebar entry for path.
func IsActive(href, path string) bool {
	if href == "/" {
		return path == "/" || path == "/dashboard"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

// URLWith sets the query parameters given as key, value pairs on raw.
func URLWith(raw string, kv ...string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	u.RawQuery = q.Encode()
	return u.String()
}
