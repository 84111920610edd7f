package view

import (
	"log/slog"
	"net/http"

	"github.com/smartmart/smartmart-dashboard/internal/shared"
)

// Responder renders full pages with the session toasts and CSRF token filled in.
type Responder struct {
	logger    *slog.Logger
	templates *Engine
	csrf      *shared.CSRFManager
}

// NewResponder constructs a Responder.
func NewResponder(logger *slog.Logger, templates *Engine, csrf *shared.CSRFManager) *Responder {
	return &Responder{logger: logger, templates: templates, csrf: csrf}
}

// Page fills the request-scoped fields of data and renders name with status.
func (p *Responder) Page(w http.ResponseWriter, r *http.Request, name string, data TemplateData, status int) {
	sess := shared.SessionFromContext(r.Context())
	if sess != nil {
		data.CSRFToken, _ = p.csrf.EnsureToken(r.Context(), sess)
		data.Flashes = sess.PopFlashes()
	}
	if data.CurrentPath == "" {
		data.CurrentPath = r.URL.Path
	}
	if data.Nav == nil {
		data.Nav = Navigation
	}
	if err := p.templates.RenderBuffered(w, name, data, status); err != nil {
		p.logger.Error("render template", slog.Any("error", err), slog.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
