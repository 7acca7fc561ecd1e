package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/spicebyte/menu-app/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	menuPage  = "index.html"
	orderPage = "order.html"
	errorPage = "error.html"
)

// MaxQuantityHint is the upper bound shown on the quantity inputs.
// It is a browser hint only; the server accepts larger quantities.
const MaxQuantityHint = 20

var templateFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return "₹ " + d.StringFixed(2)
	},
	"vegMarker": func(isVeg bool) string {
		if isVeg {
			return "🟢"
		}
		return "🔴"
	},
	"qtyField": func(id string) string {
		return service.QuantityFieldPrefix + id
	},
}

// Renderer executes the embedded page templates
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page template once
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{menuPage, orderPage, errorPage} {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the named page into a buffer and writes it with the given status.
// Nothing is written to w if execution fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

type errorView struct {
	Status     int
	StatusText string
	Message    string
}

// RenderError writes an HTML error page, falling back to plain text
func (r *Renderer) RenderError(w http.ResponseWriter, status int, message string, log *slog.Logger) {
	view := errorView{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
	}
	if err := r.Render(w, status, errorPage, view); err != nil {
		log.Error("failed to render error page", "error", err)
		http.Error(w, message, status)
	}
}
