package httpapi

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/aimarket/storefront/internal/app/domain/catalog"
	"github.com/aimarket/storefront/web"
)

// page renders the storefront HTML. The catalog is immutable, so the page is
// rendered once at construction and served from memory.
type page struct {
	html []byte
	css  []byte
	err  error
}

type pageData struct {
	Modules     []catalog.Module
	ClientID    string
	CatalogJSON template.JS
}

func newPage(modules []catalog.Module, clientID string) *page {
	p := &page{}

	p.css, p.err = web.Files.ReadFile("styles.css")
	if p.err != nil {
		return p
	}

	tmpl, err := template.ParseFS(web.Files, "index.html.tmpl")
	if err != nil {
		p.err = err
		return p
	}

	if clientID == "" {
		clientID = "YOUR_PAYPAL_CLIENT_ID"
	}

	catalogJSON, err := json.Marshal(modules)
	if err != nil {
		p.err = err
		return p
	}

	var buf bytes.Buffer
	p.err = tmpl.Execute(&buf, pageData{
		Modules:     modules,
		ClientID:    clientID,
		CatalogJSON: template.JS(catalogJSON),
	})
	p.html = buf.Bytes()
	return p
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	if h.page.err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.page.html)
}

func (h *handler) styles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(h.page.css)
}
