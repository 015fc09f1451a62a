package ui

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleDashboard renders the full dashboard page for the state encoded in
// the URL, so filtered views are deep-linkable.
func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	state := stateFromRequest(r)
	data := DashboardView{
		Title: "Pulseboard — Project Portfolio",
		Board: a.buildBoard(state),
	}
	a.renderTemplate(w, "dashboard.html", data)
}

// handleBoardFragment re-renders the chart, stat cards and drill-down table
// for a changed filter state. Direct (non-HTMX) hits get the full page so
// fragment URLs stay shareable.
func (a *App) handleBoardFragment(w http.ResponseWriter, r *http.Request) {
	if !isHTMX(r) {
		http.Redirect(w, r, "/?"+r.URL.Query().Encode(), http.StatusSeeOther)
		return
	}

	// Grouping changes carry a marker that triggers the cosmetic delay,
	// mimicking the API round trip of a real backend. Each request is
	// independent, so a rapid second change simply renders later.
	if r.URL.Query().Get("simulate") == "1" && a.latency > 0 {
		time.Sleep(a.latency)
	}

	state := stateFromRequest(r)
	a.renderTemplate(w, "board.html", a.buildBoard(state))
}

// handleAbout renders the embedded methodology notes.
func (a *App) handleAbout(w http.ResponseWriter, r *http.Request) {
	source, err := embeddedFiles.ReadFile("about.md")
	if err != nil {
		http.Error(w, "About page unavailable", http.StatusInternalServerError)
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.ToHTML(source, p, renderer)

	a.renderTemplate(w, "about.html", map[string]interface{}{
		"Title":   "Pulseboard — About",
		"Content": template.HTML(rendered),
	})
}
