// Package ui serves the server-rendered dashboard: one page, HTMX fragment
// swaps for every filter change, and a spreadsheet export of the rows in view.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pulseboard/domain/portfolio"
	"pulseboard/internal/logger"
)

//go:embed templates/* static/* about.md
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	records   []portfolio.Record
	now       time.Time
	latency   time.Duration
	templates *template.Template
}

// Config holds UI application configuration
type Config struct {
	Records []portfolio.Record
	// Now anchors every lookback window. Fixing it at construction keeps
	// renders reproducible for the session, matching the dataset.
	Now time.Time
	// SimulatedLatency is the cosmetic delay applied when the grouping
	// dimension changes. Zero disables it.
	SimulatedLatency time.Duration
}

// NewApp creates a new UI application
func NewApp(config Config) (*App, error) {
	funcMap := template.FuncMap{
		"pctf": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"add":  func(a, b int) int { return a + b },
		"date": dateFmt,
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	now := config.Now
	if now.IsZero() {
		now = time.Now()
	}

	app := &App{
		router:    chi.NewRouter(),
		records:   config.Records,
		now:       now,
		latency:   config.SimulatedLatency,
		templates: templates,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", http.StripPrefix("/", staticFS))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleDashboard)
	a.router.Get("/about", a.handleAbout)
	a.router.Get("/export.xlsx", a.handleExport)

	// HTMX fragment endpoints
	a.router.Get("/fragments/board", a.handleBoardFragment)
}

// Router exposes the configured mux for serving and for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start(port string) error {
	addr := ":" + port
	logger.Log.Infof("Starting Pulseboard UI server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		logger.Log.Errorf("Template error for %s: %v", templateName, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

// HTMX helpers
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
