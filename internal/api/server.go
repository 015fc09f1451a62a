// Package api exposes the derived dashboard data as JSON, mirroring what the
// HTML surface renders so the same numbers can be scripted against.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pulseboard/domain/portfolio"
	"pulseboard/internal/logger"
	"pulseboard/internal/summary"
)

// Server is the JSON API server.
type Server struct {
	router  *gin.Engine
	records []portfolio.Record
	now     time.Time
	seed    int64
	started time.Time
}

// NewServer creates the API server over an in-memory dataset.
func NewServer(records []portfolio.Record, now time.Time, seed int64) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		router:  gin.New(),
		records: records,
		now:     now,
		seed:    seed,
		started: time.Now(),
	}
	s.router.Use(gin.Recovery())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/api/health", s.handleHealth)
	s.router.GET("/api/chart", s.handleChart)
	s.router.GET("/api/records", s.handleRecords)
	s.router.GET("/api/drilldown", s.handleDrillDown)
}

// Router exposes the gin engine for serving and for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(port string) error {
	addr := ":" + port
	logger.Log.Infof("Starting Pulseboard API server on %s", addr)
	return s.router.Run(addr)
}

// stateFromQuery decodes filter state from query parameters; unknown enum
// values fall back to defaults so every request yields a renderable result.
func stateFromQuery(c *gin.Context) portfolio.State {
	state := portfolio.DefaultState()
	if stage, ok := portfolio.ParseStage(c.Query("stage")); ok {
		state = state.WithStage(stage)
	}
	if g, ok := portfolio.ParseGranularity(c.Query("window")); ok {
		state = state.WithGranularity(g)
	}
	if d, ok := portfolio.ParseDimension(c.Query("groupBy")); ok {
		state = state.WithDimension(d)
	}
	return state
}

func (s *Server) filtered(state portfolio.State) []portfolio.Record {
	cutoff := portfolio.CutoffFor(state.Granularity, s.now)
	return portfolio.FilterRecords(s.records, state.Stage, cutoff)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"recordCount": len(s.records),
		"seed":        s.seed,
		"uptimeSec":   int(time.Since(s.started).Seconds()),
		"anchoredAt":  s.now.Format(time.RFC3339),
	})
}

func (s *Server) handleChart(c *gin.Context) {
	state := stateFromQuery(c)
	filtered := s.filtered(state)
	rows := portfolio.Aggregate(filtered, state.Dimension)

	c.JSON(http.StatusOK, gin.H{
		"stage":   state.Stage,
		"window":  state.Granularity,
		"groupBy": state.Dimension,
		"rows":    rows,
		"summary": summary.Compute(rows),
	})
}

func (s *Server) handleRecords(c *gin.Context) {
	state := stateFromQuery(c)
	filtered := s.filtered(state)

	c.JSON(http.StatusOK, gin.H{
		"stage":   state.Stage,
		"window":  state.Granularity,
		"count":   len(filtered),
		"records": filtered,
	})
}

// handleDrillDown returns the records behind one (value, region) chart
// segment. Unknown values yield an empty set, not an error.
func (s *Server) handleDrillDown(c *gin.Context) {
	state := stateFromQuery(c)
	filtered := s.filtered(state)

	value := c.Query("value")
	region, _ := portfolio.ParseRegion(c.Query("region"))
	rows := portfolio.DrillDown(filtered, state.Dimension, value, region)

	c.JSON(http.StatusOK, gin.H{
		"groupBy": state.Dimension,
		"value":   value,
		"region":  region,
		"count":   len(rows),
		"records": rows,
	})
}
