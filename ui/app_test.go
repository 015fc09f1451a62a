package ui

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doGet(t *testing.T, app *App, path string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec
}

func TestDashboardPage(t *testing.T) {
	app := newTestApp(t)
	rec := doGet(t, app, "/", false)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Pulseboard")
	assert.Contains(t, body, `id="board"`)
	assert.Contains(t, body, "Click a chart segment to drill down")
}

func TestBoardFragment_WithSelectionRendersTable(t *testing.T) {
	app := newTestApp(t)
	rec := doGet(t, app, "/fragments/board?stage=Active&window=month&groupBy=industry&value=Retail&region=EMEA", true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Retail · EMEA")
	assert.Contains(t, body, "Clear selection")
	assert.NotContains(t, body, "<!DOCTYPE html>", "fragment responses are partials")
}

func TestBoardFragment_ClearedSelectionShowsPrompt(t *testing.T) {
	app := newTestApp(t)
	rec := doGet(t, app, "/fragments/board?stage=Active&window=month&groupBy=industry", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Click a chart segment to drill down")
	assert.NotContains(t, rec.Body.String(), "Clear selection")
}

func TestBoardFragment_NonHTMXRedirectsToPage(t *testing.T) {
	app := newTestApp(t)
	rec := doGet(t, app, "/fragments/board?stage=Closed&window=year&groupBy=product", false)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "stage=Closed")
}

func TestBoardFragment_SimulatedLatency(t *testing.T) {
	records := newTestApp(t).records
	app, err := NewApp(Config{Records: records, Now: testNow, SimulatedLatency: 30 * time.Millisecond})
	require.NoError(t, err)

	start := time.Now()
	rec := doGet(t, app, "/fragments/board?groupBy=expert&simulate=1", true)
	elapsed := time.Since(start)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)

	// Without the marker the fragment renders immediately.
	start = time.Now()
	doGet(t, app, "/fragments/board?groupBy=expert", true)
	assert.Less(t, time.Since(start), 30*time.Millisecond)
}

func TestExport(t *testing.T) {
	app := newTestApp(t)
	rec := doGet(t, app, "/export.xlsx?stage=Active&window=month&groupBy=industry&value=Retail&region=EMEA", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.NotZero(t, rec.Body.Len())
}

func TestAboutPage(t *testing.T) {
	app := newTestApp(t)
	rec := doGet(t, app, "/about", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "About Pulseboard")
}
