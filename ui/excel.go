package ui

import (
	"net/http"

	"github.com/xuri/excelize/v2"

	"pulseboard/domain/portfolio"
	"pulseboard/internal/errors"
	"pulseboard/internal/logger"
)

var exportHeaders = []string{"ID", "Project", "Industry", "Region", "Stage", "Date", "Product", "Expert", "CSAT"}

// handleExport streams the rows currently in view as an .xlsx workbook:
// the drill-down rows when a segment is selected, otherwise the full
// stage/window-filtered set.
func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	state := stateFromRequest(r)
	cutoff := portfolio.CutoffFor(state.Granularity, a.now)
	rows := portfolio.FilterRecords(a.records, state.Stage, cutoff)
	if state.Selection != nil {
		rows = portfolio.DrillDown(rows, state.Dimension, state.Selection.Value, state.Selection.Region)
	}

	f, err := buildWorkbook(rows)
	if err != nil {
		logger.Log.Errorf("Export failed: %v", err)
		http.Error(w, "Export failed", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="pulseboard-records.xlsx"`)
	if err := f.Write(w); err != nil {
		logger.Log.Errorf("Error writing export response: %v", err)
	}
}

func buildWorkbook(rows []portfolio.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, errors.Export(err, "failed to write header row")
		}
	}

	for rowIdx, rec := range rows {
		values := []interface{}{
			rec.ID,
			rec.Label,
			rec.Industry,
			string(rec.Region),
			string(rec.Stage),
			dateFmt(rec.Date),
			rec.Product,
			rec.Expert,
			rec.CSAT,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, errors.Export(err, "failed to write data row")
			}
		}
	}
	return f, nil
}
