// Package excel renders the active dataset as an xlsx workbook so users can
// take a snapshot of what they are looking at out of the browser.
package excel

import (
	"bytes"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"equipviz/models"
)

const (
	equipmentSheet = "Equipment"
	summarySheet   = "Summary"
)

var equipmentHeaders = []string{"Equipment Name", "Type", "Flowrate", "Pressure", "Temperature"}

// Export writes the view's rows and summary into a two-sheet workbook.
// Returns an error when the view has no dataset to export.
func Export(view models.ActiveView) (*bytes.Buffer, error) {
	if !view.HasDataset() {
		return nil, fmt.Errorf("no active dataset to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", equipmentSheet)
	if err := writeEquipmentSheet(f, view.Rows()); err != nil {
		return nil, fmt.Errorf("failed to write equipment sheet: %w", err)
	}

	if summary := view.Summary(); summary != nil {
		if _, err := f.NewSheet(summarySheet); err != nil {
			return nil, fmt.Errorf("failed to create summary sheet: %w", err)
		}
		if err := writeSummarySheet(f, summary); err != nil {
			return nil, fmt.Errorf("failed to write summary sheet: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	log.Printf("[ExcelExporter] Workbook built (%d rows, %d bytes)", len(view.Rows()), buf.Len())
	return &buf, nil
}

func writeEquipmentSheet(f *excelize.File, rows []models.EquipmentRow) error {
	for col, header := range equipmentHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(equipmentSheet, cell, header); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := []interface{}{row.Name, row.Type, row.Flowrate, row.Pressure, row.Temperature}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(equipmentSheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summary *models.Summary) error {
	lines := [][]interface{}{
		{"Total Equipment", summary.TotalCount},
		{"Average Flowrate", summary.AvgFlowrate},
		{"Average Pressure", summary.AvgPressure},
		{"Average Temperature", summary.AvgTemperature},
	}
	for _, tc := range summary.TypeDistribution {
		lines = append(lines, []interface{}{"Type: " + tc.Type, tc.Count})
	}

	for i, line := range lines {
		for col, value := range line {
			cell, err := excelize.CoordinatesToCellName(col+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
