// Package analytics computes a client-side stat preview for live uploads.
// The backend only serves min/max/mean/std analytics for stored datasets;
// a fresh upload gets the same block computed locally so the live screen
// is not poorer than the historical one.
package analytics

import (
	"github.com/montanaflynn/stats"

	"equipviz/models"
)

// Preview computes per-parameter stat blocks from raw rows. Returns nil for
// an empty dataset.
func Preview(rows []models.EquipmentRow) *models.ParameterStatistics {
	if len(rows) == 0 {
		return nil
	}

	flowrates := make([]float64, len(rows))
	pressures := make([]float64, len(rows))
	temperatures := make([]float64, len(rows))
	for i, row := range rows {
		flowrates[i] = row.Flowrate
		pressures[i] = row.Pressure
		temperatures[i] = row.Temperature
	}

	return &models.ParameterStatistics{
		FlowrateStats:    block(flowrates),
		PressureStats:    block(pressures),
		TemperatureStats: block(temperatures),
	}
}

func block(data []float64) models.StatBlock {
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	mean, _ := stats.Mean(data)
	std, _ := stats.StandardDeviation(data)

	return models.StatBlock{
		Min:  min,
		Max:  max,
		Mean: mean,
		Std:  std,
	}
}
