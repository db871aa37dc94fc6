package analytics

import (
	"math"
	"testing"

	"equipviz/models"
)

func TestPreview_ComputesBlocksPerParameter(t *testing.T) {
	rows := []models.EquipmentRow{
		{Name: "P-101", Flowrate: 100, Pressure: 2, Temperature: 50},
		{Name: "P-102", Flowrate: 200, Pressure: 4, Temperature: 70},
	}

	preview := Preview(rows)
	if preview == nil {
		t.Fatal("expected a preview")
	}

	if preview.FlowrateStats.Min != 100 || preview.FlowrateStats.Max != 200 {
		t.Errorf("flowrate min/max = %+v", preview.FlowrateStats)
	}
	if preview.FlowrateStats.Mean != 150 {
		t.Errorf("flowrate mean = %v, want 150", preview.FlowrateStats.Mean)
	}
	if math.Abs(preview.FlowrateStats.Std-50) > 1e-9 {
		t.Errorf("flowrate std = %v, want 50", preview.FlowrateStats.Std)
	}
	if preview.PressureStats.Mean != 3 {
		t.Errorf("pressure mean = %v, want 3", preview.PressureStats.Mean)
	}
	if preview.TemperatureStats.Max != 70 {
		t.Errorf("temperature max = %v, want 70", preview.TemperatureStats.Max)
	}
}

func TestPreview_NilForEmptyDataset(t *testing.T) {
	if got := Preview(nil); got != nil {
		t.Errorf("expected nil preview, got %+v", got)
	}
}

func TestPreview_SingleRowHasZeroStd(t *testing.T) {
	rows := []models.EquipmentRow{{Name: "V-201", Flowrate: 10, Pressure: 1, Temperature: 25}}
	preview := Preview(rows)
	if preview == nil {
		t.Fatal("expected a preview")
	}
	if preview.FlowrateStats.Std != 0 {
		t.Errorf("std of one value = %v, want 0", preview.FlowrateStats.Std)
	}
	if preview.FlowrateStats.Min != preview.FlowrateStats.Max {
		t.Errorf("min != max for single row: %+v", preview.FlowrateStats)
	}
}
